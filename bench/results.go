// bench/results.go
// Package: bench
package bench

import "time"

// summarize builds one Summary from a variant's completed measurements.
// Pure function of the measurement set; called once per successful variant
// after its repetitions finish.
func summarize(label string, measurements []Measurement, percentile float64) *Summary {
	vals := make([]float64, len(measurements))
	for i, m := range measurements {
		vals[i] = float64(m.Elapsed)
	}

	lo, hi := minMax(vals)
	return &Summary{
		Label:          label,
		Count:          len(measurements),
		Min:            time.Duration(lo),
		Max:            time.Duration(hi),
		Mean:           time.Duration(mean(vals)),
		Median:         time.Duration(simpleQuantile(vals, 0.50)),
		Percentile:     time.Duration(simpleQuantile(vals, percentile)),
		PercentileRank: percentile,
	}
}

// buildResult packs reports with a timestamp.
func buildResult(cfg Config, reports []VariantReport) Result {
	return Result{
		Config:      cfg,
		Reports:     reports,
		GeneratedAt: time.Now(),
	}
}
