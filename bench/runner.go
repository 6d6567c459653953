// bench/runner.go
// Package: bench
package bench

import (
	"fmt"
	"time"
)

// DefaultPercentile is the quantile reported when Config.Percentile is zero.
const DefaultPercentile = 0.95

// Run is the single exported entrypoint. It executes each variant, in the
// order given, Repetitions times sequentially on the calling goroutine and
// returns one report per variant.
//
// Invalid parameters fail fast with an error wrapping ErrInvalidConfig and
// nothing executes. A failing variant (error or panic from Compute or
// Setup) aborts that variant's remaining repetitions, records the cause,
// and the run continues with the next variant.
func Run(variants []Variant, cfg Config) (Result, error) {
	if err := validate(variants, &cfg); err != nil {
		return Result{}, err
	}

	reports := make([]VariantReport, 0, len(variants))
	for _, v := range variants {
		rep := runVariant(v, cfg)
		if cfg.Observer != nil {
			cfg.Observer.VariantFinished(rep)
		}
		reports = append(reports, rep)
	}

	return buildResult(cfg, reports), nil
}

// validate checks run parameters and applies defaults. Mutates cfg only to
// fill the default percentile.
func validate(variants []Variant, cfg *Config) error {
	if len(variants) == 0 {
		return fmt.Errorf("%w: at least one variant is required", ErrInvalidConfig)
	}
	if cfg.Repetitions < 1 {
		return fmt.Errorf("%w: repetitions must be >= 1, got %d", ErrInvalidConfig, cfg.Repetitions)
	}
	if cfg.Percentile == 0 {
		cfg.Percentile = DefaultPercentile
	}
	if cfg.Percentile <= 0 || cfg.Percentile >= 1 {
		return fmt.Errorf("%w: percentile must be in (0,1), got %g", ErrInvalidConfig, cfg.Percentile)
	}
	seen := make(map[string]struct{}, len(variants))
	for _, v := range variants {
		if v.Label == "" {
			return fmt.Errorf("%w: variant label must not be empty", ErrInvalidConfig)
		}
		if _, dup := seen[v.Label]; dup {
			return fmt.Errorf("%w: duplicate variant label %q", ErrInvalidConfig, v.Label)
		}
		seen[v.Label] = struct{}{}
		if v.Compute == nil {
			return fmt.Errorf("%w: variant %q has no computation", ErrInvalidConfig, v.Label)
		}
	}
	return nil
}

// runVariant executes one variant's full lifecycle: setup, timed
// repetitions, cleanup.
func runVariant(v Variant, cfg Config) VariantReport {
	rep := VariantReport{Label: v.Label}

	if cfg.Observer != nil {
		cfg.Observer.VariantStarted(v.Label, cfg.Repetitions)
	}
	if v.Cleanup != nil {
		defer v.Cleanup()
	}

	if v.Setup != nil {
		if err := callSetup(v.Setup); err != nil {
			rep.Err = &VariantError{Label: v.Label, Cause: err}
			return rep
		}
	}

	for i := 1; i <= cfg.Repetitions; i++ {
		result, elapsed, err := measure(v.Compute)
		if err != nil {
			rep.Err = &VariantError{Label: v.Label, Cause: err}
			return rep
		}
		m := Measurement{Label: v.Label, Index: i, Elapsed: elapsed}
		rep.Measurements = append(rep.Measurements, m)
		rep.LastResult = result
		if cfg.Observer != nil {
			cfg.Observer.MeasurementRecorded(m)
		}
	}

	rep.Summary = summarize(v.Label, rep.Measurements, cfg.Percentile)
	return rep
}

// measure times a single execution, converting a panic into an error so
// one broken variant cannot abort the whole run.
func measure(c Computation) (result any, elapsed time.Duration, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	start := time.Now()
	result, err = c()
	elapsed = time.Since(start)
	return result, elapsed, err
}

func callSetup(setup func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("setup panic: %v", r)
		}
	}()
	return setup()
}
