// bench/types.go
// Package: bench
package bench

import "time"

// Computation is one candidate implementation under measurement. It takes
// no arguments (inputs are closed over) and reports its result value and
// any error. The harness never interprets the result; equivalence across
// variants is the caller's concern.
type Computation func() (any, error)

// Variant is one labeled candidate in a run.
type Variant struct {
	// Label identifies the variant; must be unique within a run.
	Label string `json:"label"`

	// Setup, if non-nil, runs once before the variant's repetitions and is
	// not timed. Use it for one-time work that should not count against the
	// variant (building input, starting a worker pool). A Setup error fails
	// the variant before anything is measured.
	Setup func() error `json:"-"`

	// Compute is the measured computation. Required.
	Compute Computation `json:"-"`

	// Cleanup, if non-nil, always runs after the variant finishes,
	// whether it succeeded or failed. Not timed.
	Cleanup func() `json:"-"`
}

// Measurement is one timed execution of a variant's computation.
type Measurement struct {
	Label string `json:"label"`
	// Index is the 1-based repetition number, in execution order.
	Index int `json:"index"`
	// Elapsed is wall-clock time for the Compute call alone, taken from the
	// monotonic clock.
	Elapsed time.Duration `json:"elapsed_ns"`
}

// Summary aggregates one variant's measurements.
type Summary struct {
	Label string `json:"label"`
	Count int    `json:"count"`

	Min    time.Duration `json:"min_ns"`
	Max    time.Duration `json:"max_ns"`
	Mean   time.Duration `json:"mean_ns"`
	Median time.Duration `json:"median_ns"`

	// Percentile is the duration at PercentileRank (default 0.95).
	Percentile     time.Duration `json:"percentile_ns"`
	PercentileRank float64       `json:"percentile_rank"`
}

// Observer receives progress callbacks while a run executes. All callbacks
// fire on the goroutine driving the run. A nil Observer in Config means a
// silent run.
type Observer interface {
	VariantStarted(label string, repetitions int)
	MeasurementRecorded(m Measurement)
	VariantFinished(report VariantReport)
}

// Config configures a run.
type Config struct {
	// Repetitions is the number of timed executions per variant. Must be >= 1.
	Repetitions int `json:"repetitions"`

	// Percentile is the extra quantile reported per summary, in (0,1).
	// Zero means the default 0.95.
	Percentile float64 `json:"percentile"`

	// Observer, if non-nil, receives progress events.
	Observer Observer `json:"-"`
}

// VariantReport is the outcome for one variant: either a Summary or a
// failure cause, never both.
type VariantReport struct {
	Label string `json:"label"`

	// Measurements recorded before completion or failure, in execution order.
	Measurements []Measurement `json:"measurements"`

	// Summary is nil iff the variant failed.
	Summary *Summary `json:"summary,omitempty"`

	// LastResult is the value returned by the final completed execution.
	// Carried for callers who want to eyeball output equivalence.
	LastResult any `json:"-"`

	// Err is the failure cause (a *VariantError), nil on success.
	Err error `json:"-"`
}

// Failed reports whether the variant failed before completing its repetitions.
func (r VariantReport) Failed() bool { return r.Err != nil }

// Result is the top-level artifact returned by Run.
type Result struct {
	Config Config `json:"config"`
	// Reports holds one entry per requested variant, in input order.
	Reports     []VariantReport `json:"reports"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// Report returns the report for label, if present.
func (r Result) Report(label string) (VariantReport, bool) {
	for _, rep := range r.Reports {
		if rep.Label == label {
			return rep, true
		}
	}
	return VariantReport{}, false
}

// Failures returns the labels of failed variants, in input order.
func (r Result) Failures() []string {
	var out []string
	for _, rep := range r.Reports {
		if rep.Failed() {
			out = append(out, rep.Label)
		}
	}
	return out
}
