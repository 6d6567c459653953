// cmd/varbench/observer.go
package varbench

import (
	"fmt"
	"io"

	"github.com/mwiater/varbench/bench"
)

// consoleObserver prints run progress as it happens. Progress goes to the
// command's error stream so stdout stays clean for tables and JSON.
type consoleObserver struct {
	w io.Writer
}

func (o consoleObserver) VariantStarted(label string, repetitions int) {
	fmt.Fprintf(o.w, "benchmarking %s (%d repetitions)\n", label, repetitions)
}

func (o consoleObserver) MeasurementRecorded(m bench.Measurement) {}

func (o consoleObserver) VariantFinished(rep bench.VariantReport) {
	if rep.Failed() {
		fmt.Fprintf(o.w, "  %s failed: %v\n", rep.Label, rep.Err)
	}
}
