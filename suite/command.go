// suite/command.go
package suite

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	"github.com/mwiater/varbench/bench"
)

// commandVariant wraps one command spec as a bench.Variant. Each timed
// execution runs the command to completion under the per-execution timeout;
// a non-zero exit or a timeout fails the variant. Output is discarded so
// terminal rendering does not pollute the measurement.
func commandVariant(spec VariantSpec, timeout time.Duration) bench.Variant {
	return bench.Variant{
		Label: spec.Label,
		Compute: func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()

			cmd := exec.CommandContext(ctx, spec.Command, spec.Args...)
			cmd.Dir = spec.Dir
			cmd.Stdout = io.Discard
			cmd.Stderr = io.Discard

			if err := cmd.Run(); err != nil {
				if ctx.Err() == context.DeadlineExceeded {
					return nil, fmt.Errorf("command %q timed out after %v", spec.Command, timeout)
				}
				return nil, fmt.Errorf("command %q: %w", spec.Command, err)
			}
			return cmd.ProcessState.ExitCode(), nil
		},
	}
}
