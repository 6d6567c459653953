// bench/errors.go
// Package: bench
package bench

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig marks run parameters rejected before any variant
// executes. Returned errors wrap it, so errors.Is(err, ErrInvalidConfig)
// identifies the class.
var ErrInvalidConfig = errors.New("invalid benchmark configuration")

// VariantError is the failure marker for one variant: the computation (or
// its setup) returned an error or panicked. It carries the original cause
// unmodified.
type VariantError struct {
	Label string
	Cause error
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("variant %q failed: %v", e.Label, e.Cause)
}

func (e *VariantError) Unwrap() error { return e.Cause }
