// Package solver holds the generic secant root finder and the
// equal-standard-of-living salary solver built on top of it.
package solver

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SolverError describes a numerical failure: non-convergence within
// the iteration budget or a degenerate objective.
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("solver %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("solver %s: %s", e.Operation, e.Message)
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}

// Options bound a secant run.
type Options struct {
	Tolerance     decimal.Decimal
	MaxIterations int
}

// DefaultOptions returns the standard convergence bounds.
func DefaultOptions() Options {
	return Options{
		Tolerance:     decimal.NewFromFloat(1e-6),
		MaxIterations: 100,
	}
}
