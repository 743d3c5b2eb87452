package solver

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Secant finds a root of f starting from the points x0 and x1. The
// iteration stops when |f(x1)| falls within the tolerance; exceeding
// the iteration budget or a vanishing secant denominator surfaces a
// SolverError rather than looping or dividing by zero.
func Secant(f func(decimal.Decimal) (decimal.Decimal, error), x0, x1 decimal.Decimal, opts Options) (decimal.Decimal, error) {
	if opts.Tolerance.LessThanOrEqual(decimal.Zero) {
		opts.Tolerance = DefaultOptions().Tolerance
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultOptions().MaxIterations
	}

	f0, err := f(x0)
	if err != nil {
		return decimal.Zero, &SolverError{Operation: "secant", Message: "objective failed", Cause: err}
	}
	f1, err := f(x1)
	if err != nil {
		return decimal.Zero, &SolverError{Operation: "secant", Message: "objective failed", Cause: err}
	}

	for i := 0; i < opts.MaxIterations; i++ {
		if f1.Abs().LessThanOrEqual(opts.Tolerance) {
			return x1, nil
		}

		denom := f1.Sub(f0)
		if denom.Abs().LessThanOrEqual(opts.Tolerance) {
			return decimal.Zero, &SolverError{
				Operation: "secant",
				Message:   fmt.Sprintf("flat objective between %s and %s", x0.String(), x1.String()),
			}
		}

		x2 := x1.Sub(f1.Mul(x1.Sub(x0)).Div(denom))
		x0, f0 = x1, f1
		x1 = x2
		f1, err = f(x1)
		if err != nil {
			return decimal.Zero, &SolverError{Operation: "secant", Message: "objective failed", Cause: err}
		}
	}

	return decimal.Zero, &SolverError{
		Operation: "secant",
		Message:   fmt.Sprintf("no convergence after %d iterations", opts.MaxIterations),
	}
}
