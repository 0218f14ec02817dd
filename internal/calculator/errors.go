package calculator

import "errors"

// Failure taxonomy for the quantitative pipeline. Callers branch on these with
// errors.Is; every failure is wrapped with context about the data shape that
// triggered it. The calculator never substitutes fallback values on failure.
var (
	// ErrInvalidInput marks a malformed or degenerate input matrix: too few
	// rows, a non-positive price, or a shape mismatch.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSingularCovariance marks a covariance matrix that cannot be solved
	// against, typically caused by collinear return series or fewer
	// observations than instruments.
	ErrSingularCovariance = errors.New("singular covariance matrix")

	// ErrNumericInstability marks a result that contradicts theory, such as a
	// materially negative Sharpe radicand from a non-positive-definite
	// covariance matrix.
	ErrNumericInstability = errors.New("numeric instability")
)
