package calculator

import (
	"fmt"
	"math"
)

// radicandTolerance bounds how negative the Sharpe quadratic form may go
// before it is treated as a real positive-definiteness violation instead of
// floating-point noise.
const radicandTolerance = 1e-9

// Sharpe computes the portfolio Sharpe ratio S = sqrt(F' * C * F). Since
// F solves C*F = M this equals sqrt(M' * C^-1 * M), which is non-negative
// whenever C is positive definite. A tiny negative quadratic form is clamped to zero; a
// materially negative one yields ErrNumericInstability, since it means C is
// not positive definite and the leverage vector cannot be trusted.
func Sharpe(f []float64, c [][]float64) (float64, error) {
	k := len(f)
	if len(c) != k {
		return 0, fmt.Errorf("%w: covariance is %dx%d but leverage vector has %d entries", ErrInvalidInput, len(c), len(c), k)
	}

	var quad float64
	for i := 0; i < k; i++ {
		if len(c[i]) != k {
			return 0, fmt.Errorf("%w: covariance row %d has %d entries, expected %d", ErrInvalidInput, i, len(c[i]), k)
		}
		for j := 0; j < k; j++ {
			quad += f[i] * c[i][j] * f[j]
		}
	}

	if quad < 0 {
		if quad < -radicandTolerance {
			return 0, fmt.Errorf("%w: Sharpe radicand %g is negative, covariance matrix is not positive definite", ErrNumericInstability, quad)
		}
		quad = 0
	}
	return math.Sqrt(quad), nil
}

// MaxGrowthRate computes the maximum compounded growth rate g = r_f + S^2/2
// achieved by the full-Kelly allocation.
func MaxGrowthRate(annualRF, sharpe float64) float64 {
	return annualRF + sharpe*sharpe/2
}

// HalfKelly returns the conservative half-Kelly leverage vector F / 2.
func HalfKelly(f []float64) []float64 {
	half := make([]float64, len(f))
	for i, v := range f {
		half[i] = v / 2
	}
	return half
}
