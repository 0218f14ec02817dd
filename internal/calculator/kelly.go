package calculator

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"KellyFolio/internal/model"
)

// Solve computes the unconstrained Kelly-optimal leverage vector from an
// excess-return frame. It returns the leverage vector F, the annualized mean
// excess return vector M and the annualized covariance matrix C, where F is
// the solution of the linear system C*F = M.
//
// The system is solved through an LU factorization rather than an explicit
// matrix inverse; a singular or near-singular C (collinear return series,
// fewer observations than instruments) yields ErrSingularCovariance. When
// diagonalOnly is set the cross-covariances are zeroed first, approximating
// uncorrelated assets. For a single instrument the solve reduces to the
// scalar division F = M / C.
func Solve(excess *model.Frame, diagonalOnly bool) (f, m []float64, c [][]float64, err error) {
	n, k := excess.NumRows(), excess.NumCols()
	if k == 0 {
		return nil, nil, nil, fmt.Errorf("%w: excess-return frame has no symbols", ErrInvalidInput)
	}
	if n < 2 {
		return nil, nil, nil, fmt.Errorf("%w: need at least 2 return observations to estimate covariance, got %d", ErrInvalidInput, n)
	}

	m = make([]float64, k)
	for j := 0; j < k; j++ {
		m[j] = stat.Mean(excess.Column(j), nil) * TradingDays
	}

	// Unbiased sample covariance (n-1 denominator), annualized.
	cov := mat.NewSymDense(k, nil)
	stat.CovarianceMatrix(cov, mat.NewDense(n, k, excess.Flat()), nil)
	for i := 0; i < k; i++ {
		for j := i; j < k; j++ {
			v := cov.At(i, j) * TradingDays
			if diagonalOnly && i != j {
				v = 0
			}
			cov.SetSym(i, j, v)
		}
	}

	var lu mat.LU
	lu.Factorize(cov)
	fv := mat.NewVecDense(k, nil)
	if err := lu.SolveVecTo(fv, false, mat.NewVecDense(k, m)); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: cannot solve for %d instruments over %d observations: %v",
			ErrSingularCovariance, k, n, err)
	}

	f = make([]float64, k)
	copy(f, fv.RawVector().Data)
	c = make([][]float64, k)
	for i := range c {
		c[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			c[i][j] = cov.At(i, j)
		}
	}
	return f, m, c, nil
}

// Allocate runs the whole pipeline on a price frame: returns, excess returns,
// Kelly solve and derived statistics, bundled into a single immutable
// Allocation value.
func Allocate(prices *model.Frame, annualRF float64, diagonalOnly bool) (*model.Allocation, error) {
	returns, err := Returns(prices)
	if err != nil {
		return nil, err
	}
	excess := ExcessReturns(returns, annualRF)

	f, m, c, err := Solve(excess, diagonalOnly)
	if err != nil {
		return nil, err
	}

	sharpe, err := Sharpe(f, c)
	if err != nil {
		return nil, err
	}

	return &model.Allocation{
		Symbols:      prices.Symbols,
		Full:         f,
		Half:         HalfKelly(f),
		AnnMean:      m,
		AnnCov:       c,
		Sharpe:       sharpe,
		GrowthRate:   MaxGrowthRate(annualRF, sharpe),
		RiskFreeRate: annualRF,
		DiagonalOnly: diagonalOnly,
		Observations: returns.NumRows(),
		GeneratedAt:  time.Now(),
	}, nil
}
