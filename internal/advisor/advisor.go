// Package advisor turns a raw allocation into human-facing cautions. The
// solver reports the unconstrained analytic optimum; this layer flags the
// cases where acting on it blindly would be reckless.
package advisor

import (
	"fmt"
	"math"

	"KellyFolio/internal/model"
)

// smallSampleThreshold is the observation count below which the mean and
// covariance estimates are too noisy to lean on.
const smallSampleThreshold = 60

// Disclaimers accompany every report regardless of the numbers.
var Disclaimers = []string{
	"Kelly criterion assumes returns are Gaussian and i.i.d. Real markets deviate significantly from these assumptions.",
	"Results require continuous rebalancing to the target allocation.",
	"Past return distributions may not persist (regime shifts).",
}

// Advice is the advisory output for one allocation run.
type Advice struct {
	Warnings    []string
	Disclaimers []string
}

// Assess inspects an allocation and collects warnings: per-symbol leverage
// above 1x and a small estimation sample.
func Assess(alloc *model.Allocation) *Advice {
	advice := &Advice{Disclaimers: Disclaimers}

	for i, symbol := range alloc.Symbols {
		f := alloc.Full[i]
		if math.Abs(f) <= 1.0 {
			continue
		}
		position := "leveraged long"
		if f < 0 {
			position = "short"
		}
		advice.Warnings = append(advice.Warnings,
			fmt.Sprintf("%s: full Kelly leverage is %.2fx (implies %s position)", symbol, f, position))
	}

	if alloc.Observations < smallSampleThreshold {
		advice.Warnings = append(advice.Warnings,
			fmt.Sprintf("small sample size (%d observations), estimates may be unreliable", alloc.Observations))
	}

	return advice
}
