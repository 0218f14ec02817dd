package notifier

import (
	"fmt"
	"strings"

	"KellyFolio/internal/advisor"
	"KellyFolio/internal/model"
)

const rule = "============================================================"

// FormatReport formats an allocation into the results table. The same text is
// printed to stdout in one-shot mode and sent as a Telegram message in watch
// mode.
func FormatReport(alloc *model.Allocation, fullKelly bool) string {
	var b strings.Builder

	b.WriteString("\n" + rule + "\n")
	b.WriteString("Kelly Criterion Capital Allocation\n")
	b.WriteString(rule + "\n")

	b.WriteString(fmt.Sprintf("%-10s %12s %12s %12s\n", "Ticker", "Full Kelly", "Half Kelly", "Ann. Excess"))
	b.WriteString(strings.Repeat("-", 60) + "\n")
	for i, symbol := range alloc.Symbols {
		b.WriteString(fmt.Sprintf("%-10s %12.4f %12.4f %12.4f\n",
			symbol, alloc.Full[i], alloc.Half[i], alloc.AnnMean[i]))
	}
	b.WriteString(strings.Repeat("-", 60) + "\n")

	label := "Half"
	if fullKelly {
		label = "Full"
	}
	b.WriteString(fmt.Sprintf("Recommended allocation: %s Kelly\n", label))
	if alloc.DiagonalOnly {
		b.WriteString("Covariance: diagonal only (correlations ignored)\n")
	}
	b.WriteString(fmt.Sprintf("Portfolio Sharpe Ratio: %.4f\n", alloc.Sharpe))
	b.WriteString(fmt.Sprintf("Max Growth Rate (CAGR): %.4f (%.2f%%)\n", alloc.GrowthRate, alloc.GrowthRate*100))
	b.WriteString(rule + "\n")

	return b.String()
}

// FormatPositions formats the dollar-sized allocation plan for a bankroll.
func FormatPositions(bankroll float64, positions []model.Position) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("\nPosition sizing for bankroll %.2f:\n", bankroll))
	for _, p := range positions {
		side := "long"
		if p.Dollars < 0 {
			side = "short"
		}
		b.WriteString(fmt.Sprintf("  %-10s %10.2f (%s, %.4fx)\n", p.Symbol, p.Dollars, side, p.Leverage))
	}
	return b.String()
}

// FormatWarnings formats the advisory block written to stderr.
func FormatWarnings(advice *advisor.Advice) string {
	var b strings.Builder

	if len(advice.Warnings) > 0 {
		b.WriteString("\nWARNING:\n")
		for _, w := range advice.Warnings {
			b.WriteString("  - " + w + "\n")
		}
	}

	b.WriteString("\nDISCLAIMERS:\n")
	for _, d := range advice.Disclaimers {
		b.WriteString("  - " + d + "\n")
	}
	return b.String()
}
