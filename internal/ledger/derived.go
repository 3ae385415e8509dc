package ledger

import (
	"fmt"
	"math"
)

// BalanceTolerance is the gap magnitude below which coverage counts as balanced.
const BalanceTolerance = 0.01

// CoverageStatus classifies the coverage gap.
type CoverageStatus string

// Coverage statuses.
const (
	CoverageBalanced      CoverageStatus = "balanced"
	CoverageMissing       CoverageStatus = "missing_coverage"
	CoverageOvercovered   CoverageStatus = "overcovered"
	balancedDisplay                      = "✓"
	undefinedRatioDisplay                = "-"
	infiniteRatioDisplay                 = "∞"
	zeroRatioDisplay                     = "0%"
)

// Label returns the card heading for the status.
func (s CoverageStatus) Label() string {
	switch s {
	case CoverageBalanced:
		return "Balanced"
	case CoverageMissing:
		return "Missing Coverage"
	case CoverageOvercovered:
		return "Overcovered"
	}
	return string(s)
}

// Ratio is a percentage that may be undefined or infinite.
type Ratio struct {
	Percent  float64 `json:"percent"`
	Defined  bool    `json:"defined"`
	Infinite bool    `json:"infinite"`
}

// String renders the ratio with one decimal, "0%" for zero, "∞" or "-".
func (r Ratio) String() string {
	switch {
	case r.Infinite:
		return infiniteRatioDisplay
	case !r.Defined:
		return undefinedRatioDisplay
	case r.Percent == 0:
		return zeroRatioDisplay
	default:
		return fmt.Sprintf("%.1f%%", r.Percent)
	}
}

// RemainingBudget is budget coverage minus total cost.
func (t Totals) RemainingBudget() float64 {
	return t.BudgetCoverage - t.TotalCost
}

// CoverageDenominator is the invoiced amount plus positive financial records.
func (t Totals) CoverageDenominator() float64 {
	return t.TotalInvoiced + t.PositiveFinancialRecord
}

// CoverageGap is the covered amount minus total cost. Negative means costs
// are not yet covered.
func (t Totals) CoverageGap() float64 {
	return t.CoverageDenominator() - t.TotalCost
}

// CoverageStatus classifies the coverage gap.
func (t Totals) CoverageStatus() CoverageStatus {
	gap := t.CoverageGap()
	switch {
	case math.Abs(gap) < BalanceTolerance:
		return CoverageBalanced
	case gap < 0:
		return CoverageMissing
	default:
		return CoverageOvercovered
	}
}

// CoverageGapDisplay returns "✓" when balanced and "" otherwise; callers
// format the amount themselves in the other cases.
func (t Totals) CoverageGapDisplay() string {
	if t.CoverageStatus() == CoverageBalanced {
		return balancedDisplay
	}
	return ""
}

// CoverageRatio is total cost over the coverage denominator.
func (t Totals) CoverageRatio() Ratio {
	denominator := t.CoverageDenominator()
	switch {
	case denominator > 0:
		return Ratio{Percent: t.TotalCost / denominator * 100, Defined: true}
	case t.TotalCost == 0:
		return Ratio{Defined: true}
	default:
		return Ratio{}
	}
}

// CostInvoicedRatio is total invoiced over total cost.
func (t Totals) CostInvoicedRatio() Ratio {
	switch {
	case t.TotalCost > 0:
		return Ratio{Percent: t.TotalInvoiced / t.TotalCost * 100, Defined: true}
	case t.TotalCost == 0 && t.TotalInvoiced > 0:
		return Ratio{Infinite: true}
	default:
		return Ratio{}
	}
}
