package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageStatus(t *testing.T) {
	tests := []struct {
		name   string
		totals Totals
		want   CoverageStatus
	}{
		{name: "balanced within tolerance", totals: Totals{TotalCost: 100, TotalInvoiced: 100.005}, want: CoverageBalanced},
		{name: "missing coverage", totals: Totals{TotalCost: 100, TotalInvoiced: 50}, want: CoverageMissing},
		{name: "overcovered via financial record", totals: Totals{TotalCost: 100, TotalInvoiced: 50, PositiveFinancialRecord: 100}, want: CoverageOvercovered},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.totals.CoverageStatus())
		})
	}

	assert.Equal(t, "✓", Totals{}.CoverageGapDisplay())
	assert.Empty(t, Totals{TotalCost: 1}.CoverageGapDisplay())
	assert.Equal(t, "Missing Coverage", CoverageMissing.Label())
}

func TestRatios(t *testing.T) {
	tests := []struct {
		name         string
		totals       Totals
		coverage     string
		costInvoiced string
	}{
		{name: "nothing", totals: Totals{}, coverage: "0%", costInvoiced: "-"},
		{name: "cost without coverage", totals: Totals{TotalCost: 100}, coverage: "-", costInvoiced: "0%"},
		{name: "invoiced without cost", totals: Totals{TotalInvoiced: 100}, coverage: "0%", costInvoiced: "∞"},
		{name: "regular", totals: Totals{TotalCost: 50, TotalInvoiced: 100, PositiveFinancialRecord: 100}, coverage: "25.0%", costInvoiced: "200.0%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.coverage, tt.totals.CoverageRatio().String())
			assert.Equal(t, tt.costInvoiced, tt.totals.CostInvoicedRatio().String())
		})
	}
}

func TestRulesMarkdown(t *testing.T) {
	md := RulesMarkdown()

	for _, rule := range Rules() {
		assert.Contains(t, md, "| "+rule.Label+" |")
	}
	assert.Contains(t, md, "`positive_financial_record` += amount if > 0")
}
