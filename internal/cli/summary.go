package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/Veraticus/project-ledger/internal/report"
)

// SummaryProject is one project line of the terminal summary.
type SummaryProject struct {
	Rollup *ledger.Rollup
	Name   string
	Status forecast.Status
}

// Summary is the input of RenderSummary.
type Summary struct {
	Global   *ledger.Rollup
	Title    string
	Currency string
	Projects []SummaryProject
}

// RenderSummary renders the global figures and one line per project inside a
// box.
func RenderSummary(s Summary) string {
	money := func(v float64) string { return report.FormatCurrency(v, s.Currency) }
	g := s.Global

	gap := g.CoverageGapDisplay()
	if gap == "" {
		gap = money(g.CoverageGap())
	}

	remaining := money(g.RemainingBudget())
	if g.RemainingBudget() < 0 {
		remaining = ErrorStyle.Render(remaining)
	}

	lines := []string{
		field("PO coverage", money(g.BudgetCoverage)),
		field("Total costs", money(g.TotalCost)),
		field("Remaining budget", remaining),
		field("Invoiced", money(g.TotalInvoiced)),
		field(g.CoverageStatus().Label(), gap),
		field("Coverage ratio", g.CoverageRatio().String()),
		field("Cost/invoiced", g.CostInvoicedRatio().String()),
		field("Hours", report.FormatHours(g.HoursTotal)),
		field("Events", fmt.Sprintf("%d", g.EventCount)),
	}

	if len(s.Projects) > 0 {
		lines = append(lines, "", BoldStyle.Render("Projects"))
		for _, p := range s.Projects {
			lines = append(lines, fmt.Sprintf("%s %s %s",
				StatusStyle(p.Status).Render(StatusIcon),
				LabelStyle.Render(p.Name),
				money(p.Rollup.RemainingBudget())))
		}
	}

	return RenderBox(s.Title, strings.Join(lines, "\n"))
}

func field(label, value string) string {
	return LabelStyle.Render(label) + value
}
