package ledger

import (
	"fmt"
	"strings"
)

// RulesMarkdown renders the rule table as a markdown document. The report
// help panel and the rules command both show it.
func RulesMarkdown() string {
	var b strings.Builder

	b.WriteString("# Event rules\n\n")
	b.WriteString("Every event adds to its project and to the portfolio totals.\n\n")
	b.WriteString("| Event type | Totals | Monthly | Notes |\n")
	b.WriteString("|---|---|---|---|\n")

	for _, rule := range Rules() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			rule.Label,
			describe(rule.Totals),
			describe(rule.Monthly),
			rule.Note)
	}

	b.WriteString("\n## Derived figures\n\n")
	b.WriteString("- **Remaining budget**: budget coverage minus total cost.\n")
	b.WriteString("- **Coverage gap**: invoiced plus positive financial records, minus total cost. ")
	fmt.Fprintf(&b, "Balanced when the gap is under %.2f.\n", BalanceTolerance)
	b.WriteString("- **Coverage ratio**: total cost over invoiced plus positive financial records.\n")
	b.WriteString("- **Cost/invoiced ratio**: invoiced over total cost; `∞` when nothing was spent yet.\n")

	return b.String()
}

func describe(contributions []Contribution) string {
	if len(contributions) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(contributions))
	for _, c := range contributions {
		part := fmt.Sprintf("`%s` += %s", c.Measure, c.Source)
		switch c.When {
		case WhenPositive:
			part += " if > 0"
		case WhenNegative:
			part += " if < 0"
		case WhenAny:
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, "; ")
}
