// Package ledger aggregates ledger events into budget, cost, invoice and
// coverage figures.
//
// The contribution rules are data, not code: Rules returns the full table and
// both Aggregate and the report's client script interpret it. Adding or
// changing a rule therefore changes both paths at once.
package ledger

import "github.com/Veraticus/project-ledger/internal/model"

// Measure names an accumulated figure.
type Measure string

// Totals measures.
const (
	MeasureBudgetCoverage          Measure = "budget_coverage"
	MeasureTotalCost               Measure = "total_cost"
	MeasureTotalInvoiced           Measure = "total_invoiced"
	MeasureDefermentTotal          Measure = "deferment_total"
	MeasureFinancialRecordTotal    Measure = "financial_record_total"
	MeasurePositiveFinancialRecord Measure = "positive_financial_record"
	MeasureHoursTotal              Measure = "hours_total"
	MeasureWorkingTimeCost         Measure = "working_time_cost"
	MeasurePurchaseCost            Measure = "purchase_cost"
	MeasureTravelCost              Measure = "travel_cost"
)

// Monthly bucket measures.
const (
	MeasureMonthlyCost   Measure = "cost"
	MeasureCoverageDelta Measure = "coverage_delta"
	MeasureMonthlyHours  Measure = "hours"
	MeasureWorkingCost   Measure = "working_cost"
)

// Source names the event field a contribution reads.
type Source string

// Contribution sources.
const (
	SourceAmount       Source = "amount"
	SourceComputedCost Source = "computed_cost"
	SourceHours        Source = "hours"
)

// Condition restricts a contribution to values of one sign.
type Condition string

// Contribution conditions. Zero values never contribute, whatever the condition.
const (
	WhenAny      Condition = "any"
	WhenPositive Condition = "positive"
	WhenNegative Condition = "negative"
)

// Contribution adds one event field to one measure.
type Contribution struct {
	Measure Measure   `json:"measure"`
	Source  Source    `json:"source"`
	When    Condition `json:"when"`
}

// Rule is the complete effect of one event kind.
type Rule struct {
	Label        string          `json:"label"`
	Note         string          `json:"note"`
	Totals       []Contribution  `json:"totals"`
	Monthly      []Contribution  `json:"monthly"`
	Kind         model.EventKind `json:"kind"`
	MarksClosure bool            `json:"marks_closure"`
}

func add(m Measure, s Source) Contribution {
	return Contribution{Measure: m, Source: s, When: WhenAny}
}

func addIf(m Measure, s Source, when Condition) Contribution {
	return Contribution{Measure: m, Source: s, When: when}
}

// RuleFor returns the rule of a kind. KindUnknown has an empty rule.
func RuleFor(kind model.EventKind) Rule {
	rule := Rule{Kind: kind, Label: kind.Label()}

	switch kind {
	case model.KindPurchaseOrder:
		rule.Totals = []Contribution{add(MeasureBudgetCoverage, SourceAmount)}
		rule.Monthly = []Contribution{add(MeasureCoverageDelta, SourceAmount)}
		rule.Note = "Adds to the budget."
	case model.KindInvoice:
		rule.Totals = []Contribution{add(MeasureTotalInvoiced, SourceAmount)}
		rule.Note = "Informational; never a cost."
	case model.KindWorkingTime:
		rule.Totals = []Contribution{
			add(MeasureTotalCost, SourceComputedCost),
			add(MeasureWorkingTimeCost, SourceComputedCost),
			add(MeasureHoursTotal, SourceHours),
		}
		rule.Monthly = []Contribution{
			add(MeasureMonthlyCost, SourceComputedCost),
			add(MeasureWorkingCost, SourceComputedCost),
			add(MeasureMonthlyHours, SourceHours),
		}
		rule.Note = "Cost is hours × hourly rate × (1 + additional rate)."
	case model.KindPurchase:
		rule.Totals = []Contribution{
			add(MeasureTotalCost, SourceAmount),
			add(MeasurePurchaseCost, SourceAmount),
		}
		rule.Monthly = []Contribution{add(MeasureMonthlyCost, SourceAmount)}
		rule.Note = "Cost."
	case model.KindTravelAndLogistics:
		rule.Totals = []Contribution{
			add(MeasureTotalCost, SourceAmount),
			add(MeasureTravelCost, SourceAmount),
		}
		rule.Monthly = []Contribution{add(MeasureMonthlyCost, SourceAmount)}
		rule.Note = "Travel and logistics cost."
	case model.KindDeferment:
		rule.Totals = []Contribution{
			add(MeasureBudgetCoverage, SourceAmount),
			addIf(MeasureTotalInvoiced, SourceAmount, WhenPositive),
			add(MeasureDefermentTotal, SourceAmount),
		}
		rule.Monthly = []Contribution{add(MeasureCoverageDelta, SourceAmount)}
		rule.Note = "Positive amounts add to the budget and count as invoiced; negative amounts reduce the budget. Never a cost."
	case model.KindFinancialRecord:
		rule.Totals = []Contribution{
			addIf(MeasureBudgetCoverage, SourceAmount, WhenNegative),
			addIf(MeasurePositiveFinancialRecord, SourceAmount, WhenPositive),
			add(MeasureFinancialRecordTotal, SourceAmount),
		}
		rule.Monthly = []Contribution{addIf(MeasureCoverageDelta, SourceAmount, WhenNegative)}
		rule.Note = "Negative amounts reduce the budget; positive amounts only widen the coverage denominator. Never a cost, never invoiced."
	case model.KindClosure:
		rule.MarksClosure = true
		rule.Note = "Marks the project end date and the forecast horizon."
	case model.KindUnknown:
	}

	return rule
}

// Rules returns the rule of every known kind in display order.
func Rules() []Rule {
	kinds := model.Kinds()
	rules := make([]Rule, 0, len(kinds))
	for _, kind := range kinds {
		rules = append(rules, RuleFor(kind))
	}
	return rules
}

// value reads the source field of an event. ok is false when the field is
// absent or the condition rejects the value.
func (c Contribution) value(e model.Event) (float64, bool) {
	var v float64
	switch c.Source {
	case SourceAmount:
		v = e.Amount
	case SourceHours:
		v = e.Hours
	case SourceComputedCost:
		if e.ComputedCost == nil {
			return 0, false
		}
		v = *e.ComputedCost
	default:
		return 0, false
	}

	if v == 0 {
		return 0, false
	}
	switch c.When {
	case WhenPositive:
		return v, v > 0
	case WhenNegative:
		return v, v < 0
	case WhenAny:
		return v, true
	}
	return 0, false
}
