package ledger

import (
	"sort"

	"github.com/Veraticus/project-ledger/internal/model"
)

// Totals holds the accumulated measures of a project or of all projects.
type Totals struct {
	BudgetCoverage          float64 `json:"budget_coverage"`
	TotalCost               float64 `json:"total_cost"`
	TotalInvoiced           float64 `json:"total_invoiced"`
	DefermentTotal          float64 `json:"deferment_total"`
	FinancialRecordTotal    float64 `json:"financial_record_total"`
	PositiveFinancialRecord float64 `json:"positive_financial_record"`
	HoursTotal              float64 `json:"hours_total"`
	WorkingTimeCost         float64 `json:"working_time_cost"`
	PurchaseCost            float64 `json:"purchase_cost"`
	TravelCost              float64 `json:"travel_cost"`
}

func (t *Totals) add(m Measure, v float64) {
	switch m {
	case MeasureBudgetCoverage:
		t.BudgetCoverage += v
	case MeasureTotalCost:
		t.TotalCost += v
	case MeasureTotalInvoiced:
		t.TotalInvoiced += v
	case MeasureDefermentTotal:
		t.DefermentTotal += v
	case MeasureFinancialRecordTotal:
		t.FinancialRecordTotal += v
	case MeasurePositiveFinancialRecord:
		t.PositiveFinancialRecord += v
	case MeasureHoursTotal:
		t.HoursTotal += v
	case MeasureWorkingTimeCost:
		t.WorkingTimeCost += v
	case MeasurePurchaseCost:
		t.PurchaseCost += v
	case MeasureTravelCost:
		t.TravelCost += v
	}
}

// Month is one year-month bucket.
type Month struct {
	Cost          float64 `json:"cost"`
	CoverageDelta float64 `json:"coverage_delta"`
	Hours         float64 `json:"hours"`
	WorkingCost   float64 `json:"working_cost"`
}

func (m *Month) add(measure Measure, v float64) {
	switch measure {
	case MeasureMonthlyCost:
		m.Cost += v
	case MeasureCoverageDelta:
		m.CoverageDelta += v
	case MeasureMonthlyHours:
		m.Hours += v
	case MeasureWorkingCost:
		m.WorkingCost += v
	}
}

// MonthlySeries maps YYYY-MM buckets to their activity.
type MonthlySeries map[string]Month

// Months returns the bucket keys in chronological order.
func (s MonthlySeries) Months() []string {
	months := make([]string, 0, len(s))
	for m := range s {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}

func (s MonthlySeries) add(month string, measure Measure, v float64) {
	bucket := s[month]
	bucket.add(measure, v)
	s[month] = bucket
}

// Rollup holds the figures of one project, or of all projects for the global
// bucket.
type Rollup struct {
	Monthly MonthlySeries `json:"monthly"`
	// ClosureDate is the date of the last Closure event seen; empty if none.
	ClosureDate string `json:"closure_date"`
	Totals
	EventCount int `json:"event_count"`
}

func newRollup() *Rollup {
	return &Rollup{Monthly: MonthlySeries{}}
}

// ClosureMonth returns the YYYY-MM of the closure date, or "".
func (a *Rollup) ClosureMonth() string {
	if len(a.ClosureDate) < 7 {
		return ""
	}
	return a.ClosureDate[:7]
}

// Result is the output of one aggregation pass.
type Result struct {
	Projects map[string]*Rollup `json:"projects"`
	Global   *Rollup            `json:"global"`
}

// ProjectNames returns the aggregated projects in sorted order.
func (r Result) ProjectNames() []string {
	names := make([]string, 0, len(r.Projects))
	for name := range r.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ClosedProjects counts projects carrying a closure date.
func (r Result) ClosedProjects() int {
	closed := 0
	for _, agg := range r.Projects {
		if agg.ClosureDate != "" {
			closed++
		}
	}
	return closed
}

// MonthSummary is the working time booked in one month.
type MonthSummary struct {
	Month       string   `json:"month"`
	Projects    []string `json:"projects"`
	Hours       float64  `json:"hours"`
	WorkingCost float64  `json:"working_cost"`
}

// MonthlySummary lists the months with working time in chronological order,
// with the projects that booked it in name order.
func (r Result) MonthlySummary() []MonthSummary {
	summary := []MonthSummary{}
	for _, month := range r.Global.Monthly.Months() {
		m := r.Global.Monthly[month]
		if m.Hours == 0 && m.WorkingCost == 0 {
			continue
		}

		row := MonthSummary{Month: month, Hours: m.Hours, WorkingCost: m.WorkingCost}
		for _, name := range r.ProjectNames() {
			if pm := r.Projects[name].Monthly[month]; pm.Hours != 0 || pm.WorkingCost != 0 {
				row.Projects = append(row.Projects, name)
			}
		}
		summary = append(summary, row)
	}
	return summary
}

// Aggregate folds the events that pass the filter into per-project and global
// rollups. It never mutates events and returns the same figures for the same
// input: events are visited in slice order, so floating-point sums are
// reproducible.
func Aggregate(events []model.Event, filter model.Filter) Result {
	result := Result{
		Projects: make(map[string]*Rollup),
		Global:   newRollup(),
	}

	for _, event := range events {
		if !event.Kind.Known() || !filter.Matches(event) {
			continue
		}

		key := event.ProjectKey()
		project, ok := result.Projects[key]
		if !ok {
			project = newRollup()
			result.Projects[key] = project
		}

		apply(RuleFor(event.Kind), event, project, result.Global)
	}

	return result
}

func apply(rule Rule, event model.Event, buckets ...*Rollup) {
	for _, bucket := range buckets {
		bucket.EventCount++

		for _, c := range rule.Totals {
			if v, ok := c.value(event); ok {
				bucket.add(c.Measure, v)
			}
		}

		if event.Dated() {
			for _, c := range rule.Monthly {
				if v, ok := c.value(event); ok {
					bucket.Monthly.add(event.YearMonth, c.Measure, v)
				}
			}
		}

		if rule.MarksClosure && event.Dated() {
			bucket.ClosureDate = event.Date
		}
	}
}
