// Package forecast projects a project's remaining budget forward from its
// monthly history.
package forecast

import (
	"fmt"
	"time"

	"github.com/Veraticus/project-ledger/internal/ledger"
)

// DefaultHorizon is the number of months projected past the last actual month.
const DefaultHorizon = 12

const monthLayout = "2006-01"

// Projection is the remaining-budget trajectory of one project.
type Projection struct {
	// ClosureBudget is the remaining budget at the closure month, when the
	// closure falls inside the actual data or the horizon.
	ClosureBudget     *float64  `json:"closure_budget"`
	ClosureMonth      string    `json:"closure_month"`
	ActualMonths      []string  `json:"actual_months"`
	ActualRemaining   []float64 `json:"actual_remaining"`
	ForecastMonths    []string  `json:"forecast_months"`
	ForecastRemaining []float64 `json:"forecast_remaining"`
	BurnRate          float64   `json:"burn_rate"`
}

// LastActualMonth returns the final month with recorded activity.
func (p *Projection) LastActualMonth() string {
	return p.ActualMonths[len(p.ActualMonths)-1]
}

// CurrentRemaining returns the remaining budget at the last actual month.
func (p *Projection) CurrentRemaining() float64 {
	return p.ActualRemaining[len(p.ActualRemaining)-1]
}

// Engine produces projections over a fixed horizon.
type Engine struct {
	horizon int
}

// New creates an engine. A non-positive horizon uses DefaultHorizon.
func New(horizon int) *Engine {
	if horizon <= 0 {
		horizon = DefaultHorizon
	}
	return &Engine{horizon: horizon}
}

// Horizon returns the number of forecast months.
func (e *Engine) Horizon() int {
	return e.horizon
}

// Project computes the trajectory of a monthly series. closureMonth is the
// YYYY-MM of the project's closure, or "". It returns nil for an empty series.
//
// Forecast months only subtract the burn rate; coverage never grows past the
// last actual month. Once the closure month is reached its budget is held for
// the rest of the horizon.
func (e *Engine) Project(series ledger.MonthlySeries, closureMonth string) *Projection {
	months := series.Months()
	if len(months) == 0 {
		return nil
	}

	p := &Projection{
		ActualMonths:    months,
		ActualRemaining: make([]float64, len(months)),
		ClosureMonth:    closureMonth,
	}

	var coverage, cost float64
	for i, month := range months {
		coverage += series[month].CoverageDelta
		cost += series[month].Cost
		p.ActualRemaining[i] = coverage - cost
	}
	p.BurnRate = BurnRate(series, p.ActualRemaining)

	last := p.LastActualMonth()
	if closureMonth != "" && closureMonth <= last {
		if budget, ok := remainingAt(p, closureMonth); ok {
			p.ClosureBudget = &budget
		}
		return p
	}

	current := p.CurrentRemaining()
	closed := false
	for i := 1; i <= e.horizon; i++ {
		month := addMonths(last, i)
		if !closed {
			current -= p.BurnRate
			if month == closureMonth {
				budget := current
				p.ClosureBudget = &budget
				closed = true
			}
		}
		p.ForecastMonths = append(p.ForecastMonths, month)
		p.ForecastRemaining = append(p.ForecastRemaining, current)
	}

	return p
}

// BurnRate averages the cost of the last two months with cost activity. With
// a single such month its cost is used directly. With none, it falls back to
// the drop between the last two remaining-budget points, floored at zero.
func BurnRate(series ledger.MonthlySeries, remaining []float64) float64 {
	var costs []float64
	for _, month := range series.Months() {
		if c := series[month].Cost; c != 0 {
			costs = append(costs, c)
		}
	}

	switch n := len(costs); {
	case n >= 2:
		return (costs[n-1] + costs[n-2]) / 2
	case n == 1:
		return costs[0]
	}

	if n := len(remaining); n >= 2 {
		return max(0, remaining[n-2]-remaining[n-1])
	}
	return 0
}

// remainingAt returns the actual remaining budget as of month: the value of
// the latest actual month not after it. ok is false before the first actual
// month.
func remainingAt(p *Projection, month string) (value float64, ok bool) {
	for i, m := range p.ActualMonths {
		if m > month {
			break
		}
		value, ok = p.ActualRemaining[i], true
	}
	return value, ok
}

// addMonths shifts a YYYY-MM label by n months. Malformed labels are returned
// unchanged with the offset appended, which keeps ordering stable.
func addMonths(month string, n int) string {
	t, err := time.Parse(monthLayout, month)
	if err != nil {
		return fmt.Sprintf("%s+%d", month, n)
	}
	return t.AddDate(0, n, 0).Format(monthLayout)
}
