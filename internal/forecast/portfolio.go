package forecast

import "sort"

// Portfolio sums project projections month by month over the union of their
// months. A month in a project's actual range uses its actual remaining
// budget. A closed project holds its closure budget from the closure month
// on. Otherwise the project's forecast value for the month is used, and a
// project without one contributes nothing.
func Portfolio(projections []*Projection) ChartView {
	var (
		labelSet    = make(map[string]struct{})
		lastActual  string
		firstClosed string
	)

	for _, p := range projections {
		if p == nil {
			continue
		}
		for _, m := range p.ActualMonths {
			labelSet[m] = struct{}{}
		}
		for _, m := range p.ForecastMonths {
			labelSet[m] = struct{}{}
		}
		if last := p.LastActualMonth(); last > lastActual {
			lastActual = last
		}
		if p.ClosureBudget != nil && (firstClosed == "" || p.ClosureMonth < firstClosed) {
			firstClosed = p.ClosureMonth
		}
	}

	labels := make([]string, 0, len(labelSet))
	for m := range labelSet {
		labels = append(labels, m)
	}
	sort.Strings(labels)

	values := make([]float64, len(labels))
	for i, month := range labels {
		for _, p := range projections {
			if p == nil {
				continue
			}
			if v, ok := p.valueAt(month); ok {
				values[i] += v
			}
		}
	}

	view := Split(labels, values, indexOf(labels, lastActual))
	view.ClosureIndex = indexOf(labels, firstClosed)
	return view
}

// valueAt returns the remaining budget the project contributes to a
// portfolio month.
func (p *Projection) valueAt(month string) (float64, bool) {
	if month < p.ActualMonths[0] {
		return 0, false
	}
	if month <= p.LastActualMonth() {
		return remainingAt(p, month)
	}
	if p.ClosureBudget != nil && month >= p.ClosureMonth {
		return *p.ClosureBudget, true
	}
	for i, m := range p.ForecastMonths {
		if m == month {
			return p.ForecastRemaining[i], true
		}
	}
	return 0, false
}
