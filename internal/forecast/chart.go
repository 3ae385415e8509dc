package forecast

// ChartView is a chart-ready trajectory. Every series is aligned with Labels;
// nil entries are gaps. Positive and Negative hold the forecast part split by
// sign and both start at the last actual point so the lines join.
type ChartView struct {
	Labels   []string   `json:"labels"`
	Actual   []*float64 `json:"actual"`
	Positive []*float64 `json:"positive"`
	Negative []*float64 `json:"negative"`
	// LastActualIndex is -1 when there is no actual data.
	LastActualIndex int `json:"last_actual_index"`
	// ClosureIndex is -1 when no closure month is on the chart.
	ClosureIndex int `json:"closure_index"`
}

// SingleView returns the chart of one project. With a closure at or after the
// last actual month, the forecast stops one month past the closure.
func (p *Projection) SingleView() ChartView {
	months := append([]string(nil), p.ActualMonths...)
	values := append([]float64(nil), p.ActualRemaining...)

	forecastLen := len(p.ForecastMonths)
	if p.ClosureBudget != nil && p.ClosureMonth >= p.LastActualMonth() {
		for i, month := range p.ForecastMonths {
			if month > p.ClosureMonth {
				forecastLen = i + 1
				break
			}
		}
	}
	months = append(months, p.ForecastMonths[:forecastLen]...)
	values = append(values, p.ForecastRemaining[:forecastLen]...)

	view := Split(months, values, len(p.ActualMonths)-1)
	view.ClosureIndex = indexOf(months, p.ClosureMonth)
	return view
}

// Split aligns values with labels and partitions the points after
// lastActual by sign. Where consecutive forecast points change sign, both
// points are written to both sign series so the crossing renders without a
// gap.
func Split(labels []string, values []float64, lastActual int) ChartView {
	n := len(values)
	view := ChartView{
		Labels:          labels,
		Actual:          make([]*float64, n),
		Positive:        make([]*float64, n),
		Negative:        make([]*float64, n),
		LastActualIndex: lastActual,
		ClosureIndex:    -1,
	}

	for i := 0; i <= lastActual && i < n; i++ {
		view.Actual[i] = point(values[i])
	}

	start := max(lastActual, 0)
	for i := start; i < n; i++ {
		if values[i] >= 0 {
			view.Positive[i] = point(values[i])
		} else {
			view.Negative[i] = point(values[i])
		}

		if i+1 < n && (values[i] >= 0) != (values[i+1] >= 0) {
			for _, j := range []int{i, i + 1} {
				view.Positive[j] = point(values[j])
				view.Negative[j] = point(values[j])
			}
		}
	}

	return view
}

func point(v float64) *float64 {
	return &v
}

func indexOf(labels []string, label string) int {
	if label == "" {
		return -1
	}
	for i, l := range labels {
		if l == label {
			return i
		}
	}
	return -1
}
