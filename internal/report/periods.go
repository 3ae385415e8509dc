package report

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// FinancialYearStart is the month a financial year begins in. FY25 runs from
// April 2024 through March 2025.
const FinancialYearStart = time.April

// QuickFilter is a date preset of the dashboard filter.
type QuickFilter struct {
	Label string
	From  string
	To    string
}

// QuickFilters are the date presets offered next to the filter inputs.
type QuickFilters struct {
	FinancialYears []QuickFilter
	Quarters       []QuickFilter
	Months         []QuickFilter
}

// NewQuickFilters builds the presets for the financial years and quarters
// that overlap span, and for every month with dated events.
func NewQuickFilters(span DateSpan, months []string) QuickFilters {
	var q QuickFilters

	for _, month := range months {
		start, err := time.Parse(monthLayout, month)
		if err != nil {
			continue
		}
		q.Months = append(q.Months, period(start.Format("Jan-06"), start, start.AddDate(0, 1, -1)))
	}

	first, err := time.Parse(time.DateOnly, span.From)
	if err != nil {
		return q
	}
	last, err := time.Parse(time.DateOnly, span.To)
	if err != nil {
		return q
	}

	year := first.Year()
	if first.Month() < FinancialYearStart {
		year--
	}
	for ; ; year++ {
		start := time.Date(year, FinancialYearStart, 1, 0, 0, 0, 0, time.UTC)
		if start.After(last) {
			break
		}
		label := fmt.Sprintf("FY%02d", (year+1)%100)
		if end := start.AddDate(1, 0, -1); !end.Before(first) {
			q.FinancialYears = append(q.FinancialYears, period(label, start, end))
		}

		for quarter := 0; quarter < 4; quarter++ {
			qs := start.AddDate(0, 3*quarter, 0)
			qe := qs.AddDate(0, 3, -1)
			if !qe.Before(first) && !qs.After(last) {
				q.Quarters = append(q.Quarters, period(fmt.Sprintf("%sQ%d", label, quarter+1), qs, qe))
			}
		}
	}

	return q
}

func period(label string, from, to time.Time) QuickFilter {
	return QuickFilter{Label: label, From: from.Format(time.DateOnly), To: to.Format(time.DateOnly)}
}
