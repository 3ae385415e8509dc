package forecast

import "math"

// MarginalShare is the fraction of budget coverage a negative forecast may
// reach while still counting as marginal.
const MarginalShare = 0.1

// Status is the traffic-light classification of a project forecast.
type Status string

// Forecast statuses.
const (
	StatusHealthy  Status = "healthy"
	StatusMarginal Status = "marginal"
	StatusCritical Status = "critical"
)

// Statuses returns every status in legend order.
func Statuses() []Status {
	return []Status{StatusHealthy, StatusMarginal, StatusCritical}
}

// Color returns the indicator color of the status.
func (s Status) Color() string {
	switch s {
	case StatusHealthy:
		return "green"
	case StatusMarginal:
		return "yellow"
	case StatusCritical:
		return "red"
	}
	return ""
}

// Tooltip explains the status.
func (s Status) Tooltip() string {
	switch s {
	case StatusHealthy:
		return "Forecasted budget is positive"
	case StatusMarginal:
		return "Forecasted budget is slightly negative (within 10% of project budget)"
	case StatusCritical:
		return "Forecasted budget is significantly negative (beyond 10% threshold)"
	}
	return ""
}

// Classify rates a project. A closure budget (EAC) wins when present.
// Otherwise, with a burn rate and budget coverage, the next month's projected
// remaining budget is rated. Without either, only the sign of the current
// remaining budget matters.
func Classify(remaining, budgetCoverage float64, p *Projection) Status {
	if p != nil && p.ClosureBudget != nil {
		return rate(*p.ClosureBudget, budgetCoverage)
	}

	var burn float64
	if p != nil {
		burn = p.BurnRate
	}
	if burn > 0 && budgetCoverage > 0 {
		return rate(remaining-burn, budgetCoverage)
	}

	if remaining < 0 {
		return StatusCritical
	}
	return StatusHealthy
}

func rate(value, budgetCoverage float64) Status {
	if value >= 0 {
		return StatusHealthy
	}
	if math.Abs(value) <= math.Abs(budgetCoverage*MarginalShare) {
		return StatusMarginal
	}
	return StatusCritical
}
