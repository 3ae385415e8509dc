package model

// UnknownProject is the grouping key for events without a project label.
const UnknownProject = "Unknown"

// Event is one normalized workbook row.
//
// Rates are fractions: a surcharge of 20% is stored as 0.20. Text carrying a
// percent sign is divided by 100 on the way in; bare numbers are taken as-is.
type Event struct {
	HourlyRate    *float64  `json:"hourly_rate"`
	SurchargeRate *float64  `json:"surcharge_rate"`
	ComputedCost  *float64  `json:"computed_cost"`
	Date          string    `json:"date"`
	YearMonth     string    `json:"year_month"`
	EventType     string    `json:"event_type"`
	Project       string    `json:"project"`
	Comment       string    `json:"comment"`
	Sheet         string    `json:"sheet"`
	Index         int       `json:"index"`
	Kind          EventKind `json:"kind"`
	Hours         float64   `json:"hours"`
	Amount        float64   `json:"amount"`
}

// ProjectKey returns the label used to group the event.
func (e Event) ProjectKey() string {
	if e.Project == "" {
		return UnknownProject
	}
	return e.Project
}

// Dated reports whether the event carries a parsed calendar date.
func (e Event) Dated() bool {
	return e.YearMonth != ""
}
