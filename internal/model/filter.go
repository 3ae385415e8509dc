package model

// AllProjects is the project filter value that matches every project.
const AllProjects = "all"

// Filter selects the events an aggregation looks at. The zero value matches
// everything.
type Filter struct {
	// From and To are inclusive YYYY-MM-DD bounds; empty means unbounded.
	From    string
	To      string
	Project string
	// Kind KindUnknown matches every kind.
	Kind EventKind
}

// Matches reports whether the event passes every condition of the filter.
// Events without a parsed date never satisfy a date bound.
func (f Filter) Matches(e Event) bool {
	if f.Project != "" && f.Project != AllProjects && e.ProjectKey() != f.Project {
		return false
	}
	if f.Kind != KindUnknown && e.Kind != f.Kind {
		return false
	}
	if f.From != "" || f.To != "" {
		if !e.Dated() {
			return false
		}
		if f.From != "" && e.Date < f.From {
			return false
		}
		if f.To != "" && e.Date > f.To {
			return false
		}
	}
	return true
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.From == "" && f.To == "" && (f.Project == "" || f.Project == AllProjects) && f.Kind == KindUnknown
}
