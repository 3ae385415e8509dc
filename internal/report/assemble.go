// Package report assembles ledger figures into a self-contained HTML
// dashboard.
package report

import (
	"log/slog"
	"sort"
	"time"

	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DateSpan is the inclusive range of parsed event dates.
type DateSpan struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// KindOption is one entry of the event-kind filter.
type KindOption struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ProjectForecast carries the forecast figures of one project. Its JSON form
// matches what the client script computes for a filtered view.
type ProjectForecast struct {
	EAC         *float64            `json:"eac"`
	Chart       *forecast.ChartView `json:"chart"`
	Status      forecast.Status     `json:"status"`
	ClosureDate string              `json:"closure_date"`
	BurnRate    float64             `json:"burn_rate"`
}

// ProjectCard is the unfiltered state of one project.
type ProjectCard struct {
	Rollup   *ledger.Rollup
	Forecast ProjectForecast
	Name     string
}

// StatusCount is one entry of the status legend.
type StatusCount struct {
	Status forecast.Status `json:"status"`
	Count  int             `json:"count"`
}

// Data is everything the renderer needs. The fields tagged for JSON are
// embedded in the document for the client script.
type Data struct {
	GeneratedAt time.Time                  `json:"-"`
	Result      ledger.Result              `json:"-"`
	Forecasts   map[string]ProjectForecast `json:"-"`
	Portfolio   forecast.ChartView         `json:"-"`
	Horizon     int                        `json:"horizon"`
	DateSpan    DateSpan                   `json:"date_span"`
	ID          string                     `json:"id"`
	Title       string                     `json:"title"`
	Source      string                     `json:"source"`
	Currency    string                     `json:"currency"`
	Events      []model.Event              `json:"events"`
	Rules       []ledger.Rule              `json:"rules"`
	Projects    []string                   `json:"projects"`
	Kinds       []KindOption               `json:"kinds"`
	Sheets      []string                   `json:"sheets"`
	Cards       []ProjectCard              `json:"-"`
	Periods     QuickFilters               `json:"-"`
	Statuses    []StatusCount              `json:"-"`
}

// Assembler runs the aggregation and forecast passes over an event list.
type Assembler struct {
	engine   *forecast.Engine
	logger   *slog.Logger
	now      func() time.Time
	newID    func() string
	title    string
	currency string
}

// AssemblerOption configures an Assembler.
type AssemblerOption func(*Assembler)

// WithClock overrides the generation timestamp source.
func WithClock(now func() time.Time) AssemblerOption {
	return func(a *Assembler) {
		a.now = now
	}
}

// WithIDGenerator overrides the report ID source.
func WithIDGenerator(newID func() string) AssemblerOption {
	return func(a *Assembler) {
		a.newID = newID
	}
}

// NewAssembler creates an assembler.
func NewAssembler(engine *forecast.Engine, title, currency string, logger *slog.Logger, opts ...AssemblerOption) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Assembler{
		engine:   engine,
		logger:   logger,
		now:      time.Now,
		newID:    uuid.NewString,
		title:    title,
		currency: currency,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble aggregates the unfiltered events, projects every project and
// collects the filter options. It never applies a contribution rule itself.
// The forecasts it stores describe the unfiltered view; filtered views build
// their own Outlook.
func (a *Assembler) Assemble(events []model.Event, source string) *Data {
	result := ledger.Aggregate(events, model.Filter{})

	data := &Data{
		ID:          a.newID(),
		Title:       a.title,
		Source:      source,
		Currency:    a.currency,
		GeneratedAt: a.now(),
		Events:      events,
		Rules:       ledger.Rules(),
		Result:      result,
		Projects:    result.ProjectNames(),
		Kinds:       kindOptions(events),
		Sheets:      lo.Uniq(lo.Map(events, func(e model.Event, _ int) string { return e.Sheet })),
		DateSpan:    dateSpan(events),
		Horizon:     a.engine.Horizon(),
	}
	if data.Events == nil {
		data.Events = []model.Event{}
	}
	data.Periods = NewQuickFilters(data.DateSpan, eventMonths(events))

	outlook := NewOutlook(a.engine, result)
	data.Forecasts = outlook.Forecasts
	data.Portfolio = outlook.Portfolio
	data.Statuses = outlook.Statuses
	data.Cards = lo.Map(data.Projects, func(name string, _ int) ProjectCard {
		return ProjectCard{Name: name, Rollup: result.Projects[name], Forecast: outlook.Forecasts[name]}
	})

	a.logger.Debug("assembled report",
		"events", len(events),
		"projects", len(data.Projects),
		"date_from", data.DateSpan.From,
		"date_to", data.DateSpan.To)

	return data
}

// Outlook is the forecast state of one aggregation.
type Outlook struct {
	Forecasts map[string]ProjectForecast `json:"forecasts"`
	Portfolio forecast.ChartView         `json:"portfolio"`
	Statuses  []StatusCount              `json:"statuses"`
}

// NewOutlook projects and classifies every project of result. A filtered
// result yields the forecast of the filtered events only.
func NewOutlook(engine *forecast.Engine, result ledger.Result) Outlook {
	outlook := Outlook{Forecasts: make(map[string]ProjectForecast, len(result.Projects))}

	projections := make([]*forecast.Projection, 0, len(result.Projects))
	for _, name := range result.ProjectNames() {
		rollup := result.Projects[name]
		projection := engine.Project(rollup.Monthly, rollup.ClosureMonth())
		projections = append(projections, projection)
		outlook.Forecasts[name] = projectForecast(rollup, projection)
	}
	outlook.Portfolio = forecast.Portfolio(projections)
	outlook.Statuses = statusCounts(lo.Values(outlook.Forecasts))
	return outlook
}

// Status returns the status of a project, or "" when it is not part of the
// outlook.
func (o Outlook) Status(project string) forecast.Status {
	return o.Forecasts[project].Status
}

func projectForecast(rollup *ledger.Rollup, projection *forecast.Projection) ProjectForecast {
	pf := ProjectForecast{
		ClosureDate: rollup.ClosureDate,
		Status:      forecast.Classify(rollup.RemainingBudget(), rollup.BudgetCoverage, projection),
	}
	if projection != nil {
		view := projection.SingleView()
		pf.Chart = &view
		pf.BurnRate = projection.BurnRate
		pf.EAC = projection.ClosureBudget
	}
	return pf
}

func kindOptions(events []model.Event) []KindOption {
	present := lo.SliceToMap(events, func(e model.Event) (model.EventKind, bool) { return e.Kind, true })

	var options []KindOption
	for _, kind := range model.Kinds() {
		if present[kind] {
			options = append(options, KindOption{Code: kind.String(), Label: kind.Label()})
		}
	}
	return options
}

func eventMonths(events []model.Event) []string {
	months := lo.Uniq(lo.FilterMap(events, func(e model.Event, _ int) (string, bool) {
		return e.YearMonth, e.Dated()
	}))
	sort.Strings(months)
	return months
}

func dateSpan(events []model.Event) DateSpan {
	dates := lo.FilterMap(events, func(e model.Event, _ int) (string, bool) {
		return e.Date, e.Dated()
	})
	if len(dates) == 0 {
		return DateSpan{}
	}
	sort.Strings(dates)
	return DateSpan{From: dates[0], To: dates[len(dates)-1]}
}

func statusCounts(forecasts []ProjectForecast) []StatusCount {
	counts := lo.CountValuesBy(forecasts, func(f ProjectForecast) forecast.Status { return f.Status })
	return lo.Map(forecast.Statuses(), func(s forecast.Status, _ int) StatusCount {
		return StatusCount{Status: s, Count: counts[s]}
	})
}
