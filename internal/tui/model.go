// Package tui implements the interactive terminal browser for ledger figures.
package tui

import (
	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/Veraticus/project-ledger/internal/report"
	"github.com/Veraticus/project-ledger/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	defaultWidth  = 100
	defaultHeight = 24
	// chromeHeight is the number of lines around the table.
	chromeHeight = 10
)

// Model holds the browser state. Every filter change re-runs the
// aggregation and the forecast over the loaded events.
type Model struct {
	theme      themes.Theme
	data       *report.Data
	result     ledger.Result
	outlook    report.Outlook
	engine     *forecast.Engine
	help       help.Model
	keymap     KeyMap
	projects   []string
	kinds      []model.EventKind
	table      table.Model
	projectIdx int
	kindIdx    int
	width      int
	height     int
	quitting   bool
}

// New creates a browser over an assembled report.
func New(data *report.Data) Model {
	kinds := []model.EventKind{model.KindUnknown}
	for _, option := range data.Kinds {
		if kind, err := model.KindFromCode(option.Code); err == nil {
			kinds = append(kinds, kind)
		}
	}

	m := Model{
		theme:    themes.Default,
		data:     data,
		engine:   forecast.New(data.Horizon),
		help:     help.New(),
		keymap:   DefaultKeyMap(),
		projects: append([]string{model.AllProjects}, data.Projects...),
		kinds:    kinds,
		width:    defaultWidth,
		height:   defaultHeight,
	}

	styles := table.DefaultStyles()
	styles.Header = m.theme.Header
	styles.Selected = m.theme.Selected
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-chromeHeight),
		table.WithStyles(styles),
	)
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-chromeHeight, 3))
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keymap.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keymap.NextProject):
			m.projectIdx = cycle(m.projectIdx, 1, len(m.projects))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.PrevProject):
			m.projectIdx = cycle(m.projectIdx, -1, len(m.projects))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.NextKind):
			m.kindIdx = cycle(m.kindIdx, 1, len(m.kinds))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.PrevKind):
			m.kindIdx = cycle(m.kindIdx, -1, len(m.kinds))
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keymap.Clear):
			m.projectIdx, m.kindIdx = 0, 0
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Filter returns the active filter.
func (m Model) Filter() model.Filter {
	return model.Filter{
		Project: m.projects[m.projectIdx],
		Kind:    m.kinds[m.kindIdx],
	}
}

// Result returns the aggregation for the active filter.
func (m Model) Result() ledger.Result {
	return m.result
}

func (m *Model) refresh() {
	m.result = ledger.Aggregate(m.data.Events, m.Filter())
	m.outlook = report.NewOutlook(m.engine, m.result)
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m Model) rows() []table.Row {
	return lo.Map(m.result.ProjectNames(), func(name string, _ int) table.Row {
		r := m.result.Projects[name]
		return table.Row{
			name,
			statusLabel(m.outlook.Status(name)),
			m.money(r.BudgetCoverage),
			m.money(r.TotalCost),
			m.money(r.RemainingBudget()),
			m.money(r.TotalInvoiced),
			r.CoverageRatio().String(),
			report.FormatHours(r.HoursTotal),
			lo.Ternary(r.ClosureDate != "", r.ClosureDate, "-"),
		}
	})
}

func (m Model) money(v float64) string {
	return report.FormatCurrency(v, m.data.Currency)
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Project", Width: 18},
		{Title: "Status", Width: 9},
		{Title: "Coverage", Width: 11},
		{Title: "Costs", Width: 11},
		{Title: "Remaining", Width: 11},
		{Title: "Invoiced", Width: 11},
		{Title: "Ratio", Width: 8},
		{Title: "Hours", Width: 8},
		{Title: "Closed", Width: 10},
	}
}

func statusLabel(s forecast.Status) string {
	if s == "" {
		return "-"
	}
	return string(s)
}

func cycle(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
