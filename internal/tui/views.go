package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// View renders the browser.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title := m.theme.Title.Render(m.data.Title)
	if m.data.Source != "" {
		title += "  " + m.theme.Subtitle.Render(m.data.Source)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.renderFilters(),
		m.theme.BorderedBox.Render(m.table.View()),
		m.renderTotals(),
		m.renderLegend(),
		m.help.View(m.keymap),
	)

	return lipgloss.NewStyle().MaxWidth(m.width).Render(content)
}

func (m Model) renderFilters() string {
	project := m.projects[m.projectIdx]
	if project == model.AllProjects {
		project = "All projects"
	}
	kind := "All types"
	if k := m.kinds[m.kindIdx]; k.Known() {
		kind = k.Label()
	}
	return fmt.Sprintf("Project: %s  Type: %s",
		m.theme.Filter.Render(project),
		m.theme.Filter.Render(kind))
}

func (m Model) renderTotals() string {
	g := m.result.Global

	gap := g.CoverageGapDisplay()
	if gap == "" {
		gap = m.money(g.CoverageGap())
	}
	gapStyle := m.theme.StatusSuccess
	if g.CoverageGap() < 0 && gap != "✓" {
		gapStyle = m.theme.StatusError
	}

	parts := []string{
		fmt.Sprintf("Events %d", g.EventCount),
		"Remaining " + m.money(g.RemainingBudget()),
		g.CoverageStatus().Label() + " " + gapStyle.Render(gap),
		"Cost/invoiced " + g.CostInvoicedRatio().String(),
		fmt.Sprintf("Closed %d", m.result.ClosedProjects()),
	}
	return m.theme.Bold.Render(strings.Join(parts, "  │  "))
}

func (m Model) renderLegend() string {
	parts := make([]string, 0, len(m.outlook.Statuses))
	for _, sc := range m.outlook.Statuses {
		parts = append(parts, m.theme.Status(string(sc.Status)).Render(fmt.Sprintf("● %d %s", sc.Count, sc.Status)))
	}
	return strings.Join(parts, "  ")
}
