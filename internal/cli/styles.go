// Package cli renders ledger figures for the terminal using lipgloss.
package cli

import (
	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/charmbracelet/lipgloss"
)

var (
	// PrimaryColor is used for titles.
	PrimaryColor = lipgloss.Color("#2563EB")
	// SuccessColor marks healthy projects and completed steps.
	SuccessColor = lipgloss.Color("#16A34A")
	// WarningColor marks marginal projects.
	WarningColor = lipgloss.Color("#D97706")
	// ErrorColor marks critical projects, deficits and failures.
	ErrorColor = lipgloss.Color("#DC2626")
	// SubtleColor is used for labels.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for box titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	// WarningStyle formats warnings.
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
	// ErrorStyle formats errors and negative amounts.
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor)
	// SubtleStyle formats unknown statuses.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)
	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)

	// BoxStyle frames the summary.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// LabelStyle aligns the left column of key/value listings.
	LabelStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(20)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	StatusIcon  = "●"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// StatusStyle returns the style of a forecast status.
func StatusStyle(s forecast.Status) lipgloss.Style {
	switch s {
	case forecast.StatusHealthy:
		return SuccessStyle
	case forecast.StatusMarginal:
		return WarningStyle
	case forecast.StatusCritical:
		return ErrorStyle
	}
	return SubtleStyle
}

// RenderBox renders content under a title inside a rounded border.
func RenderBox(title, content string) string {
	return BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render(title),
		"",
		content,
	))
}
