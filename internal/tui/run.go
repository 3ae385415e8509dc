package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/project-ledger/internal/report"
	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the browser on the alternate screen and blocks until the user
// quits or the context is cancelled.
func Run(ctx context.Context, data *report.Data) error {
	program := tea.NewProgram(New(data),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
