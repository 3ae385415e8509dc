package main

import (
	"github.com/Veraticus/project-ledger/internal/tui"
	"github.com/spf13/cobra"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <input-file|sheets:ID>",
		Short: "Browse per-project figures interactively",
		Long: `Open a terminal table of per-project figures.

Keys: p/P cycle the project filter, k/K cycle the event type filter,
c clears the filters, ? toggles help and q quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := loadEvents(cmd.Context(), args[0], false)
			if err != nil {
				return err
			}

			data, _, err := assemble(events, args[0])
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), data)
		},
	}
}
