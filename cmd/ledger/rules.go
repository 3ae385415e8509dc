package main

import (
	"fmt"

	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print how each event type contributes to the totals",
		Long: `Print the contribution rule table as markdown. The dashboard's help section
renders the same document.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), ledger.RulesMarkdown())
		},
	}
}
