package main

import (
	"fmt"
	"time"

	"github.com/Veraticus/project-ledger/internal/cli"
	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <input-file|sheets:ID>",
		Short: "Print the financial summary in the terminal",
		Long: `Aggregate the workbook and print the global figures and per-project status.

Filters narrow the aggregation the same way the dashboard filters do. Events
without a date are left out as soon as --from or --to is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runSummary,
	}

	cmd.Flags().String("project", "", "Only this project")
	cmd.Flags().String("kind", "", "Only this event type (e.g. PO, Invoice, WorkingTime)")
	cmd.Flags().String("from", "", "Start date, inclusive (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date, inclusive (YYYY-MM-DD)")

	return cmd
}

func runSummary(cmd *cobra.Command, args []string) error {
	filter, err := parseFilter(cmd)
	if err != nil {
		return err
	}

	events, err := loadEvents(cmd.Context(), args[0], false)
	if err != nil {
		return err
	}

	data, _, err := assemble(events, args[0])
	if err != nil {
		return err
	}

	result := data.Result
	if !filter.IsZero() {
		result = ledger.Aggregate(events, filter)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderSummary(summarize(data, result)))
	return nil
}

func parseFilter(cmd *cobra.Command) (model.Filter, error) {
	var filter model.Filter
	filter.Project, _ = cmd.Flags().GetString("project")
	filter.From, _ = cmd.Flags().GetString("from")
	filter.To, _ = cmd.Flags().GetString("to")

	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		k, err := model.KindFromCode(kind)
		if err != nil {
			return model.Filter{}, common.NewUserError(fmt.Sprintf("Unknown event type '%s'", kind), err)
		}
		filter.Kind = k
	}

	for _, date := range []string{filter.From, filter.To} {
		if date == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			return model.Filter{}, common.NewUserError(fmt.Sprintf("Invalid date '%s', expected YYYY-MM-DD", date), err)
		}
	}

	return filter, nil
}
