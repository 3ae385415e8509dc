package main

import (
	"fmt"

	"github.com/Veraticus/project-ledger/internal/cli"
	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate <input-file|sheets:ID> [output-file]",
		Short: "Generate the HTML dashboard",
		Long: `Read a project event workbook and write a self-contained interactive HTML
dashboard. The output defaults to report.output (dashboard.html).

The input is either an .xlsx file or a Google Sheets spreadsheet given as
sheets:<spreadsheet-id>.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runGenerate,
	}

	cmd.Flags().String("title", "", "Dashboard title (overrides config)")
	cmd.Flags().Bool("quiet", false, "Do not print the progress bar and summary")

	_ = viper.BindPFlag("report.title", cmd.Flags().Lookup("title"))

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	input := args[0]

	events, err := loadEvents(cmd.Context(), input, !quiet)
	if err != nil {
		return err
	}

	data, cfg, err := assemble(events, input)
	if err != nil {
		return err
	}

	output := cfg.Output
	if len(args) == 2 {
		output = args[1]
	}

	renderer, err := report.NewRenderer(cfg.CurrencySymbol)
	if err != nil {
		return fmt.Errorf("failed to prepare renderer: %w", err)
	}
	if err := renderer.RenderFile(output, data); err != nil {
		return common.NewUserError(fmt.Sprintf("Failed to write '%s'", output), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatSuccess("Dashboard generated successfully: "+output))
	if !quiet {
		fmt.Fprintln(out, cli.RenderSummary(summarize(data, data.Result)))
	}
	return nil
}
