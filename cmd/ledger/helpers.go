package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/project-ledger/internal/cli"
	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/config"
	"github.com/Veraticus/project-ledger/internal/forecast"
	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/Veraticus/project-ledger/internal/normalize"
	"github.com/Veraticus/project-ledger/internal/report"
	"github.com/Veraticus/project-ledger/internal/sheets"
	"github.com/Veraticus/project-ledger/internal/workbook"
)

// loadEvents reads the input, a workbook path or a "sheets:<id>" reference,
// and normalizes its rows. Input failures come back as user errors.
func loadEvents(ctx context.Context, input string, showProgress bool) ([]model.Event, error) {
	logger := slog.Default()

	var progress workbook.ProgressFunc
	if showProgress {
		progress = cli.NewProgress(os.Stderr, "Reading sheets")
	}

	var (
		wb  *workbook.Workbook
		err error
	)
	if id, ok := sheets.SpreadsheetID(input); ok {
		wb, err = readSpreadsheet(ctx, id, progress)
	} else {
		opts := []workbook.Option{workbook.WithLogger(logger)}
		if progress != nil {
			opts = append(opts, workbook.WithProgress(progress))
		}
		wb, err = workbook.NewReader(opts...).ReadFile(ctx, config.ExpandPath(input))
	}
	if err != nil {
		return nil, inputError(input, err)
	}

	for _, warning := range wb.Warnings {
		logger.Warn("Schema drift", "sheet", warning.Sheet, "detail", warning.String())
	}

	events := normalize.New(logger).Normalize(wb.Rows)
	logger.Info("Workbook loaded", "input", input, "sheets", len(wb.Sheets), "events", len(events))
	return events, nil
}

func readSpreadsheet(ctx context.Context, id string, progress workbook.ProgressFunc) (*workbook.Workbook, error) {
	cfg, err := config.LoadSheetsConfig()
	if err != nil {
		return nil, common.NewUserError("Google Sheets is not configured; run 'ledger auth' or set sheets.service_account_path", err)
	}

	reader, err := sheets.NewReader(ctx, *cfg, slog.Default())
	if err != nil {
		return nil, common.NewUserError("Failed to connect to Google Sheets", err)
	}
	if progress != nil {
		reader.SetProgress(progress)
	}
	return reader.Read(ctx, id)
}

func inputError(input string, err error) error {
	var userErr *common.UserError
	switch {
	case errors.As(err, &userErr):
		return err
	case errors.Is(err, common.ErrInputNotFound):
		return common.NewUserError(fmt.Sprintf("File '%s' not found", input), err)
	case errors.Is(err, common.ErrWorkbookUnreadable):
		return common.NewUserError(fmt.Sprintf("Could not read workbook '%s'", input), err)
	default:
		return fmt.Errorf("failed to load %s: %w", input, err)
	}
}

// assemble loads the report settings and runs the aggregation and forecast
// passes.
func assemble(events []model.Event, source string) (*report.Data, config.Report, error) {
	cfg, err := config.LoadReport()
	if err != nil {
		return nil, config.Report{}, common.NewUserError("Invalid report configuration", err)
	}

	assembler := report.NewAssembler(forecast.New(cfg.ForecastMonths), cfg.Title, cfg.CurrencySymbol, slog.Default())
	return assembler.Assemble(events, source), cfg, nil
}

// summarize builds the terminal summary of an aggregation. Project status is
// forecast from the same, possibly filtered, result.
func summarize(data *report.Data, result ledger.Result) cli.Summary {
	outlook := report.NewOutlook(forecast.New(data.Horizon), result)
	summary := cli.Summary{
		Title:    data.Title,
		Currency: data.Currency,
		Global:   result.Global,
	}
	for _, name := range result.ProjectNames() {
		summary.Projects = append(summary.Projects, cli.SummaryProject{
			Name:   name,
			Rollup: result.Projects[name],
			Status: outlook.Status(name),
		})
	}
	return summary
}
