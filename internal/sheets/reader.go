package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/Veraticus/project-ledger/internal/workbook"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// InputPrefix marks a command-line input as a spreadsheet ID.
const InputPrefix = "sheets:"

// serialEpoch is day zero of spreadsheet date serials.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// SpreadsheetID extracts the ID from a "sheets:<id>" input.
func SpreadsheetID(input string) (string, bool) {
	id, ok := strings.CutPrefix(input, InputPrefix)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return strings.TrimSpace(id), true
}

// Reader reads every tab of a spreadsheet into the workbook row model.
type Reader struct {
	service  *sheets.Service
	logger   *slog.Logger
	progress workbook.ProgressFunc
	retry    common.RetryOptions
}

// NewReader creates a reader authenticated per config.
func NewReader(ctx context.Context, config Config, logger *slog.Logger) (*Reader, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	ts, err := tokenSource(ctx, config)
	if err != nil {
		return nil, err
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(oauth2.NewClient(ctx, ts)))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return NewReaderWithService(srv, config, logger), nil
}

// NewReaderWithService wraps an existing service.
func NewReaderWithService(srv *sheets.Service, config Config, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		service: srv,
		logger:  logger,
		retry:   config.Retry(logger),
	}
}

// SetProgress reports per-tab progress.
func (r *Reader) SetProgress(fn workbook.ProgressFunc) {
	r.progress = fn
}

// Read fetches the spreadsheet with its grid data and flattens every tab.
func (r *Reader) Read(ctx context.Context, spreadsheetID string) (*workbook.Workbook, error) {
	var doc *sheets.Spreadsheet
	err := common.WithRetry(ctx, func() error {
		var getErr error
		doc, getErr = r.service.Spreadsheets.Get(spreadsheetID).
			IncludeGridData(true).
			Context(ctx).
			Do()
		return classify(getErr)
	}, r.retry)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("spreadsheet %s: %w", spreadsheetID, common.ErrInputNotFound)
		}
		return nil, fmt.Errorf("spreadsheet %s: %w: %w", spreadsheetID, common.ErrWorkbookUnreadable, err)
	}

	wb := &workbook.Workbook{}
	for i, tab := range doc.Sheets {
		title := ""
		if tab.Properties != nil {
			title = tab.Properties.Title
		}
		wb.Sheets = append(wb.Sheets, title)

		rows, warning := r.readTab(title, tab.Data)
		if warning != nil {
			wb.Warnings = append(wb.Warnings, *warning)
		}
		wb.Rows = append(wb.Rows, rows...)

		if r.progress != nil {
			r.progress(i+1, len(doc.Sheets))
		}
	}

	r.logger.Info("read spreadsheet",
		"spreadsheet_id", spreadsheetID,
		"sheets", len(wb.Sheets),
		"rows", len(wb.Rows))

	return wb, nil
}

type cell struct {
	date *time.Time
	text string
	note string
}

func (r *Reader) readTab(title string, data []*sheets.GridData) ([]model.RawRow, *workbook.Warning) {
	var grid [][]cell
	for _, block := range data {
		for _, rowData := range block.RowData {
			row := make([]cell, len(rowData.Values))
			for i, value := range rowData.Values {
				row[i] = readCell(value)
			}
			grid = append(grid, row)
		}
	}
	if len(grid) == 0 {
		return nil, nil
	}

	header := workbook.MapHeader(texts(grid[0]))
	var warning *workbook.Warning
	if w, drift := header.Check(title); drift {
		warning = &w
		r.logger.Warn("sheet is missing expected columns",
			"sheet", title,
			"missing", w.Missing,
			"available", w.Available)
	}

	var rows []model.RawRow
	for i, cells := range grid[1:] {
		rowNum := i + 2
		raw, ok := header.BuildRow(title, rowNum, texts(cells))
		if !ok {
			continue
		}
		for _, column := range model.Columns() {
			pos, found := header.Position(column)
			if !found || pos >= len(cells) {
				continue
			}
			if column == model.ColumnDate {
				raw.DateValue = cells[pos].date
			}
			if note := strings.TrimSpace(cells[pos].note); note != "" {
				raw.Notes = append(raw.Notes, model.CellNote{Column: column, Text: note})
			}
		}
		rows = append(rows, raw)
	}
	return rows, warning
}

func readCell(data *sheets.CellData) cell {
	if data == nil {
		return cell{}
	}
	c := cell{text: data.FormattedValue, note: data.Note}

	if data.EffectiveValue == nil || data.EffectiveValue.NumberValue == nil {
		return c
	}
	number := *data.EffectiveValue.NumberValue
	c.text = strconv.FormatFloat(number, 'f', -1, 64)

	if isDateFormat(data.EffectiveFormat) || isDateFormat(data.UserEnteredFormat) {
		days := int(number)
		t := serialEpoch.AddDate(0, 0, days)
		c.date = &t
	}
	return c
}

func isDateFormat(format *sheets.CellFormat) bool {
	if format == nil || format.NumberFormat == nil {
		return false
	}
	switch format.NumberFormat.Type {
	case "DATE", "DATE_TIME":
		return true
	}
	return false
}

func texts(cells []cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.text
	}
	return out
}

// classify marks client errors as permanent so they are not retried.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	switch {
	case apiErr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
	case apiErr.Code >= 500:
		return common.Transient(err)
	default:
		return common.Permanent(err)
	}
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
