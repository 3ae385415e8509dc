// Package workbook reads ledger events from .xlsx workbooks.
package workbook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/project-ledger/internal/common"
	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/xuri/excelize/v2"
)

// Workbook is the flattened content of every sheet in read order.
type Workbook struct {
	Rows     []model.RawRow
	Warnings []Warning
	Sheets   []string
}

// ProgressFunc is called after each sheet with the number of sheets done.
type ProgressFunc func(done, total int)

// Option configures a Reader.
type Option func(*Reader)

// WithProgress reports per-sheet progress.
func WithProgress(fn ProgressFunc) Option {
	return func(r *Reader) {
		r.progress = fn
	}
}

// WithLogger overrides the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// Reader reads .xlsx workbooks.
type Reader struct {
	logger   *slog.Logger
	progress ProgressFunc
}

// NewReader creates a workbook reader.
func NewReader(opts ...Option) *Reader {
	r := &Reader{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadFile reads the workbook at path.
func (r *Reader) ReadFile(ctx context.Context, path string) (*Workbook, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, common.ErrInputNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", path, common.ErrWorkbookUnreadable, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, common.ErrWorkbookUnreadable, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			r.logger.Debug("failed to close workbook", "path", path, "error", closeErr)
		}
	}()

	return r.read(ctx, f)
}

// Read reads a workbook from a stream.
func (r *Reader) Read(ctx context.Context, src io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrWorkbookUnreadable, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return r.read(ctx, f)
}

func (r *Reader) read(ctx context.Context, f *excelize.File) (*Workbook, error) {
	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	sheets := f.GetSheetList()
	wb := &Workbook{Sheets: sheets}

	for i, sheet := range sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rows, warning, err := r.readSheet(f, sheet, date1904)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w: %w", sheet, common.ErrWorkbookUnreadable, err)
		}
		if warning != nil {
			wb.Warnings = append(wb.Warnings, *warning)
		}
		wb.Rows = append(wb.Rows, rows...)

		if r.progress != nil {
			r.progress(i+1, len(sheets))
		}
	}

	r.logger.Info("read workbook",
		"sheets", len(sheets),
		"rows", len(wb.Rows),
		"warnings", len(wb.Warnings))

	return wb, nil
}

func (r *Reader) readSheet(f *excelize.File, sheet string, date1904 bool) ([]model.RawRow, *Warning, error) {
	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}
	if len(grid) == 0 {
		r.logger.Debug("skipping empty sheet", "sheet", sheet)
		return nil, nil, nil
	}

	header := MapHeader(grid[0])
	var warning *Warning
	if w, drift := header.Check(sheet); drift {
		warning = &w
		r.logger.Warn("sheet is missing expected columns",
			"sheet", sheet,
			"missing", w.Missing,
			"available", w.Available)
	}

	notes := r.readNotes(f, sheet)

	rows := make([]model.RawRow, 0, len(grid)-1)
	for i, cells := range grid[1:] {
		rowNum := i + 2
		raw, ok := header.BuildRow(sheet, rowNum, cells)
		if !ok {
			continue
		}
		if r.isDateCell(f, sheet, header, rowNum) {
			raw.DateValue = serialDate(raw.Value(model.ColumnDate), date1904)
		}
		raw.Notes = rowNotes(header, notes, rowNum)
		rows = append(rows, raw)
	}

	return rows, warning, nil
}

// readNotes returns comment text keyed by cell reference. A workbook whose
// comments cannot be read is still usable, so failures only log.
func (r *Reader) readNotes(f *excelize.File, sheet string) map[string]string {
	comments, err := f.GetComments(sheet)
	if err != nil {
		r.logger.Warn("failed to read cell comments", "sheet", sheet, "error", err)
		return nil
	}

	notes := make(map[string]string, len(comments))
	for _, c := range comments {
		notes[strings.ToUpper(c.Cell)] = commentText(c)
	}
	return notes
}

// commentText flattens a comment's runs and drops the "Author:" prefix
// spreadsheet applications insert.
func commentText(c excelize.Comment) string {
	var b strings.Builder
	b.WriteString(c.Text)
	for _, run := range c.Paragraph {
		b.WriteString(run.Text)
	}
	text := strings.TrimSpace(b.String())
	if c.Author != "" {
		text = strings.TrimSpace(strings.TrimPrefix(text, c.Author+":"))
	}
	return text
}

func rowNotes(header Header, notes map[string]string, row int) []model.CellNote {
	if len(notes) == 0 {
		return nil
	}

	var out []model.CellNote
	for _, column := range model.Columns() {
		pos, ok := header.Position(column)
		if !ok {
			continue
		}
		ref, err := excelize.CoordinatesToCellName(pos+1, row)
		if err != nil {
			continue
		}
		if text := notes[ref]; text != "" {
			out = append(out, model.CellNote{Column: column, Text: text})
		}
	}
	return out
}

// isDateCell reports whether the Date cell of a row holds a number shown with a
// date or time format. Numbers in any other format, such as 20240315 typed
// into a General cell, are left as text.
func (r *Reader) isDateCell(f *excelize.File, sheet string, header Header, row int) bool {
	pos, ok := header.Position(model.ColumnDate)
	if !ok {
		return false
	}
	ref, err := excelize.CoordinatesToCellName(pos+1, row)
	if err != nil {
		return false
	}

	if kind, err := f.GetCellType(sheet, ref); err == nil &&
		(kind == excelize.CellTypeSharedString || kind == excelize.CellTypeInlineString) {
		return false
	}

	idx, err := f.GetCellStyle(sheet, ref)
	if err != nil {
		r.logger.Debug("failed to read cell style", "sheet", sheet, "cell", ref, "error", err)
		return false
	}
	style, err := f.GetStyle(idx)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return isDateFormatCode(*style.CustomNumFmt)
	}
	return isBuiltinDateFormat(style.NumFmt)
}

// isBuiltinDateFormat reports whether a built-in number format ID is a date
// or time format, including the East Asian variants.
func isBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22,
		id >= 27 && id <= 36,
		id >= 45 && id <= 47,
		id >= 50 && id <= 58:
		return true
	}
	return false
}

// isDateFormatCode reports whether a custom format code shows a date or
// time. Quoted literals, escaped characters and bracketed sections such as
// colors or locales are ignored.
func isDateFormatCode(code string) bool {
	var quoted, bracketed, escaped bool
	for _, c := range strings.ToLower(code) {
		switch {
		case escaped:
			escaped = false
		case quoted:
			quoted = c != '"'
		case bracketed:
			bracketed = c != ']'
		case c == '\\':
			escaped = true
		case c == '"':
			quoted = true
		case c == '[':
			bracketed = true
		case strings.ContainsRune("dmyhs", c):
			return true
		}
	}
	return false
}

// serialDate converts a raw numeric Date cell into a time. Text dates are left
// for the normalizer.
func serialDate(raw string, date1904 bool) *time.Time {
	if raw == "" {
		return nil
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial <= 0 {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return nil
	}
	return &t
}
