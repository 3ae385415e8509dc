package workbook

import (
	"fmt"
	"strings"

	"github.com/Veraticus/project-ledger/internal/model"
)

// Warning reports schema drift on one sheet. It never stops a read.
type Warning struct {
	Sheet     string
	Missing   []model.Column
	Available []string
}

func (w Warning) String() string {
	missing := make([]string, len(w.Missing))
	for i, c := range w.Missing {
		missing[i] = string(c)
	}
	return fmt.Sprintf("sheet %q is missing columns [%s]; available: [%s]",
		w.Sheet, strings.Join(missing, ", "), strings.Join(w.Available, ", "))
}

// Header maps cell positions of a sheet onto canonical columns.
type Header struct {
	columns   map[int]model.Column
	available []string
}

// MapHeader matches header cells against the known columns, ignoring case and
// surrounding whitespace. Unknown headers are kept only for reporting.
func MapHeader(cells []string) Header {
	known := make(map[string]model.Column)
	for _, c := range model.Columns() {
		known[strings.ToLower(string(c))] = c
	}

	h := Header{columns: make(map[int]model.Column)}
	for i, cell := range cells {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		h.available = append(h.available, name)
		if c, ok := known[strings.ToLower(name)]; ok {
			if _, taken := h.position(c); !taken {
				h.columns[i] = c
			}
		}
	}
	return h
}

// Position returns the cell index of a column.
func (h Header) Position(c model.Column) (int, bool) {
	return h.position(c)
}

func (h Header) position(c model.Column) (int, bool) {
	for i, col := range h.columns {
		if col == c {
			return i, true
		}
	}
	return 0, false
}

// Missing lists the expected columns absent from the header.
func (h Header) Missing() []model.Column {
	var missing []model.Column
	for _, c := range model.ExpectedColumns() {
		if _, ok := h.position(c); !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// Available returns the non-empty header names in sheet order.
func (h Header) Available() []string {
	return h.available
}

// Check returns a warning when expected columns are missing.
func (h Header) Check(sheet string) (Warning, bool) {
	missing := h.Missing()
	if len(missing) == 0 {
		return Warning{}, false
	}
	return Warning{Sheet: sheet, Missing: missing, Available: h.Available()}, true
}

// BuildRow turns one data row into a raw row. It reports false for rows
// without any text.
func (h Header) BuildRow(sheet string, row int, cells []string) (model.RawRow, bool) {
	raw := model.RawRow{
		Sheet: sheet,
		Row:   row,
		Cells: make(map[model.Column]string, len(h.columns)),
	}

	blank := true
	for i, c := range h.columns {
		if i >= len(cells) {
			continue
		}
		value := strings.TrimSpace(cells[i])
		if value != "" {
			blank = false
		}
		raw.Cells[c] = value
	}
	return raw, !blank
}
