package model

import "time"

// Column is a canonical workbook column header.
type Column string

// Workbook columns in sheet order.
const (
	ColumnNumber         Column = "#"
	ColumnDate           Column = "Date"
	ColumnEventType      Column = "Event Type"
	ColumnProject        Column = "Project"
	ColumnHourlyRate     Column = "Hourly Rate"
	ColumnAdditionalRate Column = "Additional Rate"
	ColumnHours          Column = "Hours"
	ColumnAmount         Column = "Amount"
	ColumnComment        Column = "Comment"
)

// Columns returns every recognized column in sheet order.
func Columns() []Column {
	return []Column{
		ColumnNumber,
		ColumnDate,
		ColumnEventType,
		ColumnProject,
		ColumnHourlyRate,
		ColumnAdditionalRate,
		ColumnHours,
		ColumnAmount,
		ColumnComment,
	}
}

// ExpectedColumns returns the columns whose absence is reported as schema drift.
func ExpectedColumns() []Column {
	return []Column{
		ColumnDate,
		ColumnEventType,
		ColumnProject,
		ColumnHourlyRate,
		ColumnAdditionalRate,
		ColumnHours,
		ColumnAmount,
	}
}

// CellNote is an annotation attached to one cell of a row.
type CellNote struct {
	Column Column
	Text   string
}

// RawRow is one data row as read from a workbook, before normalization.
type RawRow struct {
	Cells map[Column]string
	// DateValue is set when the source stored a native date in the Date column.
	DateValue *time.Time
	Sheet     string
	Notes     []CellNote
	Row       int
}

// Value returns the text of a column, or "" when the column is absent.
func (r RawRow) Value(c Column) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[c]
}
