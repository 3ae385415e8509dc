// Package normalize turns raw workbook rows into canonical ledger events.
package normalize

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Veraticus/project-ledger/internal/model"
)

// CommentSeparator joins the explicit comment and cell annotations.
const CommentSeparator = " | "

// Normalizer converts raw rows into events. It is stateless apart from its
// logger; every Normalize call starts numbering from 1.
type Normalizer struct {
	logger *slog.Logger
}

// New creates a normalizer. A nil logger falls back to slog.Default.
func New(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// Normalize converts rows in read order. Rows without a project are dropped
// and do not consume a sequence index. Malformed cells degrade to defaults.
func (n *Normalizer) Normalize(rows []model.RawRow) []model.Event {
	events := make([]model.Event, 0, len(rows))
	index := 1

	for _, row := range rows {
		project := strings.TrimSpace(row.Value(model.ColumnProject))
		if project == "" {
			continue
		}

		event := n.normalizeRow(row, project)
		event.Index = index
		index++
		events = append(events, event)
	}

	n.logger.Debug("normalized workbook rows",
		"rows", len(rows),
		"events", len(events))

	return events
}

func (n *Normalizer) normalizeRow(row model.RawRow, project string) model.Event {
	eventType := strings.TrimSpace(row.Value(model.ColumnEventType))

	event := model.Event{
		EventType: eventType,
		Kind:      model.ParseEventKind(eventType),
		Project:   project,
		Sheet:     row.Sheet,
		Comment:   BuildComment(row.Value(model.ColumnComment), row.Notes),
	}

	var ok bool
	if event.HourlyRate, ok = ParseRate(row.Value(model.ColumnHourlyRate)); !ok {
		n.warnCell(row, model.ColumnHourlyRate)
	}
	if event.SurchargeRate, ok = ParseRate(row.Value(model.ColumnAdditionalRate)); !ok {
		n.warnCell(row, model.ColumnAdditionalRate)
	}
	if event.Hours, ok = ParseHours(row.Value(model.ColumnHours)); !ok {
		n.warnCell(row, model.ColumnHours)
	}
	if event.Amount, ok = ParseAmount(row.Value(model.ColumnAmount)); !ok {
		n.warnCell(row, model.ColumnAmount)
	}

	rawDate := row.Value(model.ColumnDate)
	if date, parsed := NormalizeDate(rawDate, row.DateValue); parsed {
		event.Date = date
		event.YearMonth = date[:7]
	} else if date != "" {
		event.Date = date
		n.warnCell(row, model.ColumnDate)
	}

	if eventType != "" && !event.Kind.Known() {
		n.logger.Warn("unrecognized event type, excluded from aggregation",
			"sheet", row.Sheet,
			"row", row.Row,
			"event_type", eventType)
	}

	event.ComputedCost = ComputeCost(event.Kind, event.HourlyRate, event.SurchargeRate, event.Hours)
	return event
}

func (n *Normalizer) warnCell(row model.RawRow, column model.Column) {
	n.logger.Warn("unparseable cell, using default",
		"sheet", row.Sheet,
		"row", row.Row,
		"column", string(column),
		"value", row.Value(column))
}

// ComputeCost returns hours × rate × (1 + surcharge) for working time with a
// rate and positive hours, and nil otherwise.
func ComputeCost(kind model.EventKind, hourlyRate, surchargeRate *float64, hours float64) *float64 {
	if kind != model.KindWorkingTime || hourlyRate == nil || hours <= 0 {
		return nil
	}
	multiplier := 1.0
	if surchargeRate != nil {
		multiplier += *surchargeRate
	}
	cost := hours * *hourlyRate * multiplier
	return &cost
}

// BuildComment joins the explicit comment with one "<column>: <text>" fragment
// per annotated cell.
func BuildComment(explicit string, notes []model.CellNote) string {
	parts := make([]string, 0, len(notes)+1)
	if trimmed := strings.TrimSpace(explicit); trimmed != "" {
		parts = append(parts, trimmed)
	}
	for _, note := range notes {
		text := strings.TrimSpace(note.Text)
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", note.Column, text))
	}
	return strings.Join(parts, CommentSeparator)
}
