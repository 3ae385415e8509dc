package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterMatches(t *testing.T) {
	dated := Event{Project: "Apollo", Kind: KindInvoice, Date: "2024-03-15", YearMonth: "2024-03"}
	undated := Event{Project: "", Kind: KindPurchase, Date: "sometime"}

	tests := []struct {
		name    string
		filter  Filter
		event   Event
		matches bool
	}{
		{name: "zero filter", filter: Filter{}, event: undated, matches: true},
		{name: "all projects", filter: Filter{Project: AllProjects}, event: dated, matches: true},
		{name: "project hit", filter: Filter{Project: "Apollo"}, event: dated, matches: true},
		{name: "project miss", filter: Filter{Project: "Zeus"}, event: dated, matches: false},
		{name: "blank project groups as unknown", filter: Filter{Project: UnknownProject}, event: undated, matches: true},
		{name: "kind hit", filter: Filter{Kind: KindInvoice}, event: dated, matches: true},
		{name: "kind miss", filter: Filter{Kind: KindPurchase}, event: dated, matches: false},
		{name: "inclusive from", filter: Filter{From: "2024-03-15"}, event: dated, matches: true},
		{name: "inclusive to", filter: Filter{To: "2024-03-15"}, event: dated, matches: true},
		{name: "before range", filter: Filter{From: "2024-03-16"}, event: dated, matches: false},
		{name: "after range", filter: Filter{To: "2024-03-14"}, event: dated, matches: false},
		{name: "undated excluded by bound", filter: Filter{From: "2000-01-01"}, event: undated, matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, tt.filter.Matches(tt.event))
		})
	}
}

func TestFilterIsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Project: AllProjects}.IsZero())
	assert.False(t, Filter{Kind: KindClosure}.IsZero())
	assert.False(t, Filter{To: "2024-01-01"}.IsZero())
}

func TestRawRowValue(t *testing.T) {
	assert.Equal(t, "", RawRow{}.Value(ColumnAmount))
	assert.Equal(t, "12", RawRow{Cells: map[Column]string{ColumnAmount: "12"}}.Value(ColumnAmount))
}
