package normalize

import (
	"encoding/json"
	"testing"

	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(sheet string, cells map[model.Column]string) model.RawRow {
	return model.RawRow{Sheet: sheet, Cells: cells}
}

func TestNormalizeWorkingTimeCost(t *testing.T) {
	rows := []model.RawRow{
		row("2024", map[model.Column]string{
			model.ColumnDate:           "2024-01-15",
			model.ColumnEventType:      "Working Time",
			model.ColumnProject:        "Apollo",
			model.ColumnHourlyRate:     "50",
			model.ColumnAdditionalRate: "5%",
			model.ColumnHours:          "100",
		}),
	}

	events := New(nil).Normalize(rows)

	require.Len(t, events, 1)
	require.NotNil(t, events[0].ComputedCost)
	assert.InDelta(t, 5250.0, *events[0].ComputedCost, 1e-9)
	assert.Equal(t, model.KindWorkingTime, events[0].Kind)
	assert.Equal(t, "2024-01", events[0].YearMonth)
}

func TestComputeCostPrecondition(t *testing.T) {
	rate := 50.0
	surcharge := 0.05

	tests := []struct {
		name      string
		kind      model.EventKind
		rate      *float64
		surcharge *float64
		hours     float64
		want      *float64
	}{
		{name: "scenario", kind: model.KindWorkingTime, rate: &rate, surcharge: &surcharge, hours: 100, want: ptr(5250)},
		{name: "no surcharge", kind: model.KindWorkingTime, rate: &rate, hours: 2, want: ptr(100)},
		{name: "no rate", kind: model.KindWorkingTime, hours: 2},
		{name: "zero hours", kind: model.KindWorkingTime, rate: &rate},
		{name: "not working time", kind: model.KindPurchase, rate: &rate, hours: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeCost(tt.kind, tt.rate, tt.surcharge, tt.hours)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func ptr(v float64) *float64 { return &v }

func TestNormalizeIndexAndSkipping(t *testing.T) {
	rows := []model.RawRow{
		row("A", map[model.Column]string{model.ColumnProject: "P1", model.ColumnEventType: "PO", model.ColumnAmount: "100"}),
		row("A", map[model.Column]string{model.ColumnProject: "  ", model.ColumnAmount: "999"}),
		row("A", map[model.Column]string{model.ColumnEventType: "Invoice"}),
		row("B", map[model.Column]string{model.ColumnProject: "P2", model.ColumnEventType: "Gift"}),
		row("B", map[model.Column]string{model.ColumnProject: "P2", model.ColumnEventType: "t&l", model.ColumnAmount: "oops"}),
	}

	events := New(nil).Normalize(rows)

	require.Len(t, events, 3)
	for i, e := range events {
		assert.Equal(t, i+1, e.Index)
	}
	assert.Equal(t, []string{"A", "B", "B"}, []string{events[0].Sheet, events[1].Sheet, events[2].Sheet})
	assert.Equal(t, model.KindUnknown, events[1].Kind)
	assert.Equal(t, "Gift", events[1].EventType)
	assert.Equal(t, model.KindTravelAndLogistics, events[2].Kind)
	assert.Zero(t, events[2].Amount)
}

func TestNormalizeDates(t *testing.T) {
	rows := []model.RawRow{
		row("A", map[model.Column]string{model.ColumnProject: "P", model.ColumnDate: "15/01/2024"}),
		row("A", map[model.Column]string{model.ColumnProject: "P", model.ColumnDate: "2024-01-15 08:00:00"}),
		row("A", map[model.Column]string{model.ColumnProject: "P", model.ColumnDate: "next week"}),
		row("A", map[model.Column]string{model.ColumnProject: "P"}),
	}

	events := New(nil).Normalize(rows)

	require.Len(t, events, 4)
	assert.Equal(t, events[0].Date, events[1].Date)
	assert.Equal(t, "2024-01", events[0].YearMonth)
	assert.Equal(t, "next week", events[2].Date)
	assert.Empty(t, events[2].YearMonth)
	assert.False(t, events[3].Dated())
}

func TestNormalizeComment(t *testing.T) {
	rows := []model.RawRow{{
		Sheet: "A",
		Cells: map[model.Column]string{
			model.ColumnProject: "P",
			model.ColumnComment: "kickoff",
		},
		Notes: []model.CellNote{
			{Column: model.ColumnAmount, Text: "approved by finance"},
			{Column: model.ColumnHours, Text: "  "},
			{Column: model.ColumnDate, Text: "moved"},
		},
	}}

	events := New(nil).Normalize(rows)

	require.Len(t, events, 1)
	assert.Equal(t, "kickoff | Amount: approved by finance | Date: moved", events[0].Comment)
	assert.Empty(t, BuildComment("", nil))
}

func TestEventJSONRoundTrip(t *testing.T) {
	rows := []model.RawRow{
		row("2024", map[model.Column]string{
			model.ColumnDate:           "2024-01-15",
			model.ColumnEventType:      "Working Time",
			model.ColumnProject:        "Apollo",
			model.ColumnHourlyRate:     "€80",
			model.ColumnAdditionalRate: "0.1",
			model.ColumnHours:          "12.5",
			model.ColumnComment:        "sprint 1",
		}),
		row("2024", map[model.Column]string{
			model.ColumnDate:      "someday",
			model.ColumnEventType: "Unheard Of",
			model.ColumnProject:   "Apollo",
			model.ColumnAmount:    "-12.34",
		}),
	}
	events := New(nil).Normalize(rows)

	encoded, err := json.Marshal(events)
	require.NoError(t, err)

	var decoded []model.Event
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, events, decoded)
}
