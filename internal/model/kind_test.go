package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		label string
		want  EventKind
	}{
		{label: "PO", want: KindPurchaseOrder},
		{label: "  purchase   order ", want: KindPurchaseOrder},
		{label: "Invoice", want: KindInvoice},
		{label: "WORKING TIME", want: KindWorkingTime},
		{label: "WorkingTime", want: KindWorkingTime},
		{label: "Purchase", want: KindPurchase},
		{label: "T&L", want: KindTravelAndLogistics},
		{label: "Travel & Logistics", want: KindTravelAndLogistics},
		{label: "Deferment", want: KindDeferment},
		{label: "financial record", want: KindFinancialRecord},
		{label: "Closure", want: KindClosure},
		{label: "", want: KindUnknown},
		{label: "Lunch", want: KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseEventKind(tt.label))
		})
	}
}

func TestKindLabelsRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		assert.True(t, kind.Known())
		assert.Equal(t, kind, ParseEventKind(kind.Label()), kind.Label())

		fromCode, err := KindFromCode(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, fromCode)
	}
	assert.False(t, KindUnknown.Known())
}

func TestKindFromCode(t *testing.T) {
	kind, err := KindFromCode("T&L")
	require.NoError(t, err)
	assert.Equal(t, KindTravelAndLogistics, kind)

	_, err = KindFromCode("Lunch")
	assert.Error(t, err)
}

func TestKindJSON(t *testing.T) {
	data, err := json.Marshal(Event{Kind: KindFinancialRecord})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"FinancialRecord"`)

	var event Event
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"Deferment"}`), &event))
	assert.Equal(t, KindDeferment, event.Kind)

	assert.Error(t, json.Unmarshal([]byte(`{"kind":"Lunch"}`), &event))
}
