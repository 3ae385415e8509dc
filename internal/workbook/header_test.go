package workbook

import (
	"testing"

	"github.com/Veraticus/project-ledger/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestMapHeader(t *testing.T) {
	h := MapHeader([]string{"  PROJECT ", "", "amount", "Amount", "Notes"})

	pos, ok := h.Position(model.ColumnProject)
	assert.True(t, ok)
	assert.Equal(t, 0, pos)

	pos, ok = h.Position(model.ColumnAmount)
	assert.True(t, ok)
	assert.Equal(t, 2, pos, "the first matching header wins")

	_, ok = h.Position(model.ColumnDate)
	assert.False(t, ok)
	assert.Equal(t, []string{"PROJECT", "amount", "Amount", "Notes"}, h.Available())
}

func TestBuildRow(t *testing.T) {
	h := MapHeader([]string{"Project", "Amount"})

	row, ok := h.BuildRow("S", 7, []string{" Apollo ", "12"})
	assert.True(t, ok)
	assert.Equal(t, "Apollo", row.Value(model.ColumnProject))
	assert.Equal(t, 7, row.Row)

	short, ok := h.BuildRow("S", 8, []string{"Zeus"})
	assert.True(t, ok)
	assert.Empty(t, short.Value(model.ColumnAmount))

	_, ok = h.BuildRow("S", 9, []string{" ", ""})
	assert.False(t, ok)
}
