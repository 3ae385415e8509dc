package forecast

import (
	"testing"

	"github.com/Veraticus/project-ledger/internal/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSeries() ledger.MonthlySeries {
	return ledger.MonthlySeries{
		"2024-01": {CoverageDelta: 1000, Cost: 200},
		"2024-02": {Cost: 100},
		"2024-03": {Cost: 100},
	}
}

func TestProjectEmpty(t *testing.T) {
	assert.Nil(t, New(0).Project(ledger.MonthlySeries{}, ""))
	assert.Equal(t, DefaultHorizon, New(-1).Horizon())
}

func TestProjectClosureBudget(t *testing.T) {
	p := New(12).Project(scenarioSeries(), "2024-06")
	require.NotNil(t, p)

	assert.Equal(t, []float64{800, 700, 600}, p.ActualRemaining)
	assert.InDelta(t, 100, p.BurnRate, 1e-9)
	require.NotNil(t, p.ClosureBudget)
	assert.InDelta(t, 300, *p.ClosureBudget, 1e-9)

	require.Len(t, p.ForecastMonths, 12)
	assert.Equal(t, "2024-04", p.ForecastMonths[0])
	assert.Equal(t, []float64{500, 400, 300, 300, 300}, p.ForecastRemaining[:5])
	assert.InDelta(t, 300, p.ForecastRemaining[11], 1e-9)
}

func TestProjectWithoutClosure(t *testing.T) {
	p := New(3).Project(scenarioSeries(), "")
	require.NotNil(t, p)

	assert.Nil(t, p.ClosureBudget)
	assert.Equal(t, []string{"2024-04", "2024-05", "2024-06"}, p.ForecastMonths)
	assert.Equal(t, []float64{500, 400, 300}, p.ForecastRemaining)
}

func TestProjectClosureInActualData(t *testing.T) {
	p := New(12).Project(scenarioSeries(), "2024-02")
	require.NotNil(t, p)

	require.NotNil(t, p.ClosureBudget)
	assert.InDelta(t, 700, *p.ClosureBudget, 1e-9)
	assert.Empty(t, p.ForecastMonths)
}

func TestProjectClosureBeforeFirstActualMonth(t *testing.T) {
	series := ledger.MonthlySeries{
		"2024-03": {CoverageDelta: 1000, Cost: 100},
		"2024-04": {Cost: 100},
	}
	p := New(12).Project(series, "2024-01")
	require.NotNil(t, p)

	assert.Nil(t, p.ClosureBudget)
	assert.Empty(t, p.ForecastMonths)
	assert.Equal(t, []float64{900, 800}, p.ActualRemaining)
	assert.Equal(t, StatusHealthy, Classify(800, 1000, p))

	view := p.SingleView()
	assert.Equal(t, []string{"2024-03", "2024-04"}, view.Labels)
	assert.Equal(t, -1, view.ClosureIndex)
}

func TestProjectClosureBeyondHorizon(t *testing.T) {
	p := New(2).Project(scenarioSeries(), "2025-12")
	require.NotNil(t, p)

	assert.Nil(t, p.ClosureBudget)
	assert.Len(t, p.ForecastMonths, 2)
}

func TestProjectCrossesYear(t *testing.T) {
	series := ledger.MonthlySeries{"2024-11": {CoverageDelta: 10, Cost: 1}}

	p := New(3).Project(series, "")

	assert.Equal(t, []string{"2024-12", "2025-01", "2025-02"}, p.ForecastMonths)
}

func TestBurnRate(t *testing.T) {
	tests := []struct {
		name   string
		series ledger.MonthlySeries
		want   float64
	}{
		{
			name: "last two cost months",
			series: ledger.MonthlySeries{
				"2024-01": {Cost: 900},
				"2024-02": {Cost: 100},
				"2024-03": {CoverageDelta: 50},
				"2024-04": {Cost: 300},
			},
			want: 200,
		},
		{
			name:   "single cost month",
			series: ledger.MonthlySeries{"2024-01": {CoverageDelta: 1000}, "2024-02": {Cost: 75}},
			want:   75,
		},
		{
			name:   "no cost uses remaining drop",
			series: ledger.MonthlySeries{"2024-01": {CoverageDelta: 1000}, "2024-02": {CoverageDelta: -250}},
			want:   250,
		},
		{
			name:   "no cost with growing budget floors at zero",
			series: ledger.MonthlySeries{"2024-01": {CoverageDelta: 1000}, "2024-02": {CoverageDelta: 250}},
			want:   0,
		},
		{
			name:   "single coverage month",
			series: ledger.MonthlySeries{"2024-01": {CoverageDelta: 1000}},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(1).Project(tt.series, "")
			require.NotNil(t, p)
			assert.InDelta(t, tt.want, p.BurnRate, 1e-9)
		})
	}
}
