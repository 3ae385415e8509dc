package forecast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	eac := func(v float64) *Projection { return &Projection{ClosureBudget: &v, BurnRate: 1000} }

	tests := []struct {
		name      string
		p         *Projection
		remaining float64
		coverage  float64
		want      Status
	}{
		{name: "positive eac", p: eac(10), remaining: -500, coverage: 1000, want: StatusHealthy},
		{name: "slightly negative eac", p: eac(-100), remaining: 500, coverage: 1000, want: StatusMarginal},
		{name: "very negative eac", p: eac(-101), remaining: 500, coverage: 1000, want: StatusCritical},
		{name: "next month positive", p: &Projection{BurnRate: 100}, remaining: 500, coverage: 1000, want: StatusHealthy},
		{name: "next month zero", p: &Projection{BurnRate: 500}, remaining: 500, coverage: 1000, want: StatusHealthy},
		{name: "next month slightly negative", p: &Projection{BurnRate: 550}, remaining: 500, coverage: 1000, want: StatusMarginal},
		{name: "next month critical", p: &Projection{BurnRate: 900}, remaining: 500, coverage: 1000, want: StatusCritical},
		{name: "zero burn positive", p: &Projection{}, remaining: 500, coverage: 1000, want: StatusHealthy},
		{name: "zero burn negative", p: &Projection{}, remaining: -1, coverage: 1000, want: StatusCritical},
		{name: "burn without coverage", p: &Projection{BurnRate: 100}, remaining: -50, coverage: 0, want: StatusCritical},
		{name: "no projection", p: nil, remaining: 0, coverage: 0, want: StatusHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.remaining, tt.coverage, tt.p))
		})
	}
}

func TestStatusPresentation(t *testing.T) {
	for _, s := range Statuses() {
		assert.NotEmpty(t, s.Color())
		assert.NotEmpty(t, s.Tooltip())
	}
	assert.Equal(t, "yellow", StatusMarginal.Color())
}
