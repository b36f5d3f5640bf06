package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *RunResult {
	return &RunResult{
		Params: DefaultParams(),
		Original: Track{
			Scenario:  ScenarioOriginal,
			Usage:     Series{10, 20},
			Cost:      Series{1.2, 2.4},
			Footprint: Series{4.5, 9},
		},
		Optimized: Track{
			Scenario:  ScenarioOptimized,
			Usage:     Series{9, 18},
			Cost:      Series{1.08, 2.16},
			Footprint: Series{4.05, 8.1},
		},
	}
}

func TestRunResultValidate(t *testing.T) {
	t.Run("aligned", func(t *testing.T) {
		require.NoError(t, sampleResult().Validate())
	})

	t.Run("ragged", func(t *testing.T) {
		r := sampleResult()
		r.Optimized.Cost = Series{1}
		err := r.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLengthMismatch)
		assert.Contains(t, err.Error(), "optimized.cost")
	})

	t.Run("nil", func(t *testing.T) {
		var r *RunResult
		assert.Error(t, r.Validate())
	})

	t.Run("empty", func(t *testing.T) {
		r := &RunResult{}
		require.NoError(t, r.Validate())
		assert.Equal(t, 0, r.Days())
	})
}

func TestLedger(t *testing.T) {
	rows, err := sampleResult().Ledger()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[1].Day)
	assert.InDelta(t, 20.0, rows[1].UsageKWh, 1e-12)
	assert.InDelta(t, 18.0, rows[1].OptimizedUsageKWh, 1e-12)
	assert.InDelta(t, 0.24, rows[1].CostSavings, 1e-12)
	assert.InDelta(t, 0.9, rows[1].FootprintSavings, 1e-12)
}

func TestSeries(t *testing.T) {
	s := Series{1, 2, 3}
	c := s.Clone()
	c[0] = 99
	assert.Equal(t, 1.0, s[0])

	assert.Equal(t, -1, s.FirstNonNumeric())
	assert.Equal(t, 1, Series{1, math.NaN()}.FirstNonNumeric())
	assert.Equal(t, 0, Series{math.Inf(-1)}.FirstNonNumeric())

	var empty Series
	assert.NotNil(t, empty.Clone())
	assert.Equal(t, 0, empty.Clone().Len())
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr bool
	}{
		{name: "defaults", mutate: func(p *Params) {}},
		{name: "zero days", mutate: func(p *Params) { p.Days = 0 }},
		{name: "negative days", mutate: func(p *Params) { p.Days = -1 }, wantErr: true},
		{name: "nan price", mutate: func(p *Params) { p.PricePerKWh = math.NaN() }, wantErr: true},
		{name: "inverted range", mutate: func(p *Params) { p.UsageMin = 60 }, wantErr: true},
		{name: "negative min", mutate: func(p *Params) { p.UsageMin = -1 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestScenarioLabel(t *testing.T) {
	assert.Equal(t, "Original", ScenarioOriginal.Label())
	assert.Equal(t, "Optimized", ScenarioOptimized.Label())
	assert.Equal(t, "OTHER", Scenario("OTHER").Label())
}
