package calc

import (
	"math"
	"testing"

	"energy-sim/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var golden = model.Series{22.20058237397638, 25.445262832545264, 44.483386034945156}

func TestTransforms(t *testing.T) {
	tests := []struct {
		name   string
		fn     func(model.Series, float64) (model.Series, error)
		scalar float64
		factor float64
	}{
		{name: "cost", fn: Cost, scalar: 0.12, factor: 0.12},
		{name: "footprint", fn: Footprint, scalar: 0.45, factor: 0.45},
		{name: "optimize", fn: Optimize, scalar: 0.1, factor: 0.9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(golden, tt.scalar)
			require.NoError(t, err)
			require.Len(t, got, len(golden))
			for i := range golden {
				assert.InDelta(t, golden[i]*tt.factor, got[i], 1e-12, "day %d", i)
			}
		})
	}
}

func TestTransformsGoldenValues(t *testing.T) {
	cost, err := Cost(golden, 0.12)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{2.664069884877166, 3.0534315399054317, 5.338006324193419}, cost.Floats(), 1e-9)

	fp, err := Footprint(golden, 0.45)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{9.990262068289372, 11.450368274645369, 20.01752371572532}, fp.Floats(), 1e-9)

	opt, err := Optimize(golden, 0.1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{19.980524136578744, 22.900736549290738, 40.03504743145064}, opt.Floats(), 1e-9)
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	in := golden.Clone()
	_, err := Optimize(in, 0.5)
	require.NoError(t, err)
	assert.Equal(t, golden, in)
}

func TestTransformsEmpty(t *testing.T) {
	for _, fn := range []func(model.Series, float64) (model.Series, error){Cost, Footprint, Optimize} {
		got, err := fn(model.Series{}, 0.3)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)

		got, err = fn(nil, 0.3)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestTransformsNotNumeric(t *testing.T) {
	tests := []struct {
		name    string
		usage   model.Series
		scalar  float64
		wantMsg string
	}{
		{name: "nan value", usage: model.Series{1, math.NaN()}, scalar: 0.12, wantMsg: "day 1"},
		{name: "inf value", usage: model.Series{math.Inf(1)}, scalar: 0.12, wantMsg: "day 0"},
		{name: "nan scalar", usage: model.Series{1}, scalar: math.NaN(), wantMsg: "scalar"},
		{name: "product overflows", usage: model.Series{1, 1.7e308}, scalar: 10, wantMsg: "day 1 overflowed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cost(tt.usage, tt.scalar)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrNotNumeric)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), "cost:")
		})
	}

	_, err := Footprint(model.Series{math.NaN()}, 0.45)
	assert.ErrorIs(t, err, ErrNotNumeric)
	_, err = Optimize(model.Series{1}, math.Inf(1))
	assert.ErrorIs(t, err, ErrNotNumeric)
}
