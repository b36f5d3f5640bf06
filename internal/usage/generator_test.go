package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndRange(t *testing.T) {
	g := NewGenerator(42, 10, 50)
	for _, days := range []int{1, 3, 30, 365} {
		s := g.Generate(days)
		require.Len(t, s, days)
		for i, v := range s {
			assert.GreaterOrEqualf(t, v, 10.0, "day %d", i)
			assert.LessOrEqualf(t, v, 50.0, "day %d", i)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewGenerator(42, 10, 50).Generate(30)
	b := NewGenerator(42, 10, 50).Generate(30)
	assert.Equal(t, a, b)

	g := NewGenerator(42, 10, 50)
	assert.Equal(t, g.Generate(30), g.Generate(30), "repeat calls must not advance state")

	c := NewGenerator(7, 10, 50).Generate(30)
	assert.NotEqual(t, a, c)
}

func TestGeneratePrefixStable(t *testing.T) {
	g := NewGenerator(42, 10, 50)
	long := g.Generate(30)
	short := g.Generate(3)
	assert.Equal(t, long[:3], short)
}

func TestGenerateGolden(t *testing.T) {
	got := NewGenerator(42, 10, 50).Generate(3)
	want := []float64{22.20058237397638, 25.445262832545264, 44.483386034945156}
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "day %d", i)
	}
}

func TestGenerateEmpty(t *testing.T) {
	g := NewGenerator(42, 10, 50)
	assert.NotNil(t, g.Generate(0))
	assert.Empty(t, g.Generate(0))
	assert.Empty(t, g.Generate(-5))
}

func TestGenerateDegenerateRange(t *testing.T) {
	s := NewGenerator(1, 25, 25).Generate(5)
	for _, v := range s {
		assert.Equal(t, 25.0, v)
	}
}
