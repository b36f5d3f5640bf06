// Package usage produces synthetic daily energy-usage series.
package usage

import (
	"math/rand/v2"

	"energy-sim/internal/model"

	"gonum.org/v1/gonum/stat/distuv"
)

// Generator draws per-day usage (kWh) uniformly from [Min, Max].
// The source is rebuilt from Seed on every call, so output depends only on
// Seed, the range and the day count.
type Generator struct {
	Seed uint64
	Min  float64
	Max  float64
}

func NewGenerator(seed uint64, lo, hi float64) *Generator {
	return &Generator{Seed: seed, Min: lo, Max: hi}
}

// FromParams builds a generator from run params.
func FromParams(p model.Params) *Generator {
	return NewGenerator(p.Seed, p.UsageMin, p.UsageMax)
}

// Generate returns a series of length days. days <= 0 yields an empty series.
func (g *Generator) Generate(days int) model.Series {
	if days <= 0 {
		return model.Series{}
	}
	dist := distuv.Uniform{
		Min: g.Min,
		Max: g.Max,
		Src: rand.NewPCG(g.Seed, g.Seed),
	}
	out := make(model.Series, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, dist.Rand())
	}
	return out
}
