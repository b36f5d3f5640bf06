package analysis

import (
	"math"

	"energy-sim/internal/model"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SeriesStats is a descriptive summary of one series.
// All fields are zero for an empty series.
type SeriesStats struct {
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Comparison holds original vs optimized stats and the savings between them.
type Comparison struct {
	Original       SeriesStats `json:"original"`
	Optimized      SeriesStats `json:"optimized"`
	Savings        float64     `json:"savings"`
	SavingsPercent float64     `json:"savings_percent"`
}

// Summary is the run-level report behind the terminal table and API.
type Summary struct {
	Days      int         `json:"days"`
	Usage     Comparison  `json:"usage_kwh"`
	Cost      Comparison  `json:"cost"`
	Footprint Comparison  `json:"footprint_kg_co2e"`
	Avoided   Equivalency `json:"avoided_emissions"`
}

func Describe(s model.Series) SeriesStats {
	st := SeriesStats{Count: s.Len()}
	if st.Count == 0 {
		return st
	}
	x := s.Floats()
	st.Total = floats.Sum(x)
	st.Mean = stat.Mean(x, nil)
	if st.Count > 1 {
		st.StdDev = stat.StdDev(x, nil)
	}
	st.Min = floats.Min(x)
	st.Max = floats.Max(x)
	return st
}

func Compare(original, optimized model.Series) Comparison {
	c := Comparison{
		Original:  Describe(original),
		Optimized: Describe(optimized),
	}
	c.Savings = c.Original.Total - c.Optimized.Total
	if c.Original.Total != 0 {
		c.SavingsPercent = c.Savings / c.Original.Total * 100
	}
	if math.IsNaN(c.SavingsPercent) {
		c.SavingsPercent = 0
	}
	return c
}

// Summarize reduces a run to totals, spread and savings.
func Summarize(res *model.RunResult) Summary {
	if res == nil {
		return Summary{}
	}
	s := Summary{
		Days:      res.Days(),
		Usage:     Compare(res.Original.Usage, res.Optimized.Usage),
		Cost:      Compare(res.Original.Cost, res.Optimized.Cost),
		Footprint: Compare(res.Original.Footprint, res.Optimized.Footprint),
	}
	s.Avoided = Equivalent(s.Footprint.Savings)
	return s
}
