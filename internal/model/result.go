package model

import "fmt"

// Track bundles the three derived series for one scenario.
type Track struct {
	Scenario  Scenario `json:"scenario"`
	Usage     Series   `json:"usage_kwh"`
	Cost      Series   `json:"cost"`
	Footprint Series   `json:"footprint_kg_co2e"`
}

// Len returns the track length; callers should Validate first.
func (t Track) Len() int { return t.Usage.Len() }

// RunResult pairs the original and optimized tracks of one run.
// All six series share length and index meaning (index i = day i).
type RunResult struct {
	Params    Params `json:"params"`
	Original  Track  `json:"original"`
	Optimized Track  `json:"optimized"`
}

// Days returns the number of simulated days.
func (r *RunResult) Days() int { return r.Original.Len() }

// Validate enforces the equal-length invariant across all six series.
func (r *RunResult) Validate() error {
	if r == nil {
		return fmt.Errorf("run result is nil")
	}
	n := r.Original.Usage.Len()
	checks := []struct {
		name string
		s    Series
	}{
		{"original.cost", r.Original.Cost},
		{"original.footprint", r.Original.Footprint},
		{"optimized.usage", r.Optimized.Usage},
		{"optimized.cost", r.Optimized.Cost},
		{"optimized.footprint", r.Optimized.Footprint},
	}
	for _, c := range checks {
		if c.s.Len() != n {
			return fmt.Errorf("%s has %d days, want %d: %w", c.name, c.s.Len(), n, ErrLengthMismatch)
		}
	}
	return nil
}

// DayRow is one row of per-day output joining both tracks.
// This is the primary artifact for "what happened" on a given day.
type DayRow struct {
	Day int `json:"day"`

	UsageKWh          float64 `json:"usage_kwh"`
	OptimizedUsageKWh float64 `json:"optimized_usage_kwh"`

	Cost          float64 `json:"cost"`
	OptimizedCost float64 `json:"optimized_cost"`

	FootprintKg          float64 `json:"footprint_kg"`
	OptimizedFootprintKg float64 `json:"optimized_footprint_kg"`

	CostSavings      float64 `json:"cost_savings"`
	FootprintSavings float64 `json:"footprint_savings_kg"`
}

// Ledger builds the per-day rows. It returns an error if the run is ragged.
func (r *RunResult) Ledger() ([]DayRow, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	rows := make([]DayRow, 0, r.Days())
	for i := 0; i < r.Days(); i++ {
		rows = append(rows, DayRow{
			Day:                  i,
			UsageKWh:             r.Original.Usage[i],
			OptimizedUsageKWh:    r.Optimized.Usage[i],
			Cost:                 r.Original.Cost[i],
			OptimizedCost:        r.Optimized.Cost[i],
			FootprintKg:          r.Original.Footprint[i],
			OptimizedFootprintKg: r.Optimized.Footprint[i],
			CostSavings:          r.Original.Cost[i] - r.Optimized.Cost[i],
			FootprintSavings:     r.Original.Footprint[i] - r.Optimized.Footprint[i],
		})
	}
	return rows, nil
}
