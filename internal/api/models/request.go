package models

import "energy-sim/internal/model"

// RunRequest represents the request body for running a simulation.
// Omitted fields keep the server defaults.
type RunRequest struct {
	Days              *int     `json:"days,omitempty" binding:"omitempty,min=0,max=3650"`
	UsageMin          *float64 `json:"usage_min,omitempty"`
	UsageMax          *float64 `json:"usage_max,omitempty"`
	Seed              *uint64  `json:"seed,omitempty"`
	PricePerKWh       *float64 `json:"price_per_kwh,omitempty"`
	EmissionFactor    *float64 `json:"emission_factor,omitempty"`
	ReductionFraction *float64 `json:"reduction_fraction,omitempty"`
	IncludeSeries     bool     `json:"include_series,omitempty"` // default: false
}

// Apply overlays the request's set fields onto base.
func (r RunRequest) Apply(base model.Params) model.Params {
	out := base
	if r.Days != nil {
		out.Days = *r.Days
	}
	if r.UsageMin != nil {
		out.UsageMin = *r.UsageMin
	}
	if r.UsageMax != nil {
		out.UsageMax = *r.UsageMax
	}
	if r.Seed != nil {
		out.Seed = *r.Seed
	}
	if r.PricePerKWh != nil {
		out.PricePerKWh = *r.PricePerKWh
	}
	if r.EmissionFactor != nil {
		out.EmissionFactor = *r.EmissionFactor
	}
	if r.ReductionFraction != nil {
		out.ReductionFraction = *r.ReductionFraction
	}
	return out
}
