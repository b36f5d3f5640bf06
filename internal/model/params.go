package model

import (
	"errors"
	"math"
)

// Default simulation constants.
const (
	DefaultDays              = 30
	DefaultUsageMin          = 10.0
	DefaultUsageMax          = 50.0
	DefaultSeed              = 42
	DefaultPricePerKWh       = 0.12
	DefaultEmissionFactor    = 0.45
	DefaultReductionFraction = 0.1
)

// Params defines the inputs of a single simulation run.
// Units:
// - UsageMin/UsageMax: kWh per day
// - PricePerKWh: currency per kWh
// - EmissionFactor: kg CO2e per kWh
// - ReductionFraction: 0..1 (0.1 = 10% cut)
type Params struct {
	Days              int     `json:"days"`
	UsageMin          float64 `json:"usage_min"`
	UsageMax          float64 `json:"usage_max"`
	Seed              uint64  `json:"seed"`
	PricePerKWh       float64 `json:"price_per_kwh"`
	EmissionFactor    float64 `json:"emission_factor"`
	ReductionFraction float64 `json:"reduction_fraction"`
}

func DefaultParams() Params {
	return Params{
		Days:              DefaultDays,
		UsageMin:          DefaultUsageMin,
		UsageMax:          DefaultUsageMax,
		Seed:              DefaultSeed,
		PricePerKWh:       DefaultPricePerKWh,
		EmissionFactor:    DefaultEmissionFactor,
		ReductionFraction: DefaultReductionFraction,
	}
}

// Validate only rejects values the arithmetic cannot work with.
// Scalars are otherwise passed through untouched.
func (p Params) Validate() error {
	if p.Days < 0 {
		return errors.New("days must be >= 0")
	}
	for _, v := range []float64{p.UsageMin, p.UsageMax, p.PricePerKWh, p.EmissionFactor, p.ReductionFraction} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("params must be finite numbers")
		}
	}
	if p.UsageMin < 0 || p.UsageMin > p.UsageMax {
		return errors.New("usage range must satisfy 0<=usage_min<=usage_max")
	}
	return nil
}
