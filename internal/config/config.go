package config

import (
	"errors"
	"fmt"
	"os"

	"energy-sim/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
// Every field is optional; unset values fall back to model.DefaultParams.
type Config struct {
	Simulation   SimulationConfig   `yaml:"simulation"`
	Tariff       TariffConfig       `yaml:"tariff"`
	Optimization OptimizationConfig `yaml:"optimization"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// Numeric fields are pointers so an explicit 0 can be told apart from "unset".
type SimulationConfig struct {
	Days     *int     `yaml:"days"`
	UsageMin *float64 `yaml:"usage_min"`
	UsageMax *float64 `yaml:"usage_max"`
	Seed     *uint64  `yaml:"seed"`
}

type TariffConfig struct {
	PricePerKWh    *float64 `yaml:"price_per_kwh"`
	EmissionFactor *float64 `yaml:"emission_factor"`
}

type OptimizationConfig struct {
	ReductionFraction *float64 `yaml:"reduction_fraction"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the compile-time configuration.
func Default() *Config {
	p := model.DefaultParams()
	return &Config{
		Simulation: SimulationConfig{
			Days:     ptr(p.Days),
			UsageMin: ptr(p.UsageMin),
			UsageMax: ptr(p.UsageMax),
			Seed:     ptr(p.Seed),
		},
		Tariff: TariffConfig{
			PricePerKWh:    ptr(p.PricePerKWh),
			EmissionFactor: ptr(p.EmissionFactor),
		},
		Optimization: OptimizationConfig{ReductionFraction: ptr(p.ReductionFraction)},
		Logging:      LoggingConfig{Level: "info"},
	}
}

// Load reads path, overlays it onto the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	merged := Merge(Default(), c)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// LoadUnchecked parses the file without defaults or validation.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if err := c.ToParams().Validate(); err != nil {
		return fmt.Errorf("config invalid: %w", err)
	}
	return nil
}

// ToParams flattens c into run parameters. Unset fields stay zero, so call
// it on a merged config.
func (c *Config) ToParams() model.Params {
	return model.Params{
		Days:              deref(c.Simulation.Days),
		UsageMin:          deref(c.Simulation.UsageMin),
		UsageMax:          deref(c.Simulation.UsageMax),
		Seed:              deref(c.Simulation.Seed),
		PricePerKWh:       deref(c.Tariff.PricePerKWh),
		EmissionFactor:    deref(c.Tariff.EmissionFactor),
		ReductionFraction: deref(c.Optimization.ReductionFraction),
	}
}

// Merge overlays the set fields of override onto a copy of base. Nil
// pointers and an empty level keep the base value.
func Merge(base, override *Config) *Config {
	out := &Config{
		Simulation: SimulationConfig{
			Days:     overlay(base.Simulation.Days, nil),
			UsageMin: overlay(base.Simulation.UsageMin, nil),
			UsageMax: overlay(base.Simulation.UsageMax, nil),
			Seed:     overlay(base.Simulation.Seed, nil),
		},
		Tariff: TariffConfig{
			PricePerKWh:    overlay(base.Tariff.PricePerKWh, nil),
			EmissionFactor: overlay(base.Tariff.EmissionFactor, nil),
		},
		Optimization: OptimizationConfig{
			ReductionFraction: overlay(base.Optimization.ReductionFraction, nil),
		},
		Logging: base.Logging,
	}
	if override == nil {
		return out
	}
	out.Simulation.Days = overlay(out.Simulation.Days, override.Simulation.Days)
	out.Simulation.UsageMin = overlay(out.Simulation.UsageMin, override.Simulation.UsageMin)
	out.Simulation.UsageMax = overlay(out.Simulation.UsageMax, override.Simulation.UsageMax)
	out.Simulation.Seed = overlay(out.Simulation.Seed, override.Simulation.Seed)
	out.Tariff.PricePerKWh = overlay(out.Tariff.PricePerKWh, override.Tariff.PricePerKWh)
	out.Tariff.EmissionFactor = overlay(out.Tariff.EmissionFactor, override.Tariff.EmissionFactor)
	out.Optimization.ReductionFraction = overlay(out.Optimization.ReductionFraction, override.Optimization.ReductionFraction)
	if override.Logging.Level != "" {
		out.Logging.Level = override.Logging.Level
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// overlay returns a fresh copy of override when set, else of base.
func overlay[T any](base, override *T) *T {
	if override != nil {
		return ptr(*override)
	}
	if base != nil {
		return ptr(*base)
	}
	return nil
}
