// Package pipeline runs the generate -> transform -> transform chain that
// feeds the reporter.
package pipeline

import (
	"fmt"

	"energy-sim/internal/calc"
	"energy-sim/internal/model"
	"energy-sim/internal/usage"

	"github.com/rs/zerolog"
)

// Engine runs the simulation pipeline and logs each stage.
type Engine struct {
	logger zerolog.Logger
}

// New returns an Engine logging under the pipeline component.
func New(logger zerolog.Logger) *Engine {
	return &Engine{logger: logger.With().Str("component", "pipeline").Logger()}
}

// Run executes one simulation. It stops at the first failing stage, so a
// missing series never reaches later arithmetic.
func (e *Engine) Run(p model.Params) (*model.RunResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("params invalid: %w", err)
	}

	used := usage.FromParams(p).Generate(p.Days)
	e.logger.Debug().Int("days", used.Len()).Uint64("seed", p.Seed).Msg("usage generated")

	res, err := e.RunUsage(used, p)
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	e.logger.Info().
		Int("days", res.Days()).
		Float64("reduction_fraction", p.ReductionFraction).
		Msg("run complete")
	return res, nil
}

// RunUsage runs the derived stages over a caller-supplied usage series
// instead of a generated one.
func (e *Engine) RunUsage(used model.Series, p model.Params) (*model.RunResult, error) {
	original, err := e.track(model.ScenarioOriginal, used, p)
	if err != nil {
		return nil, err
	}
	reduced, err := calc.Optimize(used, p.ReductionFraction)
	if err != nil {
		e.logger.Error().Err(err).Msg("optimizer failed")
		return nil, fmt.Errorf("optimized track: %w", err)
	}
	optimized, err := e.track(model.ScenarioOptimized, reduced, p)
	if err != nil {
		return nil, err
	}
	p.Days = used.Len()
	return &model.RunResult{Params: p, Original: original, Optimized: optimized}, nil
}

func (e *Engine) track(sc model.Scenario, used model.Series, p model.Params) (model.Track, error) {
	cost, err := calc.Cost(used, p.PricePerKWh)
	if err != nil {
		e.logger.Error().Err(err).Str("scenario", string(sc)).Msg("cost calculation failed")
		return model.Track{}, fmt.Errorf("%s track: %w", sc.Label(), err)
	}
	fp, err := calc.Footprint(used, p.EmissionFactor)
	if err != nil {
		e.logger.Error().Err(err).Str("scenario", string(sc)).Msg("footprint calculation failed")
		return model.Track{}, fmt.Errorf("%s track: %w", sc.Label(), err)
	}
	return model.Track{
		Scenario:  sc,
		Usage:     used.Clone(),
		Cost:      cost,
		Footprint: fp,
	}, nil
}
