package calc

import (
	"fmt"

	"energy-sim/internal/model"
)

// Optimize applies a flat reduction: usage * (1 - reductionFraction).
// There is no search here; the "optimization" is the multiplier.
func Optimize(usage model.Series, reductionFraction float64) (model.Series, error) {
	out, err := scale(usage, 1-reductionFraction)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	return out, nil
}
