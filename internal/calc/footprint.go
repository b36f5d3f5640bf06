package calc

import (
	"fmt"

	"energy-sim/internal/model"
)

// Footprint maps usage (kWh) to emissions (kg CO2e) with a flat emission factor.
func Footprint(usage model.Series, emissionFactor float64) (model.Series, error) {
	out, err := scale(usage, emissionFactor)
	if err != nil {
		return nil, fmt.Errorf("footprint: %w", err)
	}
	return out, nil
}
