package calc

import (
	"fmt"

	"energy-sim/internal/model"
)

// Cost maps usage (kWh) to cost at a flat price per kWh.
func Cost(usage model.Series, pricePerKWh float64) (model.Series, error) {
	out, err := scale(usage, pricePerKWh)
	if err != nil {
		return nil, fmt.Errorf("cost: %w", err)
	}
	return out, nil
}
