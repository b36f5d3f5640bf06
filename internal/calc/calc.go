// Package calc holds the elementwise transforms applied to usage series.
package calc

import (
	"errors"
	"fmt"
	"math"

	"energy-sim/internal/model"

	"gonum.org/v1/gonum/floats"
)

// ErrNotNumeric is returned when a series value or scalar is NaN or Inf.
var ErrNotNumeric = errors.New("value is not numeric")

// scale returns s*c as a new series. Both operands and every product must
// be finite.
func scale(s model.Series, c float64) (model.Series, error) {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, fmt.Errorf("scalar %v: %w", c, ErrNotNumeric)
	}
	if i := s.FirstNonNumeric(); i >= 0 {
		return nil, fmt.Errorf("day %d (%v): %w", i, s[i], ErrNotNumeric)
	}
	out := make(model.Series, len(s))
	floats.ScaleTo(out, c, s)
	if i := out.FirstNonNumeric(); i >= 0 {
		return nil, fmt.Errorf("day %d overflowed (%v * %v): %w", i, s[i], c, ErrNotNumeric)
	}
	return out, nil
}
