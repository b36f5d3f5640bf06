// Package analysis summarizes runs: descriptive stats, savings and
// relatable equivalents for avoided emissions.
package analysis

import (
	"fmt"
	"math"
)

// EPA greenhouse-gas equivalency factors, kg CO2e per unit.
// equivalent = kg_CO2e / factor
const (
	EPAMilesDrivenFactor      = 0.192
	EPASmartphoneChargeFactor = 0.00822

	// Below this, equivalents are too small to be meaningful.
	MinEquivalencyThresholdKg = 1.0
)

// Equivalency expresses a kg CO2e amount in everyday terms.
type Equivalency struct {
	Kg                 float64 `json:"kg_co2e"`
	MilesDriven        float64 `json:"miles_driven"`
	SmartphonesCharged float64 `json:"smartphones_charged"`
	Text               string  `json:"text,omitempty"`
	IsEmpty            bool    `json:"is_empty"`
}

// Equivalent converts kg CO2e. Negative, non-finite or sub-threshold
// amounts produce an empty result carrying only Kg.
func Equivalent(kg float64) Equivalency {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg < MinEquivalencyThresholdKg {
		return Equivalency{Kg: kg, IsEmpty: true}
	}
	miles := kg / EPAMilesDrivenFactor
	phones := kg / EPASmartphoneChargeFactor
	return Equivalency{
		Kg:                 kg,
		MilesDriven:        miles,
		SmartphonesCharged: phones,
		Text: fmt.Sprintf("Equivalent to driving ~%s miles or charging ~%s smartphones",
			formatCount(miles), formatCount(phones)),
	}
}

// formatCount renders a rounded count with thousands separators.
func formatCount(v float64) string {
	n := int64(math.Round(v))
	s := fmt.Sprintf("%d", n)
	if n < 0 {
		return s
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
