package model

import (
	"errors"
	"math"
)

// ErrLengthMismatch is returned when index-aligned series differ in length.
var ErrLengthMismatch = errors.New("series length mismatch")

// Series is an ordered per-day sequence. Index i is day i.
// Transforms never modify a Series in place; they return a new one.
type Series []float64

// Len returns the number of days in the series.
func (s Series) Len() int { return len(s) }

// Clone returns an independent copy. A nil series clones to an empty one.
func (s Series) Clone() Series {
	out := make(Series, len(s))
	copy(out, s)
	return out
}

// FirstNonNumeric returns the index of the first NaN or Inf value, or -1.
func (s Series) FirstNonNumeric() int {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// Floats exposes the series as a plain slice for numeric libraries.
func (s Series) Floats() []float64 { return []float64(s) }
