package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector helpers shared by the reconstruction pipeline, on top of gonum/floats

// AllFinite reports whether every element is neither NaN nor ±Inf
func AllFinite(data []float64) bool {
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ClampNonNegative replaces negative values with zero in place
func ClampNonNegative(data []float64) {
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}
}

// ApplyMask zeroes every element whose mask entry is false, in place.
// Panics if the lengths differ.
func ApplyMask(data []float64, mask []bool) {
	if len(data) != len(mask) {
		panic("common: mask length mismatch")
	}
	for i, keep := range mask {
		if !keep {
			data[i] = 0
		}
	}
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// Linspace returns n evenly spaced values over [lo, hi]
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}

// ToFloat64 converts integer counts to float64
func ToFloat64(counts []int) []float64 {
	out := make([]float64, len(counts))
	for i, c := range counts {
		out[i] = float64(c)
	}
	return out
}
