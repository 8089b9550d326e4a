package stats

import (
	"fmt"
	"math"
	"sort"
)

// PercentileMethod represents different methods for calculating percentiles
type PercentileMethod int

const (
	// Linear interpolation between closest ranks (R-7, numpy and R default)
	Linear PercentileMethod = iota

	// Lower value of the two closest ranks
	Lower

	// Higher value of the two closest ranks
	Higher

	// Midpoint of the two closest ranks
	Midpoint

	// Nearest of the two closest ranks, ties to the even rank
	Nearest
)

// Percentiles computes sample percentiles on a virtual index h = (n-1)*q
// shared by every method; the methods differ only in how they resolve a
// fractional h.
//
// References:
//   - Hyndman, R.J., Fan, Y. (1996). "Sample Quantiles in Statistical Packages"
//     The American Statistician, 50(4), 361-365
type Percentiles struct {
	method PercentileMethod
}

// NewPercentiles creates a new percentile analyzer with linear interpolation method
func NewPercentiles() *Percentiles {
	return &Percentiles{method: Linear}
}

// NewPercentilesWithMethod creates a percentile analyzer with specified method
func NewPercentilesWithMethod(method PercentileMethod) *Percentiles {
	return &Percentiles{method: method}
}

// CalculatePercentile computes a single percentile value (percentile in [0, 100])
func (p *Percentiles) CalculatePercentile(data []float64, percentile float64) (float64, error) {
	values, err := p.CalculatePercentiles(data, percentile)
	if err != nil {
		return 0, err
	}
	return values[0], nil
}

// CalculatePercentiles computes several percentiles with a single sort.
// Results are returned in the order requested.
func (p *Percentiles) CalculatePercentiles(data []float64, percentiles ...float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty data")
	}

	for _, pct := range percentiles {
		if math.IsNaN(pct) || pct < 0 || pct > 100 {
			return nil, fmt.Errorf("percentile must be between 0 and 100, got %v", pct)
		}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	out := make([]float64, len(percentiles))
	for i, pct := range percentiles {
		out[i] = p.calculatePercentile(sorted, pct/100.0)
	}
	return out, nil
}

func (p *Percentiles) calculatePercentile(sortedData []float64, q float64) float64 {
	n := len(sortedData)
	if n == 1 {
		return sortedData[0]
	}

	h := float64(n-1) * q
	lower := int(math.Floor(h))
	upper := int(math.Ceil(h))
	if upper >= n {
		upper = n - 1
	}
	if lower >= n {
		lower = n - 1
	}
	if lower == upper {
		return sortedData[lower]
	}

	switch p.method {
	case Lower:
		return sortedData[lower]
	case Higher:
		return sortedData[upper]
	case Midpoint:
		return (sortedData[lower] + sortedData[upper]) / 2.0
	case Nearest:
		return sortedData[int(math.RoundToEven(h))]
	default:
		fraction := h - float64(lower)
		return sortedData[lower] + fraction*(sortedData[upper]-sortedData[lower])
	}
}

// GetMethodName returns human-readable name of the percentile method
func (p *Percentiles) GetMethodName() string {
	switch p.method {
	case Linear:
		return "Linear Interpolation (R-7)"
	case Lower:
		return "Lower Value"
	case Higher:
		return "Higher Value"
	case Midpoint:
		return "Midpoint"
	case Nearest:
		return "Nearest Rank"
	default:
		return "Unknown"
	}
}

// SetMethod changes the percentile calculation method
func (p *Percentiles) SetMethod(method PercentileMethod) {
	p.method = method
}
