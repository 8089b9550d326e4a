package histogram

import (
	"errors"
	"fmt"

	"github.com/RyanBlaney/coinc-retrieval/algorithms/common"
	"github.com/RyanBlaney/coinc-retrieval/algorithms/stats"
)

// MinSamples is the smallest sample set a histogram is built from
const MinSamples = 4

var (
	ErrInsufficientData = errors.New("insufficient data")
	ErrNonFiniteSample  = errors.New("non-finite sample")
	ErrInvalidBins      = errors.New("bins must be positive")
)

// Histogram holds equal-width bucket counts over a padded percentile range
type Histogram struct {
	Counts  []int     `json:"counts"`
	Centers []float64 `json:"centers"`
	Edges   []float64 `json:"edges"` // len(Counts)+1 bucket boundaries
	Lo      float64   `json:"lo"`
	Hi      float64   `json:"hi"`
}

// Bins returns the number of buckets
func (h *Histogram) Bins() int {
	return len(h.Counts)
}

// BinWidth returns the spacing between adjacent centers
func (h *Histogram) BinWidth() float64 {
	if len(h.Edges) < 2 {
		return 0
	}
	return h.Edges[1] - h.Edges[0]
}

// Total returns the number of samples that landed in a bucket
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}
	return total
}

// Builder bins samples onto a grid spanning [p_lo, p_hi] of the data, widened
// by pad*(p_hi-p_lo) on each side.
type Builder struct {
	lowerPercentile float64
	upperPercentile float64
	pad             float64
	percentiles     *stats.Percentiles
}

// NewBuilder creates a builder using the 1st/99th percentiles and 25% padding
func NewBuilder() *Builder {
	return NewBuilderWithRange(1, 99, 0.25)
}

// NewBuilderWithRange creates a builder with custom percentile bounds and padding
func NewBuilderWithRange(lowerPercentile, upperPercentile, pad float64) *Builder {
	return &Builder{
		lowerPercentile: lowerPercentile,
		upperPercentile: upperPercentile,
		pad:             pad,
		percentiles:     stats.NewPercentiles(),
	}
}

// Build bins samples with the default builder
func Build(samples []float64, bins int) (*Histogram, error) {
	return NewBuilder().Build(samples, bins)
}

// Build computes the histogram. Samples outside the padded range are dropped;
// a value equal to the upper edge lands in the last bucket.
//
// When the padded range collapses to a point (all samples identical) the
// centers are laid out over [v-0.5, v+0.5] and every bucket stays empty.
func (b *Builder) Build(samples []float64, bins int) (*Histogram, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBins, bins)
	}
	if len(samples) < MinSamples {
		return nil, fmt.Errorf("%w: %d samples, need at least %d", ErrInsufficientData, len(samples), MinSamples)
	}
	if !common.AllFinite(samples) {
		return nil, ErrNonFiniteSample
	}

	bounds, err := b.percentiles.CalculatePercentiles(samples, b.lowerPercentile, b.upperPercentile)
	if err != nil {
		return nil, fmt.Errorf("failed to compute range: %w", err)
	}

	lo, hi := bounds[0], bounds[1]
	width := hi - lo
	lo -= b.pad * width
	hi += b.pad * width

	hist := &Histogram{
		Counts: make([]int, bins),
		Lo:     lo,
		Hi:     hi,
	}

	degenerate := hi <= lo
	if degenerate {
		hist.Edges = common.Linspace(lo-0.5, hi+0.5, bins+1)
	} else {
		hist.Edges = common.Linspace(lo, hi, bins+1)
	}

	hist.Centers = make([]float64, bins)
	for i := range hist.Centers {
		hist.Centers[i] = 0.5 * (hist.Edges[i] + hist.Edges[i+1])
	}

	if degenerate {
		return hist, nil
	}

	norm := float64(bins) / (hi - lo)
	for _, v := range samples {
		if v < lo || v > hi {
			continue
		}
		idx := int((v - lo) * norm)
		if idx >= bins {
			idx = bins - 1
		}
		// rounding in (v-lo)*norm can put v one bucket off its edges
		if idx > 0 && v < hist.Edges[idx] {
			idx--
		} else if idx < bins-1 && v >= hist.Edges[idx+1] {
			idx++
		}
		hist.Counts[idx]++
	}

	return hist, nil
}
