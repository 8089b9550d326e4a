package histogram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSmallExample(t *testing.T) {
	hist, err := Build([]float64{0, 1, 2, 3}, 4)
	require.NoError(t, err)

	// p1=0.03, p99=2.97, padded by 0.735 on each side
	assert.InDelta(t, -0.705, hist.Lo, 1e-12)
	assert.InDelta(t, 3.705, hist.Hi, 1e-12)
	assert.InDelta(t, 1.1025, hist.BinWidth(), 1e-12)
	assert.Equal(t, []int{1, 1, 1, 1}, hist.Counts)
	assert.Equal(t, 4, hist.Bins())
	assert.Equal(t, 4, hist.Total())
}

func TestBuildInvariants(t *testing.T) {
	samples := make([]float64, 500)
	for i := range samples {
		samples[i] = 100 * math.Sin(float64(i)*0.37)
	}

	for _, bins := range []int{1, 8, 33, 1024} {
		hist, err := Build(samples, bins)
		require.NoError(t, err)

		require.Len(t, hist.Counts, bins)
		require.Len(t, hist.Centers, bins)
		require.Len(t, hist.Edges, bins+1)

		for i := 0; i < bins; i++ {
			assert.InDelta(t, 0.5*(hist.Edges[i]+hist.Edges[i+1]), hist.Centers[i], 1e-9)
			assert.GreaterOrEqual(t, hist.Counts[i], 0)
		}
		assert.Equal(t, len(samples), hist.Total(), "padded range must hold every sample here")
	}
}

func TestBuildDropsOutliers(t *testing.T) {
	samples := make([]float64, 0, 101)
	for i := 0; i < 100; i++ {
		samples = append(samples, float64(i))
	}
	samples = append(samples, 1e6)

	hist, err := Build(samples, 64)
	require.NoError(t, err)
	assert.Equal(t, 100, hist.Total())
	assert.Less(t, hist.Hi, 1e6)
}

func TestBuildDeterministic(t *testing.T) {
	samples := []float64{5, -3, 2.5, 8, 8, 1, 0, -7}
	a, err := Build(samples, 16)
	require.NoError(t, err)
	b, err := Build(samples, 16)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBuildIdenticalSamples(t *testing.T) {
	hist, err := Build([]float64{42, 42, 42, 42, 42}, 16)
	require.NoError(t, err)

	assert.Equal(t, 0, hist.Total())
	assert.Len(t, hist.Centers, 16)
	assert.InDelta(t, 41.5, hist.Edges[0], 1e-12)
	assert.InDelta(t, 42.5, hist.Edges[16], 1e-12)
	for i := 1; i < len(hist.Centers); i++ {
		assert.Greater(t, hist.Centers[i], hist.Centers[i-1])
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		bins    int
		wantErr error
	}{
		{"three samples", []float64{1, 2, 3}, 8, ErrInsufficientData},
		{"empty", nil, 8, ErrInsufficientData},
		{"nan", []float64{1, 2, math.NaN(), 4}, 8, ErrNonFiniteSample},
		{"inf", []float64{1, 2, math.Inf(1), 4}, 8, ErrNonFiniteSample},
		{"zero bins", []float64{1, 2, 3, 4}, 0, ErrInvalidBins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hist, err := Build(tt.samples, tt.bins)
			assert.Nil(t, hist)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuilderCustomRange(t *testing.T) {
	samples := []float64{0, 10, 20, 30, 40}
	hist, err := NewBuilderWithRange(0, 100, 0).Build(samples, 4)
	require.NoError(t, err)

	assert.Equal(t, 0.0, hist.Lo)
	assert.Equal(t, 40.0, hist.Hi)
	// edges 0 10 20 30 40, the max lands in the last bucket
	assert.Equal(t, []int{1, 1, 1, 2}, hist.Counts)
}
