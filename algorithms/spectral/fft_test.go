package spectral

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSignal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		t := float64(i)
		x[i] = 3 + math.Sin(2*math.Pi*5*t/float64(n)) + 0.5*math.Cos(2*math.Pi*11*t/float64(n)+0.3)
	}
	return x
}

func TestRealFFTRoundTrip(t *testing.T) {
	for _, n := range []int{8, 15, 64, 100} {
		plan, err := NewRealFFT(n)
		require.NoError(t, err)
		require.Equal(t, n/2+1, plan.Bins())
		require.Equal(t, n, plan.Len())

		x := testSignal(n)
		coeffs := plan.Forward(nil, x)
		require.Len(t, coeffs, n/2+1)

		back := plan.Inverse(nil, coeffs)
		require.Len(t, back, n)
		for i := range x {
			assert.InDelta(t, x[i], back[i], 1e-9, "n=%d i=%d", n, i)
		}
	}
}

func TestRealFFTMatchesFullFFT(t *testing.T) {
	n := 64
	plan, err := NewRealFFT(n)
	require.NoError(t, err)

	x := testSignal(n)
	half := plan.Forward(nil, x)
	full := NewFFT().Compute(x)

	for k := range half {
		assert.InDelta(t, real(full[k]), real(half[k]), 1e-9)
		assert.InDelta(t, imag(full[k]), imag(half[k]), 1e-9)
	}
}

func TestRealFFTReusesDestination(t *testing.T) {
	plan, err := NewRealFFT(16)
	require.NoError(t, err)

	coeffs := make([]complex128, plan.Bins())
	out := plan.Forward(coeffs, testSignal(16))
	assert.Same(t, &coeffs[0], &out[0])

	seq := make([]float64, 16)
	back := plan.Inverse(seq, coeffs)
	assert.Same(t, &seq[0], &back[0])
}

func TestRealFFTInverseIgnoresEdgeImaginaryParts(t *testing.T) {
	n := 16
	plan, err := NewRealFFT(n)
	require.NoError(t, err)

	coeffs := plan.Forward(nil, testSignal(n))
	clean := plan.Inverse(nil, coeffs)

	coeffs[0] += complex(0, 7)
	coeffs[n/2] += complex(0, -3)
	dirty := plan.Inverse(nil, coeffs)

	for i := range clean {
		assert.InDelta(t, clean[i], dirty[i], 1e-9)
	}
}

func TestNewRealFFTInvalid(t *testing.T) {
	_, err := NewRealFFT(0)
	assert.Error(t, err)
}

func TestFFTMagnitude(t *testing.T) {
	n := 32
	x := make([]float64, n)
	for i := range x {
		x[i] = math.Cos(2 * math.Pi * 4 * float64(i) / float64(n))
	}

	mags := NewFFT().Magnitude(x)
	require.Len(t, mags, n/2+1)
	assert.InDelta(t, float64(n)/2, mags[4], 1e-9)
	assert.InDelta(t, 0, mags[0], 1e-9)
	assert.InDelta(t, 0, mags[5], 1e-9)

	assert.Empty(t, NewFFT().Magnitude(nil))
}

func TestFFTInverseReal(t *testing.T) {
	x := testSignal(20)
	f := NewFFT()
	back := f.ComputeInverseReal(f.Compute(x))
	for i := range x {
		assert.InDelta(t, x[i], back[i], 1e-9)
	}
	assert.Empty(t, f.ComputeInverseReal(nil))
	assert.Empty(t, f.Compute(nil))
}
