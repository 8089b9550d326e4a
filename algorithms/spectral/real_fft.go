package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// RealFFT is a reusable half-spectrum transform plan for real sequences of a
// fixed length n, backed by gonum's FFTPACK port. Forward produces n/2+1
// coefficients; Inverse consumes n/2+1 coefficients and returns n real values.
//
// A RealFFT holds scratch space and is not safe for concurrent use. Create
// one per goroutine.
type RealFFT struct {
	n    int
	plan *fourier.FFT
}

// NewRealFFT creates a transform plan for sequences of length n
func NewRealFFT(n int) (*RealFFT, error) {
	if n < 1 {
		return nil, fmt.Errorf("transform length must be positive, got %d", n)
	}
	return &RealFFT{n: n, plan: fourier.NewFFT(n)}, nil
}

// Len returns the sequence length of the plan
func (r *RealFFT) Len() int {
	return r.n
}

// Bins returns the half-spectrum length n/2+1
func (r *RealFFT) Bins() int {
	return r.n/2 + 1
}

// Forward computes the half spectrum of x into dst, allocating when dst is nil.
// Panics if len(x) != Len() or dst has the wrong length.
func (r *RealFFT) Forward(dst []complex128, x []float64) []complex128 {
	return r.plan.Coefficients(dst, x)
}

// Inverse reconstructs the real sequence from a half spectrum into dst,
// allocating when dst is nil. The imaginary parts of the DC term (and the
// Nyquist term for even n) are ignored. The result is scaled by 1/n so that
// Inverse(Forward(x)) == x.
func (r *RealFFT) Inverse(dst []float64, coeffs []complex128) []float64 {
	dst = r.plan.Sequence(dst, coeffs)
	floats.Scale(1/float64(r.n), dst)
	return dst
}

// Frequencies returns the frequency of each half-spectrum bin for sample spacing dt
func (r *RealFFT) Frequencies(dt float64) []float64 {
	return FrequencyAxis(r.n, dt)
}
