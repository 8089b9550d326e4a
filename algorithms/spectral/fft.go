package spectral

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT provides one-shot Fast Fourier Transforms for analysis of finished
// waveforms. For repeated transforms of a fixed length use RealFFT.
type FFT struct{}

// NewFFT creates a new FFT calculator
func NewFFT() *FFT {
	return &FFT{}
}

// Compute computes the full complex spectrum of a real sequence using mjibson/go-dsp.
// go-dsp handles any length, including non-power-of-2.
func (f *FFT) Compute(x []float64) []complex128 {
	if len(x) == 0 {
		return []complex128{}
	}

	return fft.FFTReal(x)
}

// ComputeInverseReal computes the inverse FFT and returns the real part only
func (f *FFT) ComputeInverseReal(x []complex128) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	result := fft.IFFT(x)
	realResult := make([]float64, len(result))

	for i, val := range result {
		realResult[i] = real(val)
	}

	return realResult
}

// Magnitude returns |X[k]| for k = 0..n/2, the non-redundant half of the
// spectrum of a real sequence of length n.
func (f *FFT) Magnitude(x []float64) []float64 {
	if len(x) == 0 {
		return []float64{}
	}

	spectrum := f.Compute(x)
	mags := make([]float64, len(x)/2+1)
	for k := range mags {
		mags[k] = cmplx.Abs(spectrum[k])
	}

	return mags
}
