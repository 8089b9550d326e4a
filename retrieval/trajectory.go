package retrieval

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/RyanBlaney/coinc-retrieval/algorithms/common"
	"github.com/RyanBlaney/coinc-retrieval/algorithms/spectral"
	"gonum.org/v1/gonum/stat/distuv"
)

// TrajectoryOptions controls a single alternating-projection run
type TrajectoryOptions struct {
	Iters     int
	NonNeg    bool
	Tolerance float64 // 0 disables early exit
}

// Trajectory is the outcome of one random phase initialization
type Trajectory struct {
	Waveform   []float64 `json:"waveform"`
	Residual   float64   `json:"residual"`
	Iterations int       `json:"iterations"`
}

// DrawPhases draws n independent phases uniformly from [0, 2π) using src.
func DrawPhases(src rand.Source, n int) []float64 {
	dist := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}

	phases := make([]float64, n)
	for i := range phases {
		phases[i] = dist.Rand()
	}
	return phases
}

// RunTrajectory runs the magnitude/support projection loop from the given
// initial phases.
//
// Each iteration inverse-transforms the working spectrum, optionally clamps
// negative samples, zeroes everything outside mask, forward-transforms, and
// keeps only the phase of the result against the fixed target magnitude.
//
// The returned waveform is the inverse transform of the last working
// spectrum. It is not masked again, so it can be non-zero outside the
// support window. Residual is ||abs(F(x)) - target|| for that inverse
// transform x. With NonNeg the returned waveform is then clamped once more
// so the output stays non-negative; the clamp does not enter Residual.
func RunTrajectory(target []float64, mask []bool, phases []float64, opts TrajectoryOptions) (Trajectory, error) {
	n := len(mask)
	switch {
	case n == 0:
		return Trajectory{}, fmt.Errorf("empty support mask")
	case len(target) != n/2+1:
		return Trajectory{}, fmt.Errorf("target length %d does not match %d bins", len(target), n)
	case len(phases) != len(target):
		return Trajectory{}, fmt.Errorf("got %d phases for %d frequency bins", len(phases), len(target))
	case opts.Iters < 1:
		return Trajectory{}, fmt.Errorf("iters must be at least 1, got %d", opts.Iters)
	}

	plan, err := spectral.NewRealFFT(n)
	if err != nil {
		return Trajectory{}, err
	}

	spectrum := make([]complex128, len(target))
	for k, mag := range target {
		spectrum[k] = cmplx.Rect(mag, phases[k])
	}

	candidate := make([]float64, n)
	estimate := make([]complex128, len(target))
	magnitudes := make([]float64, len(target))
	prevResidual := math.Inf(1)

	iterations := 0
	for iterations < opts.Iters {
		plan.Inverse(candidate, spectrum)
		if opts.NonNeg {
			common.ClampNonNegative(candidate)
		}
		common.ApplyMask(candidate, mask)

		plan.Forward(estimate, candidate)
		for k, c := range estimate {
			spectrum[k] = cmplx.Rect(target[k], cmplx.Phase(c))
		}
		iterations++

		if opts.Tolerance > 0 {
			residual := common.Distance(absInto(magnitudes, estimate), target)
			if math.Abs(prevResidual-residual) <= opts.Tolerance {
				break
			}
			prevResidual = residual
		}
	}

	waveform := plan.Inverse(nil, spectrum)
	residual := common.Distance(absInto(magnitudes, plan.Forward(estimate, waveform)), target)
	if opts.NonNeg {
		common.ClampNonNegative(waveform)
	}

	return Trajectory{
		Waveform:   waveform,
		Residual:   residual,
		Iterations: iterations,
	}, nil
}

func absInto(dst []float64, coeffs []complex128) []float64 {
	for k, c := range coeffs {
		dst[k] = cmplx.Abs(c)
	}
	return dst
}
