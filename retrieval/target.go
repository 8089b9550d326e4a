package retrieval

import (
	"math"

	"github.com/RyanBlaney/coinc-retrieval/algorithms/common"
	"github.com/RyanBlaney/coinc-retrieval/algorithms/spectral"
)

// TargetMagnitude derives the magnitude constraint from histogram counts:
// sqrt(max(Re(F[k]), 0)) over the half spectrum F of the counts. This is
// not |F[k]|; existing reconstructions were produced with the real-part
// form and stay comparable only if it is kept.
func TargetMagnitude(counts []int) []float64 {
	if len(counts) == 0 {
		return []float64{}
	}

	plan, err := spectral.NewRealFFT(len(counts))
	if err != nil {
		return []float64{}
	}

	return targetFromCoefficients(plan.Forward(nil, common.ToFloat64(counts)))
}

func targetFromCoefficients(coeffs []complex128) []float64 {
	mag := make([]float64, len(coeffs))
	for k, c := range coeffs {
		mag[k] = math.Sqrt(math.Max(real(c), 0))
	}
	return mag
}
