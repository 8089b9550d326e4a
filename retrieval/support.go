package retrieval

import (
	"math"

	"github.com/RyanBlaney/coinc-retrieval/retrieval/config"
)

// SupportMask returns a centered window of length max(8, round(bins*supportFrac)),
// capped at bins. Samples inside the window are true.
func SupportMask(bins int, supportFrac float64) []bool {
	if bins <= 0 {
		return []bool{}
	}

	supportLen := max(config.MinBins, int(math.Round(float64(bins)*supportFrac)))
	supportLen = min(supportLen, bins)
	start := (bins - supportLen) / 2

	mask := make([]bool, bins)
	for i := start; i < start+supportLen; i++ {
		mask[i] = true
	}
	return mask
}
