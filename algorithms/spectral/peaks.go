package spectral

import (
	"sort"
)

// FrequencyAxis returns the frequencies k/(n*dt) of the half-spectrum bins
// k = 0..n/2 of a real sequence with n samples spaced dt apart.
func FrequencyAxis(n int, dt float64) []float64 {
	if n < 1 || dt <= 0 {
		return []float64{}
	}

	freqs := make([]float64, n/2+1)
	scale := 1.0 / (float64(n) * dt)
	for k := range freqs {
		freqs[k] = float64(k) * scale
	}

	return freqs
}

// PeakFrequencies returns the frequencies of the k largest magnitude bins at
// or below fmax, ignoring DC, sorted ascending. Bins are ranked individually
// rather than as local maxima, so a broad peak can contribute adjacent bins.
func PeakFrequencies(freqs, magnitudes []float64, k int, fmax float64) []float64 {
	n := min(len(freqs), len(magnitudes))
	if n == 0 || k <= 0 {
		return []float64{}
	}

	candidates := make([]int, 0, n)
	for i := 1; i < n; i++ {
		if freqs[i] <= fmax {
			candidates = append(candidates, i)
		}
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return magnitudes[candidates[a]] > magnitudes[candidates[b]]
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	peaks := make([]float64, len(candidates))
	for i, idx := range candidates {
		peaks[i] = freqs[idx]
	}
	sort.Float64s(peaks)

	return peaks
}
