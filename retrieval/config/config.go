package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid reconstruction config")

// MinBins is the smallest histogram the reconstruction accepts; it matches
// the minimum support window length.
const MinBins = 8

// ReconstructionConfig configures magnitude-only waveform reconstruction
type ReconstructionConfig struct {
	Bins        int     `json:"bins"`         // histogram buckets, also the transform length
	Iters       int     `json:"iters"`        // projections per trajectory
	Seeds       int     `json:"seeds"`        // independent random phase initializations
	SupportFrac float64 `json:"support_frac"` // centered support width as a fraction of Bins
	NonNeg      bool    `json:"nonneg"`       // clamp negative time-domain samples each iteration

	// Workers bounds how many trajectories run concurrently; 0 or 1 runs them sequentially.
	Workers int `json:"workers,omitempty"`

	// Tolerance enables early exit once the residual of consecutive iterates
	// changes by no more than this amount. 0 always runs Iters iterations.
	Tolerance float64 `json:"tolerance,omitempty"`
}

// DefaultReconstructionConfig returns the defaults used by the coincidence plotting tools
func DefaultReconstructionConfig() *ReconstructionConfig {
	return &ReconstructionConfig{
		Bins:        1024,
		Iters:       600,
		Seeds:       5,
		SupportFrac: 0.4,
		NonNeg:      false,
		Workers:     1,
		Tolerance:   0,
	}
}

// Validate reports the first invalid field
func (c *ReconstructionConfig) Validate() error {
	switch {
	case c.Bins < MinBins:
		return fmt.Errorf("%w: bins must be at least %d, got %d", ErrInvalidConfig, MinBins, c.Bins)
	case c.Iters < 1:
		return fmt.Errorf("%w: iters must be at least 1, got %d", ErrInvalidConfig, c.Iters)
	case c.Seeds < 1:
		return fmt.Errorf("%w: seeds must be at least 1, got %d", ErrInvalidConfig, c.Seeds)
	case math.IsNaN(c.SupportFrac) || c.SupportFrac <= 0 || c.SupportFrac > 1:
		return fmt.Errorf("%w: support_frac must be in (0, 1], got %v", ErrInvalidConfig, c.SupportFrac)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case math.IsNaN(c.Tolerance) || c.Tolerance < 0:
		return fmt.Errorf("%w: tolerance must not be negative, got %v", ErrInvalidConfig, c.Tolerance)
	}
	return nil
}
