package retrieval

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/RyanBlaney/coinc-retrieval/algorithms/histogram"
	"github.com/RyanBlaney/coinc-retrieval/algorithms/spectral"
	"github.com/RyanBlaney/coinc-retrieval/logging"
	"github.com/RyanBlaney/coinc-retrieval/retrieval/config"
)

// ErrInsufficientData is returned, with a nil result, when fewer than
// histogram.MinSamples samples are supplied. It means "no answer" rather
// than a failure: callers should skip the input.
var ErrInsufficientData = histogram.ErrInsufficientData

// Result is the best waveform found across all seeds
type Result struct {
	Centers    []float64 `json:"centers"`    // histogram bin centers, the time axis of Waveform
	Waveform   []float64 `json:"waveform"`   // reconstructed samples, same length as Centers
	Residual   float64   `json:"residual"`   // spectral residual of Waveform
	Seed       int       `json:"seed"`       // index of the winning trajectory
	Iterations int       `json:"iterations"` // iterations the winning trajectory ran
	Residuals  []float64 `json:"residuals"`  // final residual of every seed, in seed order

	Histogram *histogram.Histogram `json:"-"`
	Target    []float64            `json:"-"`
}

// Spectrum returns the frequency axis and half-spectrum magnitudes of the
// waveform, with frequencies in cycles per unit of the sample axis.
func (r *Result) Spectrum() ([]float64, []float64) {
	if r == nil || len(r.Waveform) < 2 {
		return []float64{}, []float64{}
	}
	dt := r.Centers[1] - r.Centers[0]
	return spectral.FrequencyAxis(len(r.Waveform), dt), spectral.NewFFT().Magnitude(r.Waveform)
}

// Reconstructor recovers a time-domain waveform from a histogram of timing
// differences using only its clipped magnitude spectrum and a centered
// support constraint.
//
// A Reconstructor draws from a single random source and must not be used
// from several goroutines at once.
type Reconstructor struct {
	config *config.ReconstructionConfig
	src    rand.Source
	logger logging.Logger
}

// NewReconstructor validates cfg and creates a reconstructor drawing initial
// phases from src. cfg is copied, so later changes to it have no effect.
// A nil cfg uses defaults. A nil src draws from a randomly
// seeded generator, so results differ between runs.
func NewReconstructor(cfg *config.ReconstructionConfig, src rand.Source) (*Reconstructor, error) {
	if cfg == nil {
		cfg = config.DefaultReconstructionConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	owned := *cfg

	logger := logging.WithFields(logging.Fields{
		"component": "phase_retrieval",
	})

	if src == nil {
		logger.Warn("no random source supplied, reconstruction will not be reproducible")
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &Reconstructor{
		config: &owned,
		src:    src,
		logger: logger,
	}, nil
}

// Config returns a copy of the configuration in use
func (r *Reconstructor) Config() *config.ReconstructionConfig {
	cfg := *r.config
	return &cfg
}

// Reconstruct builds the histogram of samples and returns the lowest-residual
// waveform over all seeds. It consumes Bins/2+1 draws per seed from the
// random source.
func (r *Reconstructor) Reconstruct(samples []float64) (*Result, error) {
	cfg := r.config

	hist, err := histogram.Build(samples, cfg.Bins)
	if err != nil {
		if errors.Is(err, histogram.ErrInsufficientData) {
			r.logger.Warn("skipping reconstruction", logging.Fields{
				"samples": len(samples),
				"minimum": histogram.MinSamples,
			})
		}
		return nil, err
	}

	target := TargetMagnitude(hist.Counts)
	mask := SupportMask(cfg.Bins, cfg.SupportFrac)

	runner := &seedRunner{
		target: target,
		mask:   mask,
		opts: TrajectoryOptions{
			Iters:     cfg.Iters,
			NonNeg:    cfg.NonNeg,
			Tolerance: cfg.Tolerance,
		},
		workers: cfg.Workers,
	}

	trajectories, err := runner.run(runner.drawAll(r.src, cfg.Seeds))
	if err != nil {
		return nil, fmt.Errorf("phase retrieval failed: %w", err)
	}

	residuals := make([]float64, len(trajectories))
	for i, t := range trajectories {
		residuals[i] = t.Residual
		r.logger.Debug("trajectory finished", logging.Fields{
			"seed":       i,
			"residual":   t.Residual,
			"iterations": t.Iterations,
		})
	}

	seed, best := SelectBest(trajectories)

	r.logger.Info("reconstruction complete", logging.Fields{
		"samples":  len(samples),
		"bins":     cfg.Bins,
		"seed":     seed,
		"residual": best.Residual,
	})

	return &Result{
		Centers:    hist.Centers,
		Waveform:   best.Waveform,
		Residual:   best.Residual,
		Seed:       seed,
		Iterations: best.Iterations,
		Residuals:  residuals,
		Histogram:  hist,
		Target:     target,
	}, nil
}

// Reconstruct is a convenience wrapper creating a Reconstructor for one call
func Reconstruct(samples []float64, cfg *config.ReconstructionConfig, src rand.Source) (*Result, error) {
	r, err := NewReconstructor(cfg, src)
	if err != nil {
		return nil, err
	}
	return r.Reconstruct(samples)
}
