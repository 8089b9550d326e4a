package retrieval

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// SelectBest folds trajectories by residual and returns the index and value
// of the strictly lowest one. Ties keep the earliest. An empty input yields -1.
func SelectBest(trajectories []Trajectory) (int, Trajectory) {
	best := -1
	for i, t := range trajectories {
		if best < 0 || t.Residual < trajectories[best].Residual {
			best = i
		}
	}
	if best < 0 {
		return -1, Trajectory{}
	}
	return best, trajectories[best]
}

// seedRunner runs one trajectory per initial phase vector. Phases for every
// seed are drawn up front, in seed order, so the outcome is independent of
// how many workers execute the trajectories.
type seedRunner struct {
	target  []float64
	mask    []bool
	opts    TrajectoryOptions
	workers int
}

func (s *seedRunner) drawAll(src rand.Source, seeds int) [][]float64 {
	phases := make([][]float64, seeds)
	for i := range phases {
		phases[i] = DrawPhases(src, len(s.target))
	}
	return phases
}

func (s *seedRunner) run(phases [][]float64) ([]Trajectory, error) {
	trajectories := make([]Trajectory, len(phases))

	if s.workers <= 1 {
		for i, p := range phases {
			t, err := RunTrajectory(s.target, s.mask, p, s.opts)
			if err != nil {
				return nil, fmt.Errorf("seed %d: %w", i, err)
			}
			trajectories[i] = t
		}
		return trajectories, nil
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i, p := range phases {
		g.Go(func() error {
			t, err := RunTrajectory(s.target, s.mask, p, s.opts)
			if err != nil {
				return fmt.Errorf("seed %d: %w", i, err)
			}
			trajectories[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trajectories, nil
}
