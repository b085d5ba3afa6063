package config

import (
	"math"
	"sort"
)

// DifficultyManager derives the enemy spawn interval from the score.
// The interval only ever ratchets down within a run.
type DifficultyManager struct {
	cfg   DifficultyConfig
	steps []SpawnStep // Sorted by ascending score threshold
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	steps := append([]SpawnStep(nil), cfg.Steps...)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Score < steps[j].Score
	})
	return &DifficultyManager{cfg: cfg, steps: steps}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && len(d.steps) > 0
}

// InitialInterval returns the spawn interval a run starts with.
func (d *DifficultyManager) InitialInterval() float64 {
	return d.cfg.InitialInterval
}

// SpawnInterval returns the interval to use after reaching score, given the
// interval currently in effect. A step applies once score strictly exceeds its
// threshold, and the result never exceeds current.
func (d *DifficultyManager) SpawnInterval(current float64, score int) float64 {
	if !d.IsEnabled() {
		return current
	}

	interval := current
	for _, step := range d.steps {
		if score > step.Score {
			interval = math.Min(interval, step.Interval)
		}
	}
	return interval
}

// Level returns the fraction of ramp steps reached at score (0.0 to 1.0).
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	reached := 0
	for _, step := range d.steps {
		if score > step.Score {
			reached++
		}
	}
	return float64(reached) / float64(len(d.steps))
}
