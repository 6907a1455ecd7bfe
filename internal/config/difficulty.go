package config

import "github.com/tinypulse/arcade/internal/core"

// DifficultyManager derives the gravity interval from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.SetInitialLevel(cfg.InitialLevel)
	return d
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/lines.
// With progression disabled the level is 0, so gravity stays at its base rate.
func (d *DifficultyManager) Level(score int, lines int) float64 {
	if !d.IsEnabled() {
		return 0
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "lines":
		progress = float64(lines) / maxAt
	default:
		return d.initialLevel
	}

	progress = core.ClampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// DropInterval returns the gravity interval for the current progress.
// The interval shrinks from base to base/(1+speedMultiplier), never below floor.
func (d *DifficultyManager) DropInterval(base, floor float64, score int, lines int) float64 {
	level := d.Level(score, lines)
	interval := base / (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
	if floor > 0 && interval < floor {
		return floor
	}
	return interval
}
