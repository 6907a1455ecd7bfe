// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// BlockfallConfig contains all configuration for the Blockfall game.
type BlockfallConfig struct {
	Board      BlockfallBoard   `yaml:"board"`
	Timing     BlockfallTiming  `yaml:"timing"`
	Scoring    BlockfallScoring `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlockfallBoard defines the playfield geometry.
type BlockfallBoard struct {
	Rows     int `yaml:"rows"`
	Cols     int `yaml:"cols"`
	SpawnCol int `yaml:"spawn_col"` // -1 centers the 4x4 piece box
	SpawnRow int `yaml:"spawn_row"`
}

// BlockfallTiming defines gravity timing in seconds.
type BlockfallTiming struct {
	DropInterval    float64 `yaml:"drop_interval"`     // Seconds between gravity steps
	MinDropInterval float64 `yaml:"min_drop_interval"` // Floor when difficulty speeds things up
	MaxDelta        float64 `yaml:"max_delta"`         // Front-ends clamp frame deltas to this
}

// BlockfallScoring defines the points awarded per lock.
type BlockfallScoring struct {
	// LinePoints[n] is awarded when a lock clears n rows.
	LinePoints []int `yaml:"line_points"`
	// LinesPerLevel controls the displayed level and difficulty steps.
	LinesPerLevel int `yaml:"lines_per_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the config describes a playable game.
func (c BlockfallConfig) Validate() error {
	switch {
	case c.Board.Rows < 4 || c.Board.Cols < 4:
		return fmt.Errorf("%w: board must be at least 4x4, got %dx%d", ErrInvalidConfig, c.Board.Rows, c.Board.Cols)
	case c.Board.SpawnCol > c.Board.Cols-4:
		return fmt.Errorf("%w: spawn_col %d leaves no room for a 4-wide piece in %d columns", ErrInvalidConfig, c.Board.SpawnCol, c.Board.Cols)
	case c.Board.SpawnRow >= c.Board.Rows:
		return fmt.Errorf("%w: spawn_row %d outside %d rows", ErrInvalidConfig, c.Board.SpawnRow, c.Board.Rows)
	case c.Timing.DropInterval <= 0:
		return fmt.Errorf("%w: drop_interval must be positive", ErrInvalidConfig)
	case c.Timing.MaxDelta <= 0:
		return fmt.Errorf("%w: max_delta must be positive", ErrInvalidConfig)
	case len(c.Scoring.LinePoints) < 5:
		return fmt.Errorf("%w: line_points needs entries for 0-4 lines, got %d", ErrInvalidConfig, len(c.Scoring.LinePoints))
	}
	return nil
}

// SpawnColumn resolves the spawn column, centering the piece box when unset.
func (b BlockfallBoard) SpawnColumn() int {
	if b.SpawnCol < 0 {
		return (b.Cols - 4) / 2
	}
	return b.SpawnCol
}
