package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
// It mirrors defaults/blockfall.yaml and backs it up if the embed is unreadable.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BlockfallBoard{
			Rows:     20,
			Cols:     10,
			SpawnCol: 3,
			SpawnRow: 0,
		},
		Timing: BlockfallTiming{
			DropInterval:    0.5,
			MinDropInterval: 0.08,
			MaxDelta:        0.1,
		},
		Scoring: BlockfallScoring{
			LinePoints:    []int{0, 100, 300, 500, 800},
			LinesPerLevel: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 4.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
