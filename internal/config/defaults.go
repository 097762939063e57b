package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    20,
			Height:   15,
			CellSize: 2,
		},
		Speed: SpeedConfig{
			BaseMs:      200,
			MinMs:       50,
			MaxMs:       300,
			LevelStepMs: 20,
		},
		Boost: BoostConfig{
			Factor:      0.5,
			DurationMs:  3000,
			CooldownMs:  5000,
			RegenPerSec: 20,
		},
		Food: FoodConfig{
			SpawnIntervalMs: 5000,
			MinLive:         1,
			MaxLive:         10,
		},
		Hazard: HazardConfig{
			Enabled:   true,
			MinWaitMs: 5000,
			MaxWaitMs: 10000,
			WarningMs: 2000,
		},
		Scoring: ScoringConfig{
			PointsPerFood: 10,
			LevelEvery:    50,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
