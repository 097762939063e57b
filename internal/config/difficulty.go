package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.BaseMs = 250
		cfg.Speed.LevelStepMs = 15
		cfg.Hazard.MinWaitMs = 8000
		cfg.Hazard.MaxWaitMs = 14000
		cfg.Hazard.WarningMs = 3000
	case DifficultyHard:
		cfg.Speed.BaseMs = 150
		cfg.Speed.LevelStepMs = 25
		cfg.Hazard.MinWaitMs = 3000
		cfg.Hazard.MaxWaitMs = 6000
		cfg.Hazard.WarningMs = 1500
	case DifficultyFixed:
		cfg.Speed.LevelStepMs = 0
	}

	// Keep the interval ordering valid for custom configs with tight bounds
	if cfg.Speed.BaseMs > cfg.Speed.MaxMs {
		cfg.Speed.MaxMs = cfg.Speed.BaseMs
	}
	if cfg.Speed.BaseMs < cfg.Speed.MinMs {
		cfg.Speed.BaseMs = cfg.Speed.MinMs
	}
}
