package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.snake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a file only needs the keys it
// changes.
func LoadSnake(customPath string) (SnakeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := ParseSnake(data)
		if err != nil {
			return SnakeConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("snake.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSnake(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/snake.yaml"); err == nil {
		if cfg, err := ParseSnake(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSnake(defaultSnakeYAML)
	if err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSnake decodes YAML over the defaults and validates the result.
func ParseSnake(data []byte) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SnakeConfig{}, err
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration describes a playable session.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Width < 4 || c.Grid.Height < 4:
		return fmt.Errorf("%w: grid must be at least 4x4, got %dx%d", ErrInvalid, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellSize < 1:
		return fmt.Errorf("%w: cell_size must be positive", ErrInvalid)
	case c.Speed.MinMs <= 0:
		return fmt.Errorf("%w: speed.min_ms must be positive", ErrInvalid)
	case c.Speed.MinMs > c.Speed.BaseMs || c.Speed.BaseMs > c.Speed.MaxMs:
		return fmt.Errorf("%w: speed must satisfy min_ms <= base_ms <= max_ms", ErrInvalid)
	case c.Speed.LevelStepMs < 0:
		return fmt.Errorf("%w: speed.level_step_ms must not be negative", ErrInvalid)
	case c.Boost.Factor <= 0 || c.Boost.Factor > 1:
		return fmt.Errorf("%w: boost.factor must be in (0, 1]", ErrInvalid)
	case c.Boost.DurationMs <= 0 || c.Boost.CooldownMs < 0:
		return fmt.Errorf("%w: boost durations must be positive", ErrInvalid)
	case c.Boost.RegenPerSec <= 0:
		return fmt.Errorf("%w: boost.regen_per_sec must be positive", ErrInvalid)
	case c.Food.SpawnIntervalMs <= 0:
		return fmt.Errorf("%w: food.spawn_interval_ms must be positive", ErrInvalid)
	case c.Food.MinLive < 0 || c.Food.MaxLive < c.Food.MinLive:
		return fmt.Errorf("%w: food must satisfy 0 <= min_live <= max_live", ErrInvalid)
	case c.Hazard.Enabled && (c.Hazard.MinWaitMs <= 0 || c.Hazard.MaxWaitMs < c.Hazard.MinWaitMs):
		return fmt.Errorf("%w: hazard must satisfy 0 < min_wait_ms <= max_wait_ms", ErrInvalid)
	case c.Hazard.Enabled && c.Hazard.WarningMs < 0:
		return fmt.Errorf("%w: hazard.warning_ms must not be negative", ErrInvalid)
	case c.Scoring.PointsPerFood <= 0 || c.Scoring.LevelEvery <= 0:
		return fmt.Errorf("%w: scoring values must be positive", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "configs", filename)
}
