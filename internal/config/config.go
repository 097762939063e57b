// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all tuning for a snake session.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Speed   SpeedConfig   `yaml:"speed"`
	Boost   BoostConfig   `yaml:"boost"`
	Food    FoodConfig    `yaml:"food"`
	Hazard  HazardConfig  `yaml:"hazard"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// GridConfig defines the playfield. CellSize is the number of terminal
// columns one grid cell occupies.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines tick intervals in milliseconds.
type SpeedConfig struct {
	BaseMs      int `yaml:"base_ms"`       // Starting interval between moves
	MinMs       int `yaml:"min_ms"`        // Fastest interval allowed
	MaxMs       int `yaml:"max_ms"`        // Slowest interval SLOW food can reach
	LevelStepMs int `yaml:"level_step_ms"` // Interval reduction per level
}

// BoostConfig defines the player-activated boost economy.
type BoostConfig struct {
	Factor      float64 `yaml:"factor"` // Interval multiplier while boosting
	DurationMs  int     `yaml:"duration_ms"`
	CooldownMs  int     `yaml:"cooldown_ms"`
	RegenPerSec float64 `yaml:"regen_per_sec"` // Energy regained per second while resting
}

// FoodConfig defines food spawning.
type FoodConfig struct {
	SpawnIntervalMs int `yaml:"spawn_interval_ms"`
	MinLive         int `yaml:"min_live"` // Refill target after eating
	MaxLive         int `yaml:"max_live"` // Periodic spawn stops at this many
}

// HazardConfig defines the warning-then-stone pipeline.
type HazardConfig struct {
	Enabled   bool `yaml:"enabled"`
	MinWaitMs int  `yaml:"min_wait_ms"`
	MaxWaitMs int  `yaml:"max_wait_ms"`
	WarningMs int  `yaml:"warning_ms"`
}

// ScoringConfig defines points and levelling.
type ScoringConfig struct {
	PointsPerFood int `yaml:"points_per_food"`
	LevelEvery    int `yaml:"level_every"` // Score interval between level-ups
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// Base returns the starting tick interval.
func (s SpeedConfig) Base() time.Duration { return ms(s.BaseMs) }

// Min returns the fastest tick interval.
func (s SpeedConfig) Min() time.Duration { return ms(s.MinMs) }

// Max returns the slowest tick interval.
func (s SpeedConfig) Max() time.Duration { return ms(s.MaxMs) }

// LevelStep returns the interval reduction applied on level-up.
func (s SpeedConfig) LevelStep() time.Duration { return ms(s.LevelStepMs) }

// Duration returns how long a boost lasts.
func (b BoostConfig) Duration() time.Duration { return ms(b.DurationMs) }

// Cooldown returns the wait after a boost before another is allowed.
func (b BoostConfig) Cooldown() time.Duration { return ms(b.CooldownMs) }

// SpawnInterval returns the periodic food spawn interval.
func (f FoodConfig) SpawnInterval() time.Duration { return ms(f.SpawnIntervalMs) }

// MinWait returns the lower bound of the hazard wait.
func (h HazardConfig) MinWait() time.Duration { return ms(h.MinWaitMs) }

// MaxWait returns the (exclusive) upper bound of the hazard wait.
func (h HazardConfig) MaxWait() time.Duration { return ms(h.MaxWaitMs) }

// Warning returns how long a warning is shown before the stone lands.
func (h HazardConfig) Warning() time.Duration { return ms(h.WarningMs) }
