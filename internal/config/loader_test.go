package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("ParseSnake(embedded) failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakeCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := []byte("grid:\n  width: 40\n  height: 20\nspeed:\n  base_ms: 120\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}

	if cfg.Grid.Width != 40 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 40x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Speed.BaseMs != 120 {
		t.Errorf("base_ms = %d, expected 120", cfg.Speed.BaseMs)
	}
	// Untouched keys keep their defaults
	if cfg.Boost.DurationMs != 3000 {
		t.Errorf("boost.duration_ms = %d, expected default 3000", cfg.Boost.DurationMs)
	}
	if cfg.Grid.CellSize != 2 {
		t.Errorf("grid.cell_size = %d, expected default 2", cfg.Grid.CellSize)
	}
}

func TestLoadSnakeMissingCustomPath(t *testing.T) {
	_, err := LoadSnake(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadSnakeRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  min_ms: 500\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadSnake(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("LoadSnake() error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSnakeMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("grid: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSnake(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
		ok     bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Width = 2 }, false},
		{"zero cell size", func(c *SnakeConfig) { c.Grid.CellSize = 0 }, false},
		{"base below min", func(c *SnakeConfig) { c.Speed.BaseMs = 10 }, false},
		{"base above max", func(c *SnakeConfig) { c.Speed.BaseMs = 1000 }, false},
		{"boost factor above one", func(c *SnakeConfig) { c.Boost.Factor = 1.5 }, false},
		{"no regen", func(c *SnakeConfig) { c.Boost.RegenPerSec = 0 }, false},
		{"max food below min", func(c *SnakeConfig) { c.Food.MaxLive = 0 }, false},
		{"inverted hazard wait", func(c *SnakeConfig) { c.Hazard.MaxWaitMs = 1000 }, false},
		{"inverted hazard wait when disabled", func(c *SnakeConfig) {
			c.Hazard.Enabled = false
			c.Hazard.MaxWaitMs = 1000
		}, true},
		{"zero points", func(c *SnakeConfig) { c.Scoring.PointsPerFood = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Width = 33

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := ParseSnake(data)
	if err != nil {
		t.Fatalf("ParseSnake() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip = %+v, expected %+v", back, cfg)
	}
}
