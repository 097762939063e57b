package snake

import (
	"time"

	"github.com/wovp/stonesnake/internal/core"
)

// State is the coarse session state.
type State string

const (
	StateReady    State = "ready"
	StatePlaying  State = "playing"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
)

// Snapshot captures the complete game state for determinism testing and
// headless output.
type Snapshot struct {
	State     State           `yaml:"state"`
	Clock     time.Duration   `yaml:"clock"`
	PlayTime  time.Duration   `yaml:"play_time"`
	Ticks     uint64          `yaml:"ticks"`
	Score     int             `yaml:"score"`
	Level     int             `yaml:"level"`
	Eaten     int             `yaml:"eaten"`
	Direction core.Direction  `yaml:"direction"`
	Body      []core.Position `yaml:"body,flow"`
	Food      []Food          `yaml:"food"`
	Stones    []core.Position `yaml:"stones,flow"`
	Warning   *core.Position  `yaml:"warning,omitempty"`

	BaseSpeed    time.Duration `yaml:"base_speed"`
	CurrentSpeed time.Duration `yaml:"current_speed"`
	Energy       float64       `yaml:"energy"`
	Boosting     bool          `yaml:"boosting"`
	OnCooldown   bool          `yaml:"on_cooldown"`
}

// State returns the coarse session state.
func (g *Game) State() State {
	switch {
	case g.over:
		return StateGameOver
	case g.running:
		return StatePlaying
	case !g.started:
		return StateReady
	default:
		return StatePaused
	}
}

// Snapshot returns a deep copy of the observable state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		State:        g.State(),
		Clock:        g.sched.Now(),
		PlayTime:     g.PlayTime(),
		Ticks:        g.ticks,
		Score:        g.score,
		Level:        g.level,
		Eaten:        g.eaten,
		Direction:    g.snake.Direction(),
		Body:         append([]core.Position(nil), g.snake.Body()...),
		Food:         append([]Food(nil), g.food...),
		Stones:       append([]core.Position(nil), g.stones...),
		BaseSpeed:    g.snake.BaseSpeed(),
		CurrentSpeed: g.snake.CurrentSpeed(),
		Energy:       g.snake.Energy(),
		Boosting:     g.snake.Boosting(),
		OnCooldown:   g.snake.OnCooldown(),
	}
	if w, ok := g.hazard.Warning(); ok {
		s.Warning = &w
	}
	return s
}
