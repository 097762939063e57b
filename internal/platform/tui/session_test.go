package tui

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/storage"
)

// corridorConfig is a one-row playfield where every free cell holds food,
// so the snake eats before it reaches the wall.
func corridorConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Width = 6
	cfg.Grid.Height = 1
	cfg.Food.MinLive = 3
	cfg.Hazard.Enabled = false
	return cfg
}

func advance(s *Session, start time.Time, total time.Duration) {
	for dt := time.Duration(0); dt <= total; dt += 10 * time.Millisecond {
		s.Advance(start.Add(dt))
	}
}

func TestSessionStartAndTick(t *testing.T) {
	s := NewSession(SessionOptions{Seed: 1})
	start := time.Now()

	s.Advance(start)
	s.Do(core.ActionConfirm)
	if !s.Game().Running() {
		t.Fatal("confirm should start the game")
	}

	s.Advance(start.Add(200 * time.Millisecond))
	if s.Game().Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1 after 200ms", s.Game().Ticks())
	}
}

func TestSessionActions(t *testing.T) {
	s := NewSession(SessionOptions{Seed: 1})

	if s.Do(core.ActionUp) {
		t.Error("steering should not end the session")
	}
	if s.Game().Snake().NextDirection() != core.DirUp {
		t.Errorf("NextDirection() = %v, expected up", s.Game().Snake().NextDirection())
	}

	s.Do(core.ActionPause)
	if !s.Game().Running() {
		t.Error("pause toggle should start an idle game")
	}
	s.Do(core.ActionPause)
	if s.Game().Running() {
		t.Error("pause toggle should pause a running game")
	}

	s.Do(core.ActionBoost)
	if !s.Game().Snake().Boosting() {
		t.Error("boost action should activate the boost")
	}

	s.Do(core.ActionRestart)
	if s.Game().Snake().Boosting() || s.Game().Running() {
		t.Error("restart should reset to a paused fresh game")
	}

	if !s.Do(core.ActionQuit) {
		t.Error("quit should end the session")
	}
}

func TestSessionSavesRunOnGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer store.Close()

	s := NewSession(SessionOptions{
		Config:     corridorConfig(),
		Difficulty: "normal",
		Player:     "tester",
		Seed:       3,
		Store:      store,
	})
	start := time.Now()
	s.Advance(start)
	s.Advance(start.Add(5 * time.Second)) // Sits on the ready overlay
	s.Do(core.ActionConfirm)
	advance(s, start.Add(5*time.Second), 3*time.Second)

	if !s.Game().GameOver() {
		t.Fatal("snake should reach the wall")
	}
	if s.Game().Score() == 0 {
		t.Fatal("snake should eat in the corridor")
	}

	runs, err := store.TopScores("normal", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("stored %d runs, expected 1", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Score != s.Game().Score() {
		t.Errorf("stored run = %+v, expected tester with score %d", runs[0], s.Game().Score())
	}
	if s.LastRun() == nil || s.LastRun().ID != runs[0].RunID {
		t.Fatal("LastRun() should match the stored run")
	}
	// Three moves at most 300ms apart, none of the idle time.
	if d := s.LastRun().Duration; d <= 0 || d > time.Second {
		t.Errorf("run Duration = %v, expected only the time spent playing", d)
	}
	if s.Best() != s.Game().Score() {
		t.Errorf("Best() = %d, expected %d", s.Best(), s.Game().Score())
	}

	// Confirm after game over starts a fresh run.
	s.Do(core.ActionConfirm)
	if !s.Game().Running() || s.Game().Score() != 0 {
		t.Error("confirm after game over should reset and start")
	}
}

func TestSessionAutopilot(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Hazard.Enabled = false
	s := NewSession(SessionOptions{Config: cfg, Seed: 11, Autopilot: true})
	start := time.Now()
	s.Advance(start)
	s.Do(core.ActionConfirm)
	advance(s, start, 4*time.Second)

	// Without steering the snake hits the right wall after 10 moves.
	if s.Game().GameOver() {
		t.Error("autopilot should keep the snake off the wall")
	}
}

func TestSessionRenderStatus(t *testing.T) {
	s := NewSession(SessionOptions{Seed: 1, Difficulty: "hard"})
	w, h := s.Game().MinScreen()
	dst := core.NewScreen(w, h+2)

	s.Render(dst)
	if row := dst.Row(h + 1); !containsAll(row, "best 0", "[hard]") {
		t.Errorf("status row = %q", row)
	}
}
