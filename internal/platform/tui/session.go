package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/games/snake"
	"github.com/wovp/stonesnake/internal/sched"
	"github.com/wovp/stonesnake/internal/storage"
)

// SessionOptions configures one player's session.
type SessionOptions struct {
	Config     config.SnakeConfig
	Difficulty string
	Player     string
	Seed       int64 // 0 means time-based
	Autopilot  bool  // Steer automatically every frame
	Store      *storage.Store
	Logger     *log.Logger
}

// Session owns one game and the scheduler that drives it. The Bubble Tea
// model holds a pointer so game callbacks can update it between messages.
type Session struct {
	opts   SessionOptions
	loop   *sched.Loop
	game   *snake.Game
	logger *log.Logger

	epoch   time.Time // Wall time at loop zero
	best    int
	lastRun *storage.Run
}

// NewSession creates a session with a paused game.
func NewSession(opts SessionOptions) *Session {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Session{
		opts:   opts,
		loop:   sched.NewLoop(),
		logger: opts.Logger,
	}
	s.game = snake.New(snake.Options{
		Config:     opts.Config,
		Scheduler:  s.loop,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		Logger:     opts.Logger,
		OnGameOver: s.saveRun,
	})
	s.loadBest()
	return s
}

// Game returns the session's game.
func (s *Session) Game() *snake.Game { return s.game }

// Best returns the stored high score for this difficulty.
func (s *Session) Best() int { return s.best }

// LastRun returns the most recently saved run, if any.
func (s *Session) LastRun() *storage.Run { return s.lastRun }

// Advance pumps the scheduler up to wall time now.
func (s *Session) Advance(now time.Time) {
	if s.epoch.IsZero() {
		s.epoch = now
	}
	if s.opts.Autopilot && s.game.Running() {
		s.game.Steer()
	}
	s.loop.Pump(now.Sub(s.epoch))
}

// Do applies a player action. It returns true if the session should end.
func (s *Session) Do(a core.Action) bool {
	if d, ok := a.Direction(); ok {
		s.game.ChangeDirection(d)
		return false
	}

	switch a {
	case core.ActionQuit:
		return true
	case core.ActionBoost:
		s.game.ActivateBoost()
	case core.ActionPause:
		if !s.game.GameOver() {
			s.game.Toggle()
		}
	case core.ActionConfirm:
		if s.game.GameOver() {
			s.game.Reset()
		}
		s.game.Start()
	case core.ActionRestart:
		s.game.Reset()
	}
	return false
}

// Render draws the game plus a best-score status line at the bottom.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)

	_, minH := s.game.MinScreen()
	if dst.Height() <= minH {
		return
	}
	status := fmt.Sprintf(" best %d  [%s]", max(s.best, s.game.Score()), s.opts.Difficulty)
	if s.opts.Autopilot {
		status += "  autopilot"
	}
	dst.DrawTextColor(0, dst.Height()-1, status, core.ColorGray)
}

func (s *Session) loadBest() {
	if s.opts.Store == nil {
		return
	}
	best, err := s.opts.Store.HighScore(s.opts.Difficulty)
	if err != nil {
		s.logger.Warn("could not load high score", "err", err)
		return
	}
	s.best = best
}

// saveRun records the finished run. Storage errors are logged and ignored.
func (s *Session) saveRun() {
	g := s.game
	if g.Score() > s.best {
		s.best = g.Score()
	}
	if s.opts.Store == nil || g.Score() == 0 {
		return
	}

	run, err := s.opts.Store.SaveRun(storage.Run{
		Player:     s.opts.Player,
		Difficulty: s.opts.Difficulty,
		Score:      g.Score(),
		Level:      g.Level(),
		Length:     g.Snake().Len(),
		Eaten:      g.Eaten(),
		Duration:   g.PlayTime(),
	})
	if err != nil {
		s.logger.Warn("could not save run", "err", err)
		return
	}
	s.lastRun = &run
	s.logger.Info("run saved", "run", run.ID, "score", run.Score, "player", run.Player)
}
