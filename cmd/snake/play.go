package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/platform/tui"
	"github.com/wovp/stonesnake/internal/storage"
)

var (
	flagLogPath   string
	flagAutopilot bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game of Stone Snake.

Controls:
  Arrows/WASD  - Steer
  Space        - Boost (needs a full energy bar)
  P/Esc        - Pause
  Enter        - Start, or play again after game over
  R            - Reset the run
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, rarer stones, longer warnings
  normal - Default tuning
  hard   - Faster start, frequent stones, short warnings
  fixed  - No speed-up on level up

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./snake.yaml --seed 7
  snake play --log ./snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
		c.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the game steer itself")
	}
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, preset, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	session := tui.NewSession(tui.SessionOptions{
		Config:     gameCfg,
		Difficulty: string(preset),
		Player:     playerName(),
		Seed:       flagSeed,
		Autopilot:  flagAutopilot,
		Store:      store,
		Logger:     logger.With("difficulty", preset),
	})
	return tui.Run(session, runtimeConfig())
}

// openLogger returns a file logger when --log is set. The TUI owns stdout,
// so logs are discarded otherwise.
func openLogger() (*log.Logger, func(), error) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "snake",
	})
	return logger, func() { f.Close() }, nil
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runtimeConfig() core.RuntimeConfig {
	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
