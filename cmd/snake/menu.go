package main

import (
	"os/user"

	"github.com/spf13/cobra"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a difficulty, Enter to play.
Quitting a game or the scoreboard returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --fps 30
  snake menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	gameCfg, err := loadPresetConfig(config.DifficultyNormal)
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

	return tui.RunApp(tui.AppOptions{
		Config:     gameCfg,
		Difficulty: preset,
		Player:     playerName(),
		Seed:       flagSeed,
		Autopilot:  flagAutopilot,
		Store:      store,
		Logger:     logger,
	}, runtimeConfig())
}

func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
