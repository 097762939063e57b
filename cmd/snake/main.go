// snake is a terminal snake arcade where stones fall after a warning.
//
// Usage:
//
//	snake play              - Play in the terminal
//	snake menu              - Pick a difficulty interactively
//	snake serve             - Start SSH server for remote play
//	snake scores            - Show high scores
//	snake sim               - Run a headless autopilot game
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.snake/scores.db)
//	--config <path>       - Load game tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wovp/stonesnake/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Stone Snake - a snake arcade for your terminal",
	Long: `Stone Snake is a grid snake game played in the terminal.

Eat food to score and level up, spend energy on a speed boost, and steer
clear of the stones that land a couple of seconds after a warning.

Available commands:
  play     - Play in the terminal
  menu     - Pick a difficulty interactively
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a headless autopilot game
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard
  snake serve --ssh :2222
  snake scores --difficulty easy
  snake sim --seed 42 --duration 30s`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a snake.yaml tuning file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset (easy, normal, hard, fixed)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves --config and applies --difficulty on top.
func loadGameConfig() (config.SnakeConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	cfg, err := loadPresetConfig(preset)
	return cfg, preset, err
}

func loadPresetConfig(preset config.DifficultyPreset) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	config.ApplySnakePreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return cfg, nil
}
