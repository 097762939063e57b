package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/platform/tui"
	"github.com/wovp/stonesnake/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Browse recorded runs in an interactive scoreboard.

With --plain the top runs are printed as text instead, filtered by
--difficulty (use "all" for every preset).

Examples:
  snake scores
  snake scores --plain
  snake scores --plain --difficulty hard --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		return tui.RunScoreboard(store, width, height)
	}

	difficulty := ""
	if cmd.Flags().Changed("difficulty") && flagDifficulty != "all" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	scores, err := store.TopScores(difficulty, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieve scores: %w", err)
	}

	title := "all"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("High Scores - %s\n\n", title)
	fmt.Print(tui.PlainScores(scores))

	if len(scores) > 0 {
		if stats, err := store.Stats(difficulty); err == nil {
			fmt.Printf("\nBest: %d  Runs: %d  Avg: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
		}
	}
	return nil
}
