// Package tui provides the Bubble Tea integration for the snake game.
// It owns the terminal UI loop, input mapping, and pumps the game's
// scheduler with wall-clock time.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to pump the game scheduler. Ticks carry the id of the
// model that scheduled them so a finished game's last tick is dropped.
type TickMsg struct {
	Time time.Time
	id   int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps, id int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, id: id}
	})
}
