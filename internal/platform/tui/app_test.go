package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
)

// send delivers msg and, like the Bubble Tea runtime, feeds a
// screen-finished message back in. Other commands are returned unrun.
func send(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := a.Update(msg)
	a = next.(App)
	if cmd == nil {
		return a, nil
	}
	if a.screen != appGame || isKey(msg) {
		if out := cmd(); out != nil {
			if _, ok := out.(screenDoneMsg); ok {
				return send(t, a, out)
			}
			if _, ok := out.(tea.QuitMsg); ok {
				return a, cmd
			}
		}
	}
	return a, cmd
}

func isKey(msg tea.Msg) bool {
	_, ok := msg.(tea.KeyMsg)
	return ok
}

func TestAppMenuToGameAndBack(t *testing.T) {
	a := NewApp(AppOptions{Seed: 1, Difficulty: config.DifficultyHard}, core.DefaultConfig())
	if a.screen != appMenu {
		t.Fatalf("screen = %v, expected menu", a.screen)
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.screen != appGame || a.session == nil {
		t.Fatal("enter on the menu should start a game")
	}
	if a.session.opts.Difficulty != "hard" {
		t.Errorf("Difficulty = %q, expected the highlighted hard preset", a.session.opts.Difficulty)
	}
	if got := a.session.Game().Config().Speed.BaseMs; got != 150 {
		t.Errorf("BaseMs = %d, expected the hard preset applied", got)
	}

	a, _ = send(t, a, runeKey('q'))
	if a.screen != appMenu {
		t.Fatalf("quitting a game should return to the menu, screen = %v", a.screen)
	}
	if m := a.current.(MenuModel); menuItems[m.cursor].Difficulty != config.DifficultyHard {
		t.Error("menu should reopen on the last played preset")
	}

	_, cmd := send(t, a, runeKey('q'))
	if cmd == nil {
		t.Fatal("quitting the menu should end the program")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quitting the menu should send tea.Quit")
	}
}

func TestAppScoreboardReturnsToMenu(t *testing.T) {
	a := NewApp(AppOptions{Seed: 1}, core.DefaultConfig())
	for i := 0; i < 4; i++ {
		a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyDown})
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if a.screen != appScores {
		t.Fatalf("screen = %v, expected the scoreboard", a.screen)
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.screen != appMenu {
		t.Errorf("leaving the scoreboard should return to the menu, screen = %v", a.screen)
	}
}

func TestAppDropsStaleTicks(t *testing.T) {
	a := NewApp(AppOptions{Seed: 1}, core.DefaultConfig())
	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	a, _ = send(t, a, runeKey('q'))

	if _, cmd := send(t, a, TickMsg{Time: time.Now(), id: 1}); cmd != nil {
		t.Error("the menu should ignore ticks")
	}

	a, _ = send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if _, cmd := send(t, a, TickMsg{Time: time.Now(), id: 1}); cmd != nil {
		t.Error("a new game should drop the previous game's tick")
	}
	if _, cmd := send(t, a, TickMsg{Time: time.Now(), id: 2}); cmd == nil {
		t.Error("a game should reschedule its own ticks")
	}
}
