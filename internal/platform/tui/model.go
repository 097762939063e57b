package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wovp/stonesnake/internal/core"
)

// Model is the Bubble Tea model for a snake session.
type Model struct {
	session  *Session
	screen   *core.Screen
	keys     KeyMap
	fps      int
	quitting bool
	exit     tea.Cmd // Sent on quit; tea.Quit unless embedded
	id       int
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *Session, cfg core.RuntimeConfig) Model {
	return Model{
		session: session,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    DefaultKeyMap(),
		fps:     cfg.TickRate,
		exit:    tea.Quit,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.id != m.id || m.quitting {
			return m, nil
		}
		m.session.Advance(msg.Time)
		return m, tickCmd(m.fps, m.id)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.session.Do(m.keys.Action(msg)) {
		m.quitting = true
		return m, m.exit
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the session.
func Run(session *Session, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewModel(session, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
