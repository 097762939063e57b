package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/storage"
)

// MenuItem is one selectable menu row.
type MenuItem struct {
	Title      string
	Difficulty config.DifficultyPreset // Empty for the scoreboard row
	Hint       string
}

var menuItems = []MenuItem{
	{Title: "Easy", Difficulty: config.DifficultyEasy, Hint: "slow start, rare stones"},
	{Title: "Normal", Difficulty: config.DifficultyNormal, Hint: "the standard game"},
	{Title: "Hard", Difficulty: config.DifficultyHard, Hint: "fast, stones everywhere"},
	{Title: "Fixed", Difficulty: config.DifficultyFixed, Hint: "no speed-up on level up"},
	{Title: "High Scores"},
}

// MenuChoice is what the player picked. A zero Difficulty means the
// scoreboard.
type MenuChoice struct {
	Difficulty config.DifficultyPreset
}

// Scoreboard reports whether the scoreboard row was chosen.
func (c MenuChoice) Scoreboard() bool { return c.Difficulty == "" }

// MenuKeyMap defines menu key bindings.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	best     map[config.DifficultyPreset]int
	choice   *MenuChoice
	quitting bool
	exit     tea.Cmd
}

// NewMenuModel creates a menu with the cursor on Normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		cursor: 1,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		keys:   DefaultMenuKeyMap(),
		best:   make(map[config.DifficultyPreset]int),
		exit:   tea.Quit,
	}
	if store != nil {
		for _, item := range menuItems {
			if item.Difficulty == "" {
				continue
			}
			if best, err := store.HighScore(string(item.Difficulty)); err == nil {
				m.best[item.Difficulty] = best
			}
		}
	}
	return m
}

// Focus moves the cursor to the given difficulty.
func (m *MenuModel) Focus(preset config.DifficultyPreset) {
	for i, item := range menuItems {
		if item.Difficulty == preset && preset != "" {
			m.cursor = i
		}
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, m.exit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.choice = &MenuChoice{Difficulty: menuItems[m.cursor].Difficulty}
		return m, m.exit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.choice != nil {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S T O N E   S N A K E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("  %-12s", item.Title)
		if item.Difficulty != "" {
			line += fmt.Sprintf(" best %-6d", m.best[item.Difficulty])
		} else {
			line += strings.Repeat(" ", 12)
		}
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(hintStyle.Render(menuItems[m.cursor].Hint), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(hintStyle.Render("Enter: Select  |  Q: Quit"), m.width))
	return b.String()
}

// Choice returns the selection, or nil if the player quit.
func (m MenuModel) Choice() *MenuChoice {
	return m.choice
}
