package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/storage"
)

// AppOptions configures the menu-driven program.
type AppOptions struct {
	Config     config.SnakeConfig      // Base tuning; the chosen preset is applied on top
	Difficulty config.DifficultyPreset // Initially highlighted preset
	Player     string
	Seed       int64
	Autopilot  bool
	Store      *storage.Store
	Logger     *log.Logger
}

// screenDoneMsg is sent by an embedded screen when it finishes.
type screenDoneMsg struct{}

func screenDone() tea.Msg { return screenDoneMsg{} }

type appScreen int

const (
	appMenu appScreen = iota
	appGame
	appScores
)

// App runs the difficulty menu, games and the scoreboard in one program.
// Leaving a game or the scoreboard returns to the menu; quitting the menu
// ends the program.
type App struct {
	opts    AppOptions
	rt      core.RuntimeConfig
	screen  appScreen
	current tea.Model
	session *Session
	last    config.DifficultyPreset
	games   int
}

// NewApp creates an App showing the menu.
func NewApp(opts AppOptions, rt core.RuntimeConfig) App {
	if opts.Config.Grid.Width == 0 || opts.Config.Grid.Height == 0 {
		opts.Config = config.DefaultSnakeConfig()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	a := App{opts: opts, rt: rt, last: opts.Difficulty}
	a.showMenu()
	return a
}

func (a *App) showMenu() {
	m := NewMenuModel(a.opts.Store, a.rt)
	m.exit = screenDone
	m.Focus(a.last)
	a.current = m
	a.screen = appMenu
	a.session = nil
}

// Init initializes the current screen.
func (a App) Init() tea.Cmd {
	return a.current.Init()
}

// Update routes messages to the current screen and switches screens when
// one finishes.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screenDoneMsg:
		return a.next()
	case tea.WindowSizeMsg:
		a.rt.ScreenW, a.rt.ScreenH = msg.Width, msg.Height
	case TickMsg:
		if a.screen != appGame {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.current, cmd = a.current.Update(msg)
	return a, cmd
}

func (a App) next() (tea.Model, tea.Cmd) {
	if a.screen != appMenu {
		a.showMenu()
		return a, a.current.Init()
	}

	choice := a.current.(MenuModel).Choice()
	if choice == nil {
		return a, tea.Quit
	}

	if choice.Scoreboard() {
		sb := NewScoreboardModel(a.opts.Store, a.rt.ScreenW, a.rt.ScreenH)
		sb.exit = screenDone
		a.current = sb
		a.screen = appScores
		return a, sb.Init()
	}

	cfg := a.opts.Config
	config.ApplySnakePreset(&cfg, choice.Difficulty)
	a.last = choice.Difficulty
	a.session = NewSession(SessionOptions{
		Config:     cfg,
		Difficulty: string(choice.Difficulty),
		Player:     a.opts.Player,
		Seed:       a.opts.Seed,
		Autopilot:  a.opts.Autopilot,
		Store:      a.opts.Store,
		Logger:     a.opts.Logger.With("difficulty", choice.Difficulty),
	})

	a.games++
	gm := NewModel(a.session, a.rt)
	gm.exit = screenDone
	gm.id = a.games
	a.current = gm
	a.screen = appGame
	return a, gm.Init()
}

// View renders the current screen.
func (a App) View() string {
	return a.current.View()
}

// RunApp starts the menu-driven program in the terminal.
func RunApp(opts AppOptions, rt core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewApp(opts, rt),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
