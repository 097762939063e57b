// Package snake implements the stone snake arcade game: a grid snake that
// eats effect food, races a boost economy, and dodges stones that land after
// a short warning.
//
// All timing flows through a sched.Scheduler so the same controller runs in
// real time under the TUI and in simulated time under tests.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/wovp/stonesnake/internal/config"
	"github.com/wovp/stonesnake/internal/core"
	"github.com/wovp/stonesnake/internal/sched"
)

// Options configures a Game. Zero values are replaced with defaults.
type Options struct {
	Config    config.SnakeConfig
	Scheduler sched.Scheduler
	Rand      *rand.Rand
	Logger    *log.Logger

	OnGameOver   func()
	OnFoodEffect func(Kind)
}

// Game is the session controller. It is not safe for concurrent use; every
// method and callback runs on the goroutine that advances the scheduler.
type Game struct {
	cfg    config.SnakeConfig
	grid   core.Grid
	sched  sched.Scheduler
	rng    *rand.Rand
	logger *log.Logger

	onGameOver   func()
	onFoodEffect func(Kind)

	snake    *Snake
	food     []Food
	stones   []core.Position
	stoneSet map[core.Position]struct{}
	hazard   *Hazard

	score int
	level int
	eaten int
	ticks uint64

	running bool
	started bool // Start was called since the last rebuild
	over    bool

	played    time.Duration // Running time before the current stretch
	resumedAt time.Duration

	world    sched.Group // Frame, spawn and hazard timers
	frame    *sched.Timer
	spawn    *sched.Timer
	lastTick time.Duration
}

// New creates a paused game ready to Start.
// An empty Config falls back to config.DefaultSnakeConfig.
func New(opts Options) *Game {
	cfg := opts.Config
	if cfg.Grid.Width == 0 || cfg.Grid.Height == 0 {
		cfg = config.DefaultSnakeConfig()
	}
	g := &Game{
		cfg:          cfg,
		grid:         core.Grid{W: cfg.Grid.Width, H: cfg.Grid.Height},
		sched:        opts.Scheduler,
		rng:          opts.Rand,
		logger:       opts.Logger,
		onGameOver:   opts.OnGameOver,
		onFoodEffect: opts.OnFoodEffect,
	}
	if g.sched == nil {
		g.sched = sched.NewLoop()
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}

	g.hazard = &Hazard{
		cfg:    cfg.Hazard,
		sched:  g.sched,
		rng:    g.rng,
		timers: &g.world,
		logger: g.logger,
		active: func() bool { return g.running },
		pick:   g.pickWarning,
		land:   g.landStone,
	}

	g.rebuild()
	return g
}

// Start begins or resumes play. It does nothing while running or after
// game over.
func (g *Game) Start() {
	if g.running || g.over {
		return
	}
	g.running = true
	g.started = true
	g.resumedAt = g.sched.Now()
	g.logger.Debug("start", "score", g.score, "level", g.level)

	g.resync()
	g.hazard.Arm()
	if !g.spawn.Active() {
		g.armSpawn()
	}
}

// Pause stops the world clock. Boost and cooldown keep running.
func (g *Game) Pause() {
	if !g.running {
		return
	}
	g.running = false
	g.played += g.sched.Now() - g.resumedAt
	g.stopWorld()
	g.logger.Debug("pause", "score", g.score)
}

// Toggle starts a paused game or pauses a running one.
func (g *Game) Toggle() {
	if g.running {
		g.Pause()
		return
	}
	g.Start()
}

// Reset discards the session and builds a fresh one. The game stays paused.
func (g *Game) Reset() {
	g.Pause()
	g.stopWorld()
	g.snake.Stop()
	g.over = false
	g.rebuild()
	g.logger.Debug("reset")
}

// ChangeDirection buffers a heading for the next move.
func (g *Game) ChangeDirection(d core.Direction) {
	g.snake.ChangeDirection(d)
}

// ActivateBoost fires the boost if the snake allows it.
func (g *Game) ActivateBoost() bool {
	if !g.snake.ActivateBoost() {
		return false
	}
	g.logger.Debug("boost", "interval", g.snake.CurrentSpeed())
	if g.running {
		g.resync()
	}
	return true
}

// Running reports whether the world clock is running.
func (g *Game) Running() bool { return g.running }

// PlayTime returns how long this session has been running, excluding
// pauses and time before the first Start.
func (g *Game) PlayTime() time.Duration {
	if g.running {
		return g.played + g.sched.Now() - g.resumedAt
	}
	return g.played
}

// GameOver reports whether the session ended. Start is ignored until Reset.
func (g *Game) GameOver() bool { return g.over }

func (g *Game) Score() int { return g.score }
func (g *Game) Level() int { return g.level }

// Snake returns the player entity for read access.
func (g *Game) Snake() *Snake { return g.snake }

func (g *Game) Grid() core.Grid { return g.grid }

// Food returns the live food in spawn order.
func (g *Game) Food() []Food { return g.food }

// Ticks returns the number of moves made this session.
func (g *Game) Ticks() uint64 { return g.ticks }

// Eaten returns the number of food items eaten this session.
func (g *Game) Eaten() int { return g.eaten }

// Config returns the tuning the game was built with.
func (g *Game) Config() config.SnakeConfig { return g.cfg }

// Stones returns the landed stones in landing order.
func (g *Game) Stones() []core.Position { return g.stones }

// Warning returns the cell marked for the next stone, if any.
func (g *Game) Warning() (core.Position, bool) { return g.hazard.Warning() }

// IsStone reports whether a stone occupies p.
func (g *Game) IsStone(p core.Position) bool {
	_, ok := g.stoneSet[p]
	return ok
}

// rebuild creates a fresh snake, food and stone set.
func (g *Game) rebuild() {
	g.snake = NewSnake(g.sched, g.grid.Center(), g.cfg.Speed, g.cfg.Boost)
	g.snake.SetBoostEndCallback(g.boostEnded)

	g.food = nil
	g.stones = nil
	g.stoneSet = make(map[core.Position]struct{})
	g.score = 0
	g.level = 1
	g.eaten = 0
	g.ticks = 0
	g.started = false
	g.played = 0

	g.refill()
}

func (g *Game) stopWorld() {
	g.world.Stop()
	g.hazard.Stop()
	g.frame = nil
	g.spawn = nil
}

func (g *Game) boostEnded() {
	g.logger.Debug("boost ended", "interval", g.snake.CurrentSpeed())
	if g.running {
		g.resync()
	}
}

// tick advances the snake one cell and resolves the consequences.
func (g *Game) tick() {
	g.ticks++
	g.snake.UpdateEnergyRegen()
	g.snake.Move()

	head := g.snake.Head()
	switch {
	case !g.grid.Contains(head):
		g.gameOver("wall")
		return
	case g.snake.CheckSelfCollision():
		g.gameOver("self")
		return
	case g.IsStone(head):
		g.gameOver("stone")
		return
	}

	g.snake.RemoveTail()

	before := g.score
	for i := len(g.food) - 1; i >= 0; i-- {
		f := g.food[i]
		if f.Pos != head {
			continue
		}
		g.applyEffect(f)
		g.food = append(g.food[:i], g.food[i+1:]...)
		g.score += g.cfg.Scoring.PointsPerFood
		g.eaten++
		g.logger.Debug("food eaten", "kind", f.Kind, "degree", f.Degree, "score", g.score)
		if g.onFoodEffect != nil {
			g.onFoodEffect(f.Kind)
		}
	}
	if g.score != before {
		g.refill()
		g.levelUp(before)
	}
}

func (g *Game) applyEffect(f Food) {
	switch f.Kind {
	case KindGrow:
		g.snake.Grow(f.Degree)
	case KindShrink:
		g.snake.Shrink(-f.Degree)
	case KindSlow:
		v := time.Duration(float64(g.snake.BaseSpeed()) * SlowFactor(f.Degree))
		g.snake.AdjustBaseSpeed(min(v, g.cfg.Speed.Max()))
	case KindFast:
		v := time.Duration(float64(g.snake.BaseSpeed()) * FastFactor(f.Degree))
		g.snake.AdjustBaseSpeed(max(v, g.cfg.Speed.Min()))
	}
}

// levelUp raises the level at most once when the score crosses a
// LevelEvery boundary.
func (g *Game) levelUp(before int) {
	every := g.cfg.Scoring.LevelEvery
	if every <= 0 || g.score/every <= before/every {
		return
	}
	g.level++
	v := max(g.snake.BaseSpeed()-g.cfg.Speed.LevelStep(), g.cfg.Speed.Min())
	g.snake.AdjustBaseSpeed(v)
	g.logger.Info("level up", "level", g.level, "interval", v)
	g.resync()
}

func (g *Game) gameOver(reason string) {
	if g.over {
		return
	}
	g.over = true
	g.Pause()
	g.logger.Info("game over", "reason", reason, "score", g.score, "level", g.level)
	if g.onGameOver != nil {
		g.onGameOver()
	}
}

// addFood places one food off the snake, stones, warning and other food.
func (g *Game) addFood() error {
	warn, hasWarn := g.hazard.Warning()
	f, err := GenerateFood(g.rng, g.snake, g.grid.W, g.grid.H, func(p core.Position) bool {
		if g.IsStone(p) || (hasWarn && p == warn) {
			return true
		}
		return g.foodAt(p)
	})
	if err != nil {
		return fmt.Errorf("snake: place food: %w", err)
	}
	g.food = append(g.food, f)
	g.logger.Debug("food spawned", "kind", f.Kind, "degree", f.Degree, "x", f.Pos.X, "y", f.Pos.Y)
	return nil
}

// refill tops the live food up to MinLive.
func (g *Game) refill() {
	for len(g.food) < g.cfg.Food.MinLive {
		if err := g.addFood(); err != nil {
			g.logger.Debug("refill skipped", "err", err)
			return
		}
	}
}

func (g *Game) armSpawn() {
	g.spawn = g.world.Add(g.sched.After(g.cfg.Food.SpawnInterval(), func() {
		g.spawn = nil
		if !g.running {
			return
		}
		if len(g.food) < g.cfg.Food.MaxLive {
			if err := g.addFood(); err != nil {
				g.logger.Debug("spawn skipped", "err", err)
			}
		}
		g.armSpawn()
	}))
}

func (g *Game) foodAt(p core.Position) bool {
	for _, f := range g.food {
		if f.Pos == p {
			return true
		}
	}
	return false
}

func (g *Game) pickWarning() (core.Position, error) {
	return FreeCell(g.rng, g.grid, func(p core.Position) bool {
		return g.snake.Occupies(p) || g.IsStone(p) || g.foodAt(p)
	})
}

func (g *Game) landStone(p core.Position) {
	if g.IsStone(p) {
		return
	}
	g.stones = append(g.stones, p)
	g.stoneSet[p] = struct{}{}
	g.logger.Debug("stone landed", "x", p.X, "y", p.Y, "stones", len(g.stones))
}
