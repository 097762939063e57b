package snake

import (
	"sort"

	"github.com/joonazan/vec2"

	"github.com/wovp/stonesnake/internal/core"
)

// warningPenalty is added to a move that steps onto the warning cell.
const warningPenalty = 50.0

// Movement is a candidate move scored by distance to the goal.
type Movement struct {
	Direction core.Direction
	Magnitude float64
	Target    core.Position
}

// Movements sorts by ascending Magnitude.
type Movements []*Movement

func (p Movements) Len() int           { return len(p) }
func (p Movements) Less(i, j int) bool { return p[i].Magnitude < p[j].Magnitude }
func (p Movements) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }

func vec(p core.Position) vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

// Candidates scores every safe one-step move for the current state.
// Unsafe moves (walls, stones, body, reversal) are omitted.
func (g *Game) Candidates() Movements {
	head := g.snake.Head()
	warn, hasWarn := g.hazard.Warning()
	goal, hasGoal := g.nearestFood(head)

	var moves Movements
	for _, d := range core.Directions {
		if d.IsOpposite(g.snake.Direction()) {
			continue
		}
		next := head.Step(d)
		if g.blocked(next) {
			continue
		}

		m := &Movement{Direction: d, Target: next}
		if hasGoal {
			m.Magnitude = vec(next).Minus(vec(goal)).Length()
		}
		if hasWarn && next == warn {
			m.Magnitude += warningPenalty
		}
		// Prefer cells with room to continue.
		m.Magnitude -= 0.25 * float64(g.freeNeighbours(next))
		moves = append(moves, m)
	}
	sort.Stable(moves)
	return moves
}

// Steer points the snake at the best candidate move. It returns false if
// every move is fatal, leaving the heading unchanged.
func (g *Game) Steer() bool {
	moves := g.Candidates()
	if len(moves) == 0 {
		return false
	}
	g.snake.ChangeDirection(moves[0].Direction)
	return true
}

func (g *Game) blocked(p core.Position) bool {
	if !g.grid.Contains(p) || g.IsStone(p) {
		return true
	}
	// Self collision is checked before the tail is removed, so the tail
	// cell is fatal too.
	return g.snake.Occupies(p)
}

func (g *Game) freeNeighbours(p core.Position) int {
	n := 0
	for _, d := range core.Directions {
		if !g.blocked(p.Step(d)) {
			n++
		}
	}
	return n
}

func (g *Game) nearestFood(from core.Position) (core.Position, bool) {
	best, found := core.Position{}, false
	for _, f := range g.food {
		if !found || from.Manhattan(f.Pos) < from.Manhattan(best) {
			best, found = f.Pos, true
		}
	}
	return best, found
}
