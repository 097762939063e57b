package snake

import (
	"errors"
	"math/rand"

	"github.com/wovp/stonesnake/internal/core"
)

// ErrNoFreeCell is returned when every grid cell is occupied.
var ErrNoFreeCell = errors.New("snake: no free cell")

// Kind is the effect a food applies when eaten.
type Kind int

const (
	KindGrow   Kind = iota // Adds Degree+1 segments
	KindShrink             // Removes |Degree| segments
	KindSlow               // Lengthens the base interval
	KindFast               // Shortens the base interval
)

func (k Kind) String() string {
	switch k {
	case KindGrow:
		return "grow"
	case KindShrink:
		return "shrink"
	case KindSlow:
		return "slow"
	case KindFast:
		return "fast"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Glyph returns the display character for a food kind.
func (k Kind) Glyph() rune {
	switch k {
	case KindGrow:
		return '*'
	case KindShrink:
		return '-'
	case KindSlow:
		return '~'
	case KindFast:
		return '+'
	default:
		return '?'
	}
}

// Food is an edible cell.
//
// Degree encodes both band and magnitude: GROW 0..10, SHRINK -10..-1,
// SLOW 11..20, FAST 21..30.
type Food struct {
	Pos    core.Position `yaml:"pos"`
	Kind   Kind          `yaml:"kind"`
	Degree int           `yaml:"degree"`
}

// SlowFactor maps a SLOW degree to its base interval multiplier (1.1..2.0).
func SlowFactor(degree int) float64 {
	return 1 + float64(degree-10)/10
}

// FastFactor maps a FAST degree to its base interval multiplier (0.95..0.5).
func FastFactor(degree int) float64 {
	return 1 - float64(degree-20)/20
}

// RandomEffect draws an effect kind and degree from the fixed probability bands.
func RandomEffect(rng *rand.Rand) (Kind, int) {
	r := rng.Float64()
	switch {
	case r < 0.60:
		return KindGrow, rng.Intn(11)
	case r < 0.70:
		return KindShrink, -rng.Intn(10) - 1
	case r < 0.85:
		return KindSlow, rng.Intn(10) + 11
	default:
		return KindFast, rng.Intn(10) + 21
	}
}

// GenerateFood places a food with a random effect on a cell not covered by
// the snake. blocked, if non-nil, rejects further cells.
func GenerateFood(rng *rand.Rand, s *Snake, width, height int, blocked func(core.Position) bool) (Food, error) {
	occupied := s.Occupies
	if blocked != nil {
		occupied = func(p core.Position) bool {
			return s.Occupies(p) || blocked(p)
		}
	}

	pos, err := FreeCell(rng, core.Grid{W: width, H: height}, occupied)
	if err != nil {
		return Food{}, err
	}

	kind, degree := RandomEffect(rng)
	return Food{Pos: pos, Kind: kind, Degree: degree}, nil
}

// FreeCell samples uniformly random cells until one is not occupied.
// After a bounded number of misses it scans the whole grid and picks among
// the remaining free cells, failing with ErrNoFreeCell when there are none.
func FreeCell(rng *rand.Rand, grid core.Grid, occupied func(core.Position) bool) (core.Position, error) {
	if grid.Cells() <= 0 {
		return core.Position{}, ErrNoFreeCell
	}

	for i, n := 0, 4*grid.Cells(); i < n; i++ {
		p := core.Pos(rng.Intn(grid.W), rng.Intn(grid.H))
		if !occupied(p) {
			return p, nil
		}
	}

	var free []core.Position
	for i, n := 0, grid.Cells(); i < n; i++ {
		if p := grid.At(i); !occupied(p) {
			free = append(free, p)
		}
	}
	if len(free) == 0 {
		return core.Position{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}
