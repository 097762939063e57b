// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Position is a cell coordinate on the playfield grid.
type Position struct {
	X, Y int
}

// Pos is a shorthand constructor for Position.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the position shifted by the given delta.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the neighbouring cell in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// Manhattan returns the taxicab distance between two positions.
func (p Position) Manhattan(o Position) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Direction is a heading on the grid.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Directions lists all headings in a fixed order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the one-cell offset for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether d and other point in exactly reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText renders the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection converts a name produced by String back to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return DirRight, false
}

// Grid describes a fixed-size playfield of W×H cells.
type Grid struct {
	W, H int
}

// Contains returns true if p lies inside [0,W)×[0,H).
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Cells returns the number of cells in the grid.
func (g Grid) Cells() int {
	return g.W * g.H
}

// At converts a linear cell index into a position (row-major).
func (g Grid) At(i int) Position {
	return Position{X: i % g.W, Y: i / g.W}
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Position {
	return Position{X: g.W / 2, Y: g.H / 2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
