package core

import "testing"

func TestGridContains(t *testing.T) {
	g := Grid{W: 40, H: 20}

	tests := []struct {
		name     string
		p        Position
		expected bool
	}{
		{"origin", Pos(0, 0), true},
		{"inside", Pos(10, 10), true},
		{"last cell", Pos(39, 19), true},
		{"right edge (exclusive)", Pos(40, 10), false},
		{"bottom edge (exclusive)", Pos(10, 20), false},
		{"negative x", Pos(-1, 0), false},
		{"negative y", Pos(0, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}
}

func TestDirectionDelta(t *testing.T) {
	start := Pos(5, 5)

	tests := []struct {
		dir      Direction
		expected Position
	}{
		{DirUp, Pos(5, 4)},
		{DirDown, Pos(5, 6)},
		{DirLeft, Pos(4, 5)},
		{DirRight, Pos(6, 5)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := start.Step(tc.dir); got != tc.expected {
				t.Errorf("Step(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := [][2]Direction{
		{DirUp, DirDown},
		{DirLeft, DirRight},
	}
	for _, p := range pairs {
		if !p[0].IsOpposite(p[1]) || !p[1].IsOpposite(p[0]) {
			t.Errorf("%v and %v should be opposite", p[0], p[1])
		}
	}

	if DirUp.IsOpposite(DirLeft) {
		t.Error("up and left should not be opposite")
	}
	if DirRight.IsOpposite(DirRight) {
		t.Error("a direction is not its own opposite")
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, ok := ParseDirection(d.String())
		if !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v, expected %v", d.String(), got, ok, d)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection should reject unknown names")
	}
}

func TestGridAt(t *testing.T) {
	g := Grid{W: 4, H: 3}

	if g.Cells() != 12 {
		t.Errorf("Cells() = %d, expected 12", g.Cells())
	}
	if got := g.At(0); got != Pos(0, 0) {
		t.Errorf("At(0) = %v, expected (0,0)", got)
	}
	if got := g.At(5); got != Pos(1, 1) {
		t.Errorf("At(5) = %v, expected (1,1)", got)
	}
	if got := g.At(11); got != Pos(3, 2) {
		t.Errorf("At(11) = %v, expected (3,2)", got)
	}
	if got := g.Center(); got != Pos(2, 1) {
		t.Errorf("Center() = %v, expected (2,1)", got)
	}
}

func TestManhattan(t *testing.T) {
	if d := Pos(1, 1).Manhattan(Pos(4, -3)); d != 7 {
		t.Errorf("Manhattan = %d, expected 7", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
