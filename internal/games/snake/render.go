package snake

import (
	"fmt"
	"strings"

	"github.com/wovp/stonesnake/internal/core"
)

const (
	hudHeight = 1
	footer    = "arrows steer  space boost  p pause  q quit"
	energyBar = 10
)

// Color returns the display color for a food kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindGrow:
		return core.ColorBrightGreen
	case KindShrink:
		return core.ColorMagenta
	case KindSlow:
		return core.ColorBlue
	case KindFast:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// MinScreen returns the smallest screen that fits the playfield, HUD and footer.
func (g *Game) MinScreen() (w, h int) {
	cs := max(1, g.cfg.Grid.CellSize)
	return g.grid.W*cs + 2, g.grid.H + hudHeight + 3
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	g.renderHUD(dst)

	cs := max(1, g.cfg.Grid.CellSize)
	ox := (dst.Width() - minW) / 2
	oy := hudHeight
	dst.DrawBox(ox, oy, minW, g.grid.H+2, core.ColorGray)

	cell := func(p core.Position, r rune, c core.Color) {
		x, y := ox+1+p.X*cs, oy+1+p.Y
		for i := 0; i < cs; i++ {
			dst.SetCell(x+i, y, r, c)
		}
	}

	for _, s := range g.stones {
		cell(s, '#', core.ColorGray)
	}
	if w, ok := g.hazard.Warning(); ok {
		cell(w, '!', core.ColorBrightRed)
	}
	for _, f := range g.food {
		cell(f.Pos, f.Kind.Glyph(), f.Kind.Color())
	}

	bodyColor := core.ColorGreen
	if g.snake.Boosting() {
		bodyColor = core.ColorCyan
	}
	body := g.snake.Body()
	for i := len(body) - 1; i >= 0; i-- {
		if !g.grid.Contains(body[i]) {
			continue
		}
		if i == 0 {
			cell(body[i], '@', core.ColorBrightGreen)
		} else {
			cell(body[i], '█', bodyColor)
		}
	}

	dst.DrawTextColor(ox, oy+g.grid.H+2, footer, core.ColorGray)

	switch {
	case g.over:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score %d  -  R to restart", g.score))
	case g.State() == StateReady:
		renderOverlay(dst, "Stone Snake", "Press Enter to start")
	case !g.running:
		renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	filled := int(g.snake.Energy() / MaxEnergy * energyBar)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", energyBar-filled)

	boost := "ready"
	switch {
	case g.snake.Boosting():
		boost = "BOOST"
	case g.snake.OnCooldown():
		boost = "cooldown"
	case g.snake.Energy() < MaxEnergy:
		boost = "charging"
	}

	hud := fmt.Sprintf(" Score:%d Lv:%d %dms ", g.score, g.level, g.snake.CurrentSpeed().Milliseconds())
	dst.DrawText(0, 0, hud)
	x := len(hud)
	barColor := core.ColorYellow
	if filled == energyBar {
		barColor = core.ColorBrightYellow
	}
	dst.DrawTextColor(x, 0, bar, barColor)
	dst.DrawText(x+energyBar+1, 0, boost)
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	for y := boxY + 1; y < boxY+boxH-1; y++ {
		for x := boxX + 1; x < boxX+boxW-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
