package fps

import (
	"fmt"
	"math"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// renderStats writes position, heading and frame rate on the top row.
func (g *Game) renderStats(dst *core.Screen) {
	line := fmt.Sprintf("X=%5.2f Y=%5.2f A=%5.2f FPS=%5.1f  %s",
		g.pose.X, g.pose.Y, core.WrapAngle(g.pose.Angle), g.fps, g.level.Name)
	dst.DrawHLine(0, 0, dst.Width(), ' ')
	dst.DrawTextColor(0, 0, line, core.ColorBrightWhite)
}

// renderMinimap draws the grid below the stats row with the player arrow.
func (g *Game) renderMinimap(dst *core.Screen) {
	top := 0
	if g.showStats {
		top = 1
	}
	for y, row := range g.level.Grid.Rows() {
		dst.DrawTextColor(0, top+y, row, core.ColorGray)
	}
	px, py := g.pose.Cell()
	dst.SetCell(px, top+py, Arrow(g.pose.Angle), core.ColorBrightYellow)
}

// Arrow returns the glyph pointing closest to the heading. Angle 0 faces +Y,
// which is down on the map.
func Arrow(angle float64) rune {
	dx, dy := math.Sin(angle), math.Cos(angle)
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return '>'
		}
		return '<'
	}
	if dy > 0 {
		return 'v'
	}
	return '^'
}
