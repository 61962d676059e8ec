package raycast

import "github.com/vovakirdan/weekend-arcade/internal/core"

// Shade is a wall density bucket chosen by distance.
type Shade rune

const (
	ShadeFull   Shade = '█'
	ShadeDark   Shade = '▓'
	ShadeMedium Shade = '▒'
	ShadeLight  Shade = '░'
	ShadeNone   Shade = ' '
)

// ShadeFor maps a hit distance to a shade. The nearest quarter of the depth
// is inclusive; the remaining thresholds are exclusive, so a distance of
// exactly depth is blank.
func ShadeFor(distance, depth float64) Shade {
	switch {
	case distance <= depth/4:
		return ShadeFull
	case distance < depth/3:
		return ShadeDark
	case distance < depth/2:
		return ShadeMedium
	case distance < depth:
		return ShadeLight
	default:
		return ShadeNone
	}
}

// Color returns the terminal color a shade is drawn with.
func (s Shade) Color() core.Color {
	switch s {
	case ShadeFull:
		return core.ColorBrightWhite
	case ShadeDark:
		return core.ColorWhite
	case ShadeMedium, ShadeLight:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// Band returns the first and last screen rows of the wall slice for a hit
// distance. Closer walls give taller slices. Rows before ceiling are sky,
// rows after floor are ground; both bounds may fall outside the screen.
func Band(distance float64, height int) (ceiling, floor int) {
	h := float64(height)
	ceiling = int(h/2 - h/distance)
	floor = height - ceiling
	return ceiling, floor
}

// FloorShade returns the ground character for a screen row below the horizon.
// Rows near the bottom of the screen are densest; the shading depends only on
// the row, not on any wall distance.
func FloorShade(row, height int) rune {
	half := float64(height) / 2
	b := 1 - (float64(row)-half)/half
	switch {
	case b < 0.25:
		return '#'
	case b < 0.5:
		return 'X'
	case b < 0.75:
		return '.'
	case b < 0.9:
		return '-'
	default:
		return ' '
	}
}
