package raycast

import "github.com/vovakirdan/weekend-arcade/internal/core"

// FloorMode selects how ground rows are drawn.
type FloorMode int

const (
	// FloorGradient shades ground rows with FloorShade.
	FloorGradient FloorMode = iota
	// FloorBlank leaves ground rows empty. This is what the classic console
	// demo actually put on screen: it computed the gradient and then wrote a
	// space instead.
	FloorBlank
)

// ParseFloorMode converts a config value into a FloorMode.
// Unknown values fall back to FloorGradient.
func ParseFloorMode(s string) FloorMode {
	if s == "blank" {
		return FloorBlank
	}
	return FloorGradient
}

// String returns the config name of the mode.
func (m FloorMode) String() string {
	if m == FloorBlank {
		return "blank"
	}
	return "gradient"
}

// Renderer rasterizes a first-person view into a screen buffer.
type Renderer struct {
	Caster Caster
	Floor  FloorMode

	hits []Hit
}

// NewRenderer returns a renderer using the given caster.
func NewRenderer(c Caster) *Renderer {
	return &Renderer{Caster: c}
}

// Hits returns the per-column results of the last Render call.
func (r *Renderer) Hits() []Hit {
	return r.hits
}

// Render casts one ray per screen column and overwrites every cell of dst.
func (r *Renderer) Render(dst *core.Screen, g *Grid, pose Pose) {
	w, h := dst.Width(), dst.Height()
	r.hits = r.Caster.CastColumns(g, pose, w, r.hits)

	for x, hit := range r.hits {
		ceiling, floor := Band(hit.Distance, h)
		shade := ShadeFor(hit.Distance, r.Caster.Depth)

		for y := range h {
			switch {
			case y < ceiling:
				dst.SetCell(x, y, ' ', core.ColorDefault)
			case y <= floor:
				dst.SetCell(x, y, rune(shade), shade.Color())
			case r.Floor == FloorBlank:
				dst.SetCell(x, y, ' ', core.ColorDefault)
			default:
				dst.SetCell(x, y, FloorShade(y, h), core.ColorGreen)
			}
		}
	}
}
