package raycast

import (
	"math"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// Defaults match the classic console FPS setup: a 45 degree view cone,
// 16 cells of visibility and a tenth-of-a-cell march step.
const (
	DefaultFOV   = math.Pi / 4
	DefaultDepth = 16.0
	DefaultStep  = 0.1
)

// Hit is the result of casting a single ray.
//
// Escaped marks the open-boundary case the classic console demo counted as a
// wall hit at max depth. Here it stays a miss drawn as background, and the flag
// tells it apart from a plain depth cut-off.
type Hit struct {
	Distance float64 // Distance to the wall, or the caster depth when nothing was hit
	Hit      bool    // A wall cell stopped the ray
	Escaped  bool    // The ray left the grid before reaching depth
}

// Caster marches rays through a grid.
type Caster struct {
	FOV   float64 // Field of view in radians
	Depth float64 // Maximum view distance in cells
	Step  float64 // March increment in cells; larger steps can tunnel through thin walls
}

// NewCaster returns a caster with the default FOV, depth and step.
func NewCaster() Caster {
	return Caster{FOV: DefaultFOV, Depth: DefaultDepth, Step: DefaultStep}
}

// RayAngle returns the angle of the ray for a screen column. Rays are spread
// evenly across the view cone with column 0 on the left edge.
func (c Caster) RayAngle(pose Pose, column, columns int) float64 {
	return pose.Angle - c.FOV/2 + (float64(column)/float64(columns))*c.FOV
}

// Cast marches a ray from the pose position at the given angle.
//
// Each step tests the cell under the ray before the depth limit, so the march
// stops at the first of: the ray leaves the grid (no hit, distance = depth,
// Escaped set), the ray enters a wall cell (hit at the current distance), or
// the view depth is reached (no hit).
func (c Caster) Cast(g *Grid, pose Pose, angle float64) Hit {
	eyeX, eyeY := math.Sin(angle), math.Cos(angle)
	for i := 1; ; i++ {
		d := float64(i) * c.Step
		cell, ok := g.At(core.Floor(pose.X+eyeX*d), core.Floor(pose.Y+eyeY*d))
		if !ok {
			return Hit{Distance: c.Depth, Escaped: true}
		}
		if cell == Wall {
			return Hit{Distance: d, Hit: true}
		}
		if d >= c.Depth {
			return Hit{Distance: c.Depth}
		}
	}
}

// CastColumns casts one ray per column and stores the results in dst,
// growing it if needed. The slice is returned for reuse on the next frame.
func (c Caster) CastColumns(g *Grid, pose Pose, columns int, dst []Hit) []Hit {
	if cap(dst) < columns {
		dst = make([]Hit, columns)
	}
	dst = dst[:columns]
	for x := range columns {
		dst[x] = c.Cast(g, pose, c.RayAngle(pose, x, columns))
	}
	return dst
}
