package raycast

import (
	"math"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// Default movement rates, in cells and radians per second.
const (
	DefaultMoveSpeed = 5.0
	DefaultTurnSpeed = 0.8
)

// Pose is the player's position in grid coordinates and facing angle.
// Angle 0 looks down the +Y axis; positive angles turn toward +X.
type Pose struct {
	X, Y  float64
	Angle float64
}

// Cell returns the grid cell containing the pose.
func (p Pose) Cell() (int, int) {
	return core.Floor(p.X), core.Floor(p.Y)
}

// Controls is the movement input for one update.
type Controls struct {
	Forward   bool
	Back      bool
	TurnLeft  bool
	TurnRight bool
}

// Mover applies controls to a pose with wall collision.
type Mover struct {
	MoveSpeed float64
	TurnSpeed float64
}

// NewMover returns a mover with the default speeds.
func NewMover() Mover {
	return Mover{MoveSpeed: DefaultMoveSpeed, TurnSpeed: DefaultTurnSpeed}
}

// Update turns and moves the pose for the elapsed seconds. A step that would
// end inside a wall cell is discarded entirely: the position is restored to
// exactly what it was before the step, with no sliding along the wall.
// Forward and back are resolved one after the other.
func (m Mover) Update(p *Pose, g *Grid, c Controls, elapsed float64) {
	if c.TurnLeft {
		p.Angle -= m.TurnSpeed * elapsed
	}
	if c.TurnRight {
		p.Angle += m.TurnSpeed * elapsed
	}

	dist := m.MoveSpeed * elapsed
	if c.Forward {
		m.step(p, g, dist)
	}
	if c.Back {
		m.step(p, g, -dist)
	}
}

func (m Mover) step(p *Pose, g *Grid, dist float64) {
	prevX, prevY := p.X, p.Y
	p.X += math.Sin(p.Angle) * dist
	p.Y += math.Cos(p.Angle) * dist
	if g.IsWall(p.Cell()) {
		p.X, p.Y = prevX, prevY
	}
}
