// Package cube draws a spinning wireframe cube with terminal characters.
package cube

import (
	"fmt"
	"math"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

// Drawing characters
const (
	EdgeChar   = '*'
	VertexChar = '@'
)

// MaxSpeed caps the spin multiplier.
const MaxSpeed = 20.0

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the path to a custom config file.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the rotating cube demo.
type Game struct {
	cfg   config.CubeConfig
	cube  Cube
	rates Vec3 // Radians per second around each axis
	speed float64

	tick     uint64
	tickRate int
	screenW  int
	screenH  int
	paused   bool
}

// New creates a new cube demo.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("cube", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cube"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rotating Cube"
}

// Reset loads the config and puts the cube back in its starting orientation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	cc, _, err := config.LoadCube(configPath)
	if err != nil {
		cc = config.DefaultCubeConfig()
	}
	if cc.Size <= 0 {
		cc.Size = config.DefaultCubeConfig().Size
	}
	g.cfg = cc
	g.cube = NewCube(cc.Size)
	g.rates = RatesPerSecond(cc.Rotation)
	g.speed = 1
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
}

// RatesPerSecond converts per-frame spin rates to radians per second.
func RatesPerSecond(r config.CubeRotation) Vec3 {
	frame := float64(r.FrameMS) / 1000
	if frame <= 0 {
		frame = 0.03
	}
	return Vec3{r.X / frame, r.Y / frame, r.Z / frame}
}

// Step spins the cube by the elapsed time and handles speed keys.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.cube = NewCube(g.cfg.Size)
		g.speed = 1
	}
	if in.Has(core.ActionPause) || in.Has(core.ActionJump) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionUp) {
		g.speed = math.Min(MaxSpeed, g.speed+g.cfg.Rotation.Step)
	}
	if in.Has(core.ActionDown) {
		g.speed = math.Max(0, g.speed-g.cfg.Rotation.Step)
	}

	if !g.paused {
		k := in.Seconds(g.tickRate) * g.speed
		g.cube.Rotate(g.rates.X*k, g.rates.Y*k, g.rates.Z*k)
	}

	return core.StepResult{State: g.State()}
}

// projector maps model space onto the screen orthographically, centred, with
// x doubled because terminal cells are about twice as tall as wide.
type projector struct {
	cx, cy float64
	scale  float64
	center Vec3
}

func (g *Game) projector(w, h int) projector {
	// Leave the HUD row free and fit the cube's sweep sphere
	rows := float64(h-2) / 2
	cols := float64(w-1) / 4
	r := g.cube.Radius()
	scale := 1.0
	if r > 0 {
		scale = math.Max(0, math.Min(rows, cols)) / r
	}
	return projector{
		cx:     float64(w) / 2,
		cy:     1 + float64(h-1)/2,
		scale:  scale,
		center: g.cube.Center,
	}
}

func (p projector) project(v Vec3) (float64, float64) {
	d := v.Sub(p.center)
	return p.cx + 2*d.X*p.scale, p.cy + d.Y*p.scale
}

// plot writes a character at the nearest cell.
func plot(dst *core.Screen, x, y float64, r rune, c core.Color) {
	dst.SetCell(core.Floor(x+0.5), core.Floor(y+0.5), r, c)
}

// line plots points along the segment one cell apart.
func line(dst *core.Screen, x1, y1, x2, y2 float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	angle := math.Atan2(dy, dx)
	sin, cos := math.Sincos(angle)
	for i := 0.0; i < length; i++ {
		plot(dst, x1+cos*i, y1+sin*i, EdgeChar, core.ColorCyan)
	}
}

// Render draws edges, then vertices on top, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	p := g.projector(dst.Width(), dst.Height())
	var pts [8][2]float64
	for i, v := range g.cube.Vertices {
		pts[i][0], pts[i][1] = p.project(v)
	}
	for _, e := range Edges {
		a, b := pts[e.A], pts[e.B]
		line(dst, a[0], a[1], b[0], b[1])
	}
	for _, pt := range pts {
		plot(dst, pt[0], pt[1], VertexChar, core.ColorBrightWhite)
	}

	hud := fmt.Sprintf("Speed x%.1f  Up/Down: speed  P: pause  R: reset", g.speed)
	dst.DrawText(0, 0, hud)
	if g.paused {
		dst.DrawTextColor(dst.Width()-len("PAUSED"), 0, "PAUSED", core.ColorYellow)
	}
}

// State returns the current game state. The demo has no score.
func (g *Game) State() core.GameState {
	return core.GameState{Paused: g.paused}
}

// Speed returns the spin multiplier.
func (g *Game) Speed() float64 {
	return g.speed
}

// Cube returns the current cube.
func (g *Game) Cube() Cube {
	return g.cube
}
