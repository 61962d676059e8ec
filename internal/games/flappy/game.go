// Package flappy implements a Flappy Bird-style game.
// The bird falls under gravity and flaps upward; pipes scroll in from the
// right and any contact ends the attempt.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

// Minimum playable screen size
const (
	MinWidth  = 40
	MinHeight = 24
)

// Visual characters for rendering
const (
	PipeChar = '█'
)

// Bird sprites, two rows each
var (
	spriteFalling = [2]string{`\\\`, `<\\\=Q`}
	spriteRising  = [2]string{`<///=Q`, `///`}
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the path to a custom config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Bird is the player's vertical motion state. Y grows downward.
type Bird struct {
	Y   float64
	Vel float64
	Acc float64
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	course     *Course
	bird       Bird

	attempts  int
	flaps     int
	bestFlaps int

	tick     int
	tickRate int
	screenW  int
	screenH  int

	crashed  bool
	paused   bool
	tooSmall bool
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset loads the config and starts the first attempt. Attempt and best
// counters start over.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	fc, _, err := config.LoadFlappy(configPath)
	if err != nil {
		fc = config.DefaultFlappyConfig()
	}
	config.ApplyFlappyPreset(&fc, difficultyPreset)
	g.cfg = fc
	g.difficulty = config.NewDifficultyManager(fc.Difficulty)

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	g.tooSmall = cfg.ScreenW < MinWidth || cfg.ScreenH < MinHeight
	g.course = NewCourse(cfg.Seed, cfg.ScreenW, cfg.ScreenH, fc.Obstacles)

	g.attempts = 0
	g.bestFlaps = 0
	g.tick = 0
	g.paused = false
	g.newAttempt()
}

// newAttempt puts the bird back in the middle of an empty course.
func (g *Game) newAttempt() {
	g.crashed = false
	g.course.Reset()
	g.bird = Bird{Y: float64(g.screenH) / 2}
	g.flaps = 0
	g.attempts++
}

// Step advances the simulation by the elapsed frame time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.crashed {
		if in.Has(core.ActionJump) || in.Has(core.ActionRestart) {
			g.newAttempt()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	dt := in.Seconds(g.tickRate)
	gravity := g.cfg.Physics.Gravity

	// A flap only registers once the bird has started falling again
	if in.Has(core.ActionJump) && g.bird.Vel >= gravity/10 {
		g.bird.Acc = 0
		g.bird.Vel = -gravity / 4
		g.flaps++
		g.bestFlaps = max(g.bestFlaps, g.flaps)
	} else {
		g.bird.Acc += gravity * dt
	}
	g.bird.Acc = min(g.bird.Acc, gravity)
	g.bird.Vel += g.bird.Acc * dt
	g.bird.Y += g.bird.Vel * dt

	speed := g.difficulty.Speed(g.cfg.Physics.ScrollSpeed, g.flaps, g.tick)
	g.course.Advance(speed * dt)

	g.crashed = g.collided()

	return core.StepResult{State: g.State()}
}

// birdX returns the bird's fixed column.
func (g *Game) birdX() int {
	return int(float64(g.screenW) * g.cfg.Bird.XRatio)
}

// gap returns the current opening between top and bottom pipes.
func (g *Game) gap() int {
	return g.difficulty.GapSize(g.cfg.Obstacles.GapSize, g.flaps, g.tick)
}

// collided reports whether the bird left the sky or touches a pipe. Probes
// sit at the tail and one past the beak on both sprite rows.
func (g *Game) collided() bool {
	margin := g.cfg.Bird.Margin
	if g.bird.Y < margin || g.bird.Y > float64(g.screenH)-margin {
		return true
	}

	x := g.birdX()
	top, bottom := int(g.bird.Y), int(g.bird.Y+1)
	pipes := g.course.Pipes(g.gap())
	for _, px := range []int{x, x + g.cfg.Bird.ProbeOffset} {
		if px < 0 || px >= g.screenW {
			continue
		}
		for _, p := range pipes {
			if p.Blocks(px, top) || p.Blocks(px, bottom) {
				return true
			}
		}
	}
	return false
}

// Render draws pipes, the bird and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	h := dst.Height()
	for _, p := range g.course.Pipes(g.gap()) {
		for x := p.X0; x < p.X1; x++ {
			for y := 0; y < p.TopEnd; y++ {
				dst.SetCell(x, y, PipeChar, core.ColorGreen)
			}
			for y := p.BottomStart; y < h; y++ {
				dst.SetCell(x, y, PipeChar, core.ColorGreen)
			}
		}
	}

	sprite := spriteRising
	if g.bird.Vel > 0 {
		sprite = spriteFalling
	}
	x, y := g.birdX(), int(g.bird.Y)
	dst.DrawTextColor(x, y, sprite[0], core.ColorBrightYellow)
	dst.DrawTextColor(x, y+1, sprite[1], core.ColorBrightYellow)

	hud := fmt.Sprintf("Attempt: %d  Score: %d  Best: %d", g.attempts, g.flaps, g.bestFlaps)
	dst.DrawText(1, 1, hud)

	switch {
	case g.crashed:
		dst.DrawMessage("Crashed!", "Space or R to fly again")
	case g.paused:
		dst.DrawMessage("Paused", "Press P to continue")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.flaps,
		GameOver: g.crashed,
		Paused:   g.paused,
	}
}

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      int
	Attempts  int
	Flaps     int
	BestFlaps int
	Bird      Bird
	Sections  []int
	Scroll    float64
	Crashed   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Attempts:  g.attempts,
		Flaps:     g.flaps,
		BestFlaps: g.bestFlaps,
		Bird:      g.bird,
		Sections:  g.course.Sections(),
		Scroll:    g.course.Scroll(),
		Crashed:   g.crashed,
	}
}
