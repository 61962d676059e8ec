// Package fps implements a first-person maze walk on top of the ray caster.
// The player turns and walks through a grid map while every screen column
// is drawn from one cast ray.
package fps

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/raycast"
	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

// Minimum playable screen size
const (
	MinWidth  = 20
	MinHeight = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// selectedMap stores the map id chosen via CLI or the map picker
var selectedMap string

// SetConfigPath sets the path to a custom raycast config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetMap selects the map used by the next Reset. Empty means the configured map.
func SetMap(id string) {
	selectedMap = id
}

// SelectedMap returns the map id set with SetMap.
func SelectedMap() string {
	return selectedMap
}

// Game implements the console FPS.
type Game struct {
	cfg      config.RaycastConfig
	level    maps.Map
	pose     raycast.Pose
	mover    raycast.Mover
	renderer *raycast.Renderer

	tick     uint64
	tickRate int
	fps      float64
	screenW  int
	screenH  int

	showMap   bool
	showStats bool
	paused    bool
	tooSmall  bool

	loadErr error
}

// New creates a new FPS game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("fps", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "fps"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Console FPS"
}

// Reset loads the config and map and puts the player on the spawn point.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rc, _, err := config.LoadRaycast(configPath)
	if err != nil {
		rc = config.DefaultRaycastConfig()
	}
	g.loadErr = err
	g.cfg = rc

	g.renderer = raycast.NewRenderer(casterFromConfig(rc.View))
	g.renderer.Floor = raycast.ParseFloorMode(rc.View.Floor)
	g.mover = moverFromConfig(rc.Movement)

	id := selectedMap
	if id == "" {
		id = rc.Map.ID
	}
	level, err := pickMap(rc.Map.Dir, id)
	g.loadErr = errors.Join(g.loadErr, err)
	g.level = level
	g.pose = level.Spawn

	g.tick = 0
	g.tickRate = cfg.TickRate
	g.fps = 0
	g.showMap = rc.HUD.Minimap
	g.showStats = rc.HUD.Stats
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < MinWidth || cfg.ScreenH < MinHeight
}

// pickMap finds id among the built-in maps and the maps in dir. An unknown id
// falls back to the default map. Files in dir that failed to load are joined
// into the returned error along with any lookup error.
func pickMap(dir, id string) (maps.Map, error) {
	list, skipped := Levels(dir)
	loadErr := errors.Join(skipped...)
	if id == "" {
		id = maps.DefaultID
	}
	m, err := maps.Find(list, id)
	if err == nil {
		return m, loadErr
	}
	fallback, ferr := maps.Find(list, maps.DefaultID)
	if ferr != nil {
		// Overridden default in dir was broken; the embedded one always parses
		fallback, _ = maps.Find(maps.Builtin(), maps.DefaultID)
	}
	return fallback, errors.Join(err, loadErr)
}

// Levels returns the built-in maps merged with the valid maps found in dir.
// Files that failed to load are returned as errors; a missing dir is one error.
func Levels(dir string) ([]maps.Map, []error) {
	list := maps.Builtin()
	if dir == "" {
		return list, nil
	}
	extra, skipped, err := maps.NewLoader(dir).LoadAll()
	if err != nil {
		return list, append(skipped, err)
	}
	return maps.Merge(list, extra), skipped
}

func casterFromConfig(v config.RaycastView) raycast.Caster {
	c := raycast.NewCaster()
	if v.FOVDegrees > 0 {
		c.FOV = v.FOVDegrees * math.Pi / 180
	}
	if v.Depth > 0 {
		c.Depth = v.Depth
	}
	if v.Step > 0 {
		c.Step = v.Step
	}
	return c
}

func moverFromConfig(m config.RaycastMovement) raycast.Mover {
	mv := raycast.NewMover()
	if m.MoveSpeed > 0 {
		mv.MoveSpeed = m.MoveSpeed
	}
	if m.TurnSpeed > 0 {
		mv.TurnSpeed = m.TurnSpeed
	}
	return mv
}

// Step turns and moves the player by the time elapsed since the last tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) {
		g.pose = g.level.Spawn
		g.paused = false
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionToggleMap) {
		g.showMap = !g.showMap
	}

	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := in.Seconds(g.tickRate)
	if dt > 0 {
		g.fps = 1.0 / dt
	}

	controls := raycast.Controls{
		Forward:   in.IsHeld(core.ActionUp),
		Back:      in.IsHeld(core.ActionDown),
		TurnLeft:  in.IsHeld(core.ActionLeft),
		TurnRight: in.IsHeld(core.ActionRight),
	}
	g.mover.Update(&g.pose, g.level.Grid, controls, dt)

	return core.StepResult{State: g.State()}
}

// Render draws the 3D view, then the HUD and minimap on top of it.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.Clear()
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
		return
	}

	g.renderer.Render(dst, g.level.Grid, g.pose)

	if g.showStats {
		g.renderStats(dst)
	}
	if g.showMap {
		g.renderMinimap(dst)
	}
	if g.paused {
		dst.DrawMessage("Paused", "Press P to continue")
	}
}

// State returns the current game state. The walk has no score and no end.
func (g *Game) State() core.GameState {
	return core.GameState{
		Paused: g.paused,
	}
}

// Pose returns the player's position and heading.
func (g *Game) Pose() raycast.Pose {
	return g.pose
}

// SetPose places the player. Poses inside a wall are rejected.
func (g *Game) SetPose(p raycast.Pose) error {
	if g.level.Grid == nil {
		return fmt.Errorf("fps: no map loaded")
	}
	if g.level.Grid.IsWall(p.Cell()) {
		return fmt.Errorf("fps: pose (%.2f, %.2f) is inside a wall", p.X, p.Y)
	}
	g.pose = p
	return nil
}

// Map returns the loaded map.
func (g *Game) Map() maps.Map {
	return g.level
}

// LoadError returns the config or map error hit by the last Reset, if any.
// The game still runs on defaults when this is set.
func (g *Game) LoadError() error {
	return g.loadErr
}

// HideHUD turns off the stats line and the minimap.
func (g *Game) HideHUD() {
	g.showStats = false
	g.showMap = false
}
