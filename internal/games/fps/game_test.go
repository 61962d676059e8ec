package fps

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
)

// newTestGame isolates the game from user and working-directory configs.
func newTestGame(t *testing.T, w, h int) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() {
		SetMap("")
		SetConfigPath("")
	})

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60, Seed: 1})
	return g
}

func tickFrame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	in.Elapsed = time.Second / 60
	return in
}

func TestResetSpawnsOnDefaultMap(t *testing.T) {
	g := newTestGame(t, 80, 24)

	if g.ID() != "fps" || g.Title() != "Console FPS" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if g.Map().ID != maps.DefaultID {
		t.Errorf("map = %q, expected %q", g.Map().ID, maps.DefaultID)
	}
	p := g.Pose()
	if p.X != 8 || p.Y != 8 || p.Angle != 0 {
		t.Errorf("spawn pose = %+v, expected (8, 8, 0)", p)
	}
	if err := g.LoadError(); err != nil {
		t.Errorf("unexpected load error: %v", err)
	}
}

func TestForwardMovesAlongHeading(t *testing.T) {
	g := newTestGame(t, 80, 24)

	for range 60 {
		g.Step(tickFrame(core.ActionUp))
	}

	p := g.Pose()
	if math.Abs(p.Y-13) > 1e-6 || p.X != 8 {
		t.Errorf("after 1s forward pose = %+v, expected (8, 13)", p)
	}
}

func TestTurnUsesElapsed(t *testing.T) {
	g := newTestGame(t, 80, 24)

	in := tickFrame(core.ActionRight)
	in.Elapsed = 500 * time.Millisecond
	g.Step(in)

	if got := g.Pose().Angle; math.Abs(got-0.4) > 1e-9 {
		t.Errorf("angle after 0.5s right turn = %v, expected 0.4", got)
	}

	// No measured time falls back to one tick at TickRate
	in = core.NewInputFrame()
	in.Hold(core.ActionLeft)
	g.Step(in)
	if got := g.Pose().Angle; math.Abs(got-(0.4-0.8/60)) > 1e-9 {
		t.Errorf("angle after fallback tick = %v", got)
	}
}

func TestWalkingIntoWallStops(t *testing.T) {
	g := newTestGame(t, 80, 24)

	for range 600 {
		g.Step(tickFrame(core.ActionUp))
		p := g.Pose()
		if g.Map().Grid.IsWall(p.Cell()) {
			t.Fatalf("player entered a wall at %+v", p)
		}
	}
	if p := g.Pose(); p.Y < 14.5 || p.Y >= 15 {
		t.Errorf("player should stop just short of the wall, got y=%v", p.Y)
	}
}

func TestToggleMinimap(t *testing.T) {
	g := newTestGame(t, 80, 24)
	if !g.showMap {
		t.Fatal("minimap should be on by default")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionToggleMap)
	g.Step(in)
	if g.Snapshot().Minimap {
		t.Error("M should hide the minimap")
	}
	g.Step(in)
	if !g.Snapshot().Minimap {
		t.Error("second M should show the minimap again")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := core.NewScreen(80, 24)
	g.Step(tickFrame())
	g.Render(screen)

	if row := screen.Row(0); !strings.HasPrefix(row, "X= 8.00 Y= 8.00 A= 0.00") {
		t.Errorf("stats row = %q", row)
	}
	// Stats take row 0, so map row y is drawn at y+1
	if got := screen.GetCell(8, 9).Rune; got != 'v' {
		t.Errorf("player arrow = %q, expected 'v'", got)
	}
	if got := screen.GetCell(0, 1).Rune; got != '#' {
		t.Errorf("minimap corner = %q, expected '#'", got)
	}
}

func TestHideHUD(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.HideHUD()
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); strings.Contains(row, "X=") {
		t.Errorf("stats still drawn: %q", row)
	}
	if snap := g.Snapshot(); snap.Minimap {
		t.Error("minimap should be hidden")
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := newTestGame(t, 80, 24)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("expected paused")
	}

	before := g.Pose()
	g.Step(tickFrame(core.ActionUp))
	if g.Pose() != before {
		t.Error("paused game should not move")
	}
}

func TestRestartReturnsToSpawn(t *testing.T) {
	g := newTestGame(t, 80, 24)
	for range 30 {
		g.Step(tickFrame(core.ActionUp, core.ActionRight))
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)
	if g.Pose() != g.Map().Spawn {
		t.Errorf("restart pose = %+v, expected spawn %+v", g.Pose(), g.Map().Spawn)
	}
}

func TestTooSmall(t *testing.T) {
	g := newTestGame(t, 19, 7)
	screen := core.NewScreen(19, 7)

	g.Step(tickFrame(core.ActionUp))
	if g.Pose().Y != 8 {
		t.Error("game should not advance while the window is too small")
	}

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected too-small overlay, got:\n%s", screen.String())
	}
}

func TestSetMap(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Cleanup(func() { SetMap("") })

	SetMap("maze")
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.Map().ID != "maze" {
		t.Errorf("map = %q, expected maze", g.Map().ID)
	}

	SetMap("nowhere")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.Map().ID != maps.DefaultID {
		t.Errorf("unknown map should fall back to %q, got %q", maps.DefaultID, g.Map().ID)
	}
	if !errors.Is(g.LoadError(), maps.ErrNotFound) {
		t.Errorf("LoadError = %v, expected ErrNotFound", g.LoadError())
	}
}

func TestCustomConfigAndMapDir(t *testing.T) {
	dir := t.TempDir()
	mapDir := filepath.Join(dir, "maps")
	if err := os.MkdirAll(mapDir, 0o755); err != nil {
		t.Fatal(err)
	}
	room := "id: closet\nspawn: {x: 1.5, y: 1.5}\nrows: [\"###\", \"#.#\", \"###\"]\n"
	if err := os.WriteFile(filepath.Join(mapDir, "closet.yaml"), []byte(room), 0o600); err != nil {
		t.Fatal(err)
	}
	cfgFile := filepath.Join(dir, "raycast.yaml")
	cfgData := "map:\n  id: closet\n  dir: " + mapDir + "\nhud:\n  minimap: false\n"
	if err := os.WriteFile(cfgFile, []byte(cfgData), 0o600); err != nil {
		t.Fatal(err)
	}

	SetConfigPath(cfgFile)
	g := newTestGame(t, 80, 24)

	if g.Map().ID != "closet" {
		t.Errorf("map = %q, expected closet", g.Map().ID)
	}
	if g.showMap {
		t.Error("config should have disabled the minimap")
	}
	if !g.showStats {
		t.Error("stats should keep their default")
	}
}

func TestMapDirErrorsAreReported(t *testing.T) {
	dir := t.TempDir()
	mapDir := filepath.Join(dir, "maps")
	if err := os.MkdirAll(mapDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(mapDir, "broken.yaml"), []byte("id: broken\nrows: [\"#\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		dir     string
		missing bool
	}{
		{"missing dir", filepath.Join(dir, "nowhere"), true},
		{"broken file", mapDir, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfgFile := filepath.Join(t.TempDir(), "raycast.yaml")
			if err := os.WriteFile(cfgFile, []byte("map:\n  dir: "+tc.dir+"\n"), 0o600); err != nil {
				t.Fatal(err)
			}

			SetConfigPath(cfgFile)
			g := newTestGame(t, 80, 24)

			if g.Map().ID != maps.DefaultID {
				t.Errorf("map = %q, expected %q", g.Map().ID, maps.DefaultID)
			}
			if g.Pose() != g.Map().Spawn {
				t.Errorf("pose = %+v, expected spawn %+v", g.Pose(), g.Map().Spawn)
			}
			err := g.LoadError()
			if err == nil {
				t.Fatal("expected the map dir error to be reported")
			}
			if tc.missing && !errors.Is(err, os.ErrNotExist) {
				t.Errorf("LoadError = %v, expected a not-exist error", err)
			}
		})
	}
}

func TestSetPose(t *testing.T) {
	g := newTestGame(t, 80, 24)

	if err := g.SetPose(g.Map().Spawn); err != nil {
		t.Errorf("SetPose on spawn failed: %v", err)
	}
	if err := g.SetPose(g.Pose()); err != nil {
		t.Errorf("SetPose on open cell failed: %v", err)
	}
	wall := g.Pose()
	wall.X = 0.5
	if err := g.SetPose(wall); err == nil {
		t.Error("SetPose into a wall should fail")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t, 80, 24)
		for i := range 300 {
			switch {
			case i%7 == 0:
				g.Step(tickFrame(core.ActionLeft, core.ActionUp))
			case i%3 == 0:
				g.Step(tickFrame(core.ActionDown))
			default:
				g.Step(tickFrame(core.ActionUp))
			}
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same inputs produced different states: %+v vs %+v", a, b)
	}
}

func TestArrow(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, 'v'},
		{math.Pi / 2, '>'},
		{math.Pi, '^'},
		{-math.Pi / 2, '<'},
		{math.Pi / 8, 'v'},
	}
	for _, tc := range tests {
		if got := Arrow(tc.angle); got != tc.want {
			t.Errorf("Arrow(%v) = %q, expected %q", tc.angle, got, tc.want)
		}
	}
}
