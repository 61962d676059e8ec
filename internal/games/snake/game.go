// Package snake implements the classic Snake game on a square board.
// The snake moves on a fixed clock, grows by eating food and stops when it
// leaves the board or bites its own tail.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// delta returns the cell offset of one move.
func (d Direction) delta() Point {
	switch d {
	case DirDown:
		return Point{Y: 1}
	case DirLeft:
		return Point{X: -1}
	case DirUp:
		return Point{Y: -1}
	default:
		return Point{X: 1}
	}
}

// Point represents a board cell.
type Point struct {
	X, Y int
}

// Each board cell is drawn two columns wide to look square in a terminal
const cellWidth = 2

// Package-level variables for config/difficulty set via CLI
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the path to a custom config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Snake game.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	moveTimer  float64 // Seconds since the last move
	tickRate   int

	score     int
	lastScore int // Score of the run that just ended

	// Snake state
	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move
	food      Point

	// Screen layout
	screenW int
	screenH int
	boardX  int // Screen column of the board's left border
	boardY  int // Screen row of the board's top border

	// Game state flags
	running  bool
	crashed  bool
	paused   bool
	tooSmall bool
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads the config and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	sc, _, err := config.LoadSnake(configPath)
	if err != nil {
		sc = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&sc, difficultyPreset)
	if sc.Board.Cells < 4 {
		sc.Board.Cells = config.DefaultSnakeConfig().Board.Cells
	}
	g.cfg = sc
	g.difficulty = config.NewDifficultyManager(sc.Difficulty)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickRate = cfg.TickRate
	g.score = 0
	g.lastScore = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	n := sc.Board.Cells
	boardW, boardH := n*cellWidth+2, n+2
	g.tooSmall = cfg.ScreenW < boardW || cfg.ScreenH < boardH+2
	g.boardX = (cfg.ScreenW - boardW) / 2
	g.boardY = 1 // Title row above

	g.initSnake()
	g.spawnFood()
	g.running = true
	g.crashed = false
}

// initSnake lays the body out leftward from the start cell, heading right.
func (g *Game) initSnake() {
	b := g.cfg.Board
	length := max(1, b.Length)
	g.snake = make([]Point, 0, length)
	for i := range length {
		g.snake = append(g.snake, Point{X: b.StartX - i, Y: b.StartY})
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
	g.moveTimer = 0
}

// spawnFood places food on a random cell not covered by the snake.
func (g *Game) spawnFood() {
	n := g.cfg.Board.Cells
	var emptyCells []Point
	for y := range n {
		for x := range n {
			p := Point{X: x, Y: y}
			if !g.isSnakeAt(p) {
				emptyCells = append(emptyCells, p)
			}
		}
	}

	if len(emptyCells) == 0 {
		// Board is full
		g.food = Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p Point) bool {
	for _, seg := range g.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Step advances the game by the elapsed frame time.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.score = 0
		g.initSnake()
		g.spawnFood()
		g.running = true
		g.crashed = false
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.crashed {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	g.moveTimer += input.Seconds(g.tickRate)
	interval := g.interval()
	if g.moveTimer >= interval {
		g.moveTimer -= interval
		// Never queue more than one move after a stall
		g.moveTimer = min(g.moveTimer, interval)
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// interval returns the seconds between moves at the current difficulty.
func (g *Game) interval() float64 {
	base := g.cfg.Movement.Interval
	if base <= 0 {
		base = config.DefaultSnakeConfig().Movement.Interval
	}
	return g.difficulty.Interval(base, g.score, int(g.tick))
}

// processInput buffers a direction change. Reversing onto the neck is
// ignored; any accepted direction key also resumes a stopped snake.
func (g *Game) processInput(input core.InputFrame) {
	var (
		newDir Direction
		ok     bool
	)
	switch {
	case input.Has(core.ActionUp):
		newDir, ok = DirUp, true
	case input.Has(core.ActionDown):
		newDir, ok = DirDown, true
	case input.Has(core.ActionLeft):
		newDir, ok = DirLeft, true
	case input.Has(core.ActionRight):
		newDir, ok = DirRight, true
	}
	if !ok || newDir == g.direction.Opposite() {
		return
	}

	g.nextDir = newDir
	if !g.running {
		g.running = true
		g.crashed = false
		g.moveTimer = 0
	}
}

// moveSnake moves the snake one cell, then checks food, edges and tail.
func (g *Game) moveSnake() {
	g.direction = g.nextDir
	d := g.direction.delta()
	head := g.snake[0]
	newHead := Point{X: head.X + d.X, Y: head.Y + d.Y}

	g.snake = append([]Point{newHead}, g.snake...)
	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if newHead == g.food {
		g.growing = true
		g.score++
		g.spawnFood()
	}

	n := g.cfg.Board.Cells
	if newHead.X < 0 || newHead.X >= n || newHead.Y < 0 || newHead.Y >= n {
		g.crash()
		return
	}
	for _, seg := range g.snake[1:] {
		if seg == newHead {
			g.crash()
			return
		}
	}
}

// crash keeps the final score for display, then puts a fresh snake on the
// board and waits for a direction key.
func (g *Game) crash() {
	g.lastScore = g.score
	g.score = 0
	g.initSnake()
	g.spawnFood()
	g.running = false
	g.crashed = true
}

// Render draws the board, snake, food and score.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		n := g.cfg.Board.Cells
		dst.DrawMessage("Window too small", fmt.Sprintf("Need %dx%d", n*cellWidth+2, n+4))
		return
	}

	n := g.cfg.Board.Cells
	dst.DrawText(g.boardX, 0, "Snake")
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, n*cellWidth+2, n+2))

	if g.food.X >= 0 {
		g.drawCell(dst, g.food, "<>", core.ColorBrightRed)
	}
	for i, seg := range g.snake {
		if i == 0 {
			g.drawCell(dst, seg, "██", core.ColorBrightGreen)
		} else {
			g.drawCell(dst, seg, "▓▓", core.ColorGreen)
		}
	}

	dst.DrawText(g.boardX, g.boardY+n+2, fmt.Sprintf("Score: %d", g.score))

	switch {
	case g.crashed:
		dst.DrawMessage("Game Over", fmt.Sprintf("Score: %d  Arrows to play again", g.lastScore))
	case g.paused:
		dst.DrawMessage("Paused", "Press P to continue")
	}
}

// drawCell draws a two-column board cell inside the border.
func (g *Game) drawCell(dst *core.Screen, p Point, glyph string, c core.Color) {
	dst.DrawTextColor(g.boardX+1+p.X*cellWidth, g.boardY+1+p.Y, glyph, c)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.crashed,
		Paused:   g.paused,
	}
}
