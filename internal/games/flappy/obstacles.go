package flappy

import (
	"math/rand"

	"github.com/vovakirdan/weekend-arcade/internal/config"
)

// Pipe is a pair of columns of blocked cells with a gap between them.
// Columns are [X0, X1); the top pipe covers rows [0, TopEnd) and the bottom
// pipe rows [BottomStart, screen height).
type Pipe struct {
	X0, X1      int
	TopEnd      int
	BottomStart int
}

// Blocks reports whether the pipe covers cell (x, y).
func (p Pipe) Blocks(x, y int) bool {
	if x < p.X0 || x >= p.X1 {
		return false
	}
	return y < p.TopEnd || y >= p.BottomStart
}

// Course is the scrolling queue of level sections. Each section holds one
// pipe height; zero means the section is empty.
type Course struct {
	rng      *rand.Rand
	cfg      config.FlappyObstacles
	sections []int
	width    float64 // Section width in columns
	scroll   float64 // Distance scrolled into the front section
	screenW  int
	screenH  int
}

// NewCourse creates a course for the given screen size.
func NewCourse(seed int64, screenW, screenH int, cfg config.FlappyObstacles) *Course {
	if cfg.Sections < 2 {
		cfg.Sections = 4
	}
	c := &Course{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
	c.Resize(screenW, screenH)
	c.Reset()
	return c
}

// Resize updates the screen size and section width.
func (c *Course) Resize(screenW, screenH int) {
	c.screenW = screenW
	c.screenH = screenH
	c.width = float64(screenW) / float64(c.cfg.Sections-1)
}

// Reset empties every section and rewinds the scroll.
func (c *Course) Reset() {
	c.sections = make([]int, c.cfg.Sections)
	c.scroll = 0
}

// Advance scrolls the level left by dist columns. Each time a full section
// has passed it is dropped and a new random one is queued at the back.
func (c *Course) Advance(dist float64) {
	if c.width <= 0 {
		return
	}
	c.scroll += dist
	for c.scroll > c.width {
		c.scroll -= c.width
		copy(c.sections, c.sections[1:])
		c.sections[len(c.sections)-1] = c.nextHeight()
	}
}

// nextHeight draws a pipe height in [0, H - margin). Short pipes are dropped
// so the section stays empty.
func (c *Course) nextHeight() int {
	span := c.screenH - c.cfg.HeightMargin
	if span <= 0 {
		return 0
	}
	h := c.rng.Intn(span)
	if h <= c.cfg.MinHeight {
		return 0
	}
	return h
}

// Pipes returns the pipes of all non-empty sections, using gap rows between
// the bottom and top pipe.
func (c *Course) Pipes(gap int) []Pipe {
	var out []Pipe
	for i, s := range c.sections {
		if s == 0 {
			continue
		}
		left := float64(i)*c.width - c.scroll
		out = append(out, Pipe{
			X0:          int(left + float64(c.cfg.PipeOffset)),
			X1:          int(left + float64(c.cfg.PipeOffset+c.cfg.PipeWidth)),
			TopEnd:      c.screenH - s - gap,
			BottomStart: c.screenH - s,
		})
	}
	return out
}

// Sections returns a copy of the section heights, front first.
func (c *Course) Sections() []int {
	out := make([]int, len(c.sections))
	copy(out, c.sections)
	return out
}

// Scroll returns the distance scrolled into the front section.
func (c *Course) Scroll() float64 {
	return c.scroll
}
