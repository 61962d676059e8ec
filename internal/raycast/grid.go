// Package raycast implements a fixed-step ray caster over a 2D tile grid.
//
// For every screen column a ray is marched outward from the player in small
// fixed increments until it enters a wall cell or runs past the view depth.
// The hit distance then decides how tall the wall slice is drawn and which
// shade it gets, which is enough to fake a first-person 3D view in a
// character terminal.
package raycast

import (
	"errors"
	"fmt"
	"strings"
)

// Cell is a single tile of the map.
type Cell uint8

const (
	Open Cell = iota
	Wall
)

// Map characters accepted by ParseGrid.
const (
	WallChar = '#'
	OpenChar = '.'
)

var (
	// ErrEmptyGrid is returned when a grid has no rows or no columns.
	ErrEmptyGrid = errors.New("raycast: empty grid")
	// ErrNotRectangular is returned when grid rows differ in length.
	ErrNotRectangular = errors.New("raycast: grid rows differ in length")
	// ErrBadCell is returned for characters other than '#' and '.'.
	ErrBadCell = errors.New("raycast: unknown map character")
)

// Grid is an immutable rectangular tile map stored in row-major order:
// index = y*W + x.
type Grid struct {
	w, h  int
	cells []Cell
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (open) characters.
// Row 0 is y = 0.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(rows[0])
	g := &Grid{w: w, h: len(rows), cells: make([]Cell, 0, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d columns, expected %d: %w", y, len(row), w, ErrNotRectangular)
		}
		for x := range len(row) {
			switch row[x] {
			case WallChar:
				g.cells = append(g.cells, Wall)
			case OpenChar:
				g.cells = append(g.cells, Open)
			default:
				return nil, fmt.Errorf("%q at (%d, %d): %w", row[x], x, y, ErrBadCell)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on error. Intended for
// literal maps in tests and defaults.
func MustParseGrid(rows ...string) *Grid {
	g, err := ParseGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Bordered returns a w×h grid with a one-cell wall border and an open interior.
func Bordered(w, h int) *Grid {
	rows := make([]string, h)
	for y := range h {
		if y == 0 || y == h-1 {
			rows[y] = strings.Repeat(string(WallChar), w)
			continue
		}
		rows[y] = string(WallChar) + strings.Repeat(string(OpenChar), max(w-2, 0)) + string(WallChar)
	}
	return MustParseGrid(rows...)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// At returns the cell at (x, y). The bool is false when the coordinates are
// outside the grid, in which case the cell is meaningless.
func (g *Grid) At(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Open, false
	}
	return g.cells[y*g.w+x], true
}

// IsWall reports whether (x, y) blocks movement. Anything outside the grid
// counts as wall.
func (g *Grid) IsWall(x, y int) bool {
	c, ok := g.At(x, y)
	return !ok || c == Wall
}

// Rows renders the grid back into its text form.
func (g *Grid) Rows() []string {
	rows := make([]string, g.h)
	var sb strings.Builder
	for y := range g.h {
		sb.Reset()
		for x := range g.w {
			if g.cells[y*g.w+x] == Wall {
				sb.WriteByte(WallChar)
			} else {
				sb.WriteByte(OpenChar)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
