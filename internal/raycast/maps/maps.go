// Package maps loads ray-caster maps from YAML files.
//
// A map file names the grid rows, where the player spawns, and an id used
// to pick it from the command line. A few maps are embedded in the binary;
// more can be loaded from a directory.
package maps

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/weekend-arcade/internal/raycast"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultID is the map used when none is selected.
const DefaultID = "arena"

var (
	// ErrNotFound is returned when no map has the requested id.
	ErrNotFound = errors.New("maps: map not found")
	// ErrBadSpawn is returned when the spawn point is outside the grid or on a wall.
	ErrBadSpawn = errors.New("maps: spawn is not on an open cell")
	// ErrTooSmall is returned for grids smaller than 3x3.
	ErrTooSmall = errors.New("maps: grid smaller than 3x3")
)

// Map is a playable ray-caster level.
type Map struct {
	ID          string
	Name        string
	Description string
	Spawn       raycast.Pose
	Grid        *raycast.Grid
	FilePath    string // Empty for embedded maps
}

// yamlMap is the on-disk layout of a map file.
type yamlMap struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Spawn       yamlSpawn `yaml:"spawn"`
	Rows        []string  `yaml:"rows"`
}

type yamlSpawn struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Angle float64 `yaml:"angle"`
}

// Parse decodes and validates a YAML map.
func Parse(data []byte) (Map, error) {
	var ym yamlMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	grid, err := raycast.ParseGrid(ym.Rows)
	if err != nil {
		return Map{}, err
	}

	m := Map{
		ID:          ym.ID,
		Name:        ym.Name,
		Description: ym.Description,
		Spawn:       raycast.Pose{X: ym.Spawn.X, Y: ym.Spawn.Y, Angle: ym.Spawn.Angle},
		Grid:        grid,
	}
	if m.Name == "" {
		m.Name = m.ID
	}
	if err := m.Validate(); err != nil {
		return Map{}, err
	}
	return m, nil
}

// Validate checks the grid size and that the spawn lies strictly inside the
// grid on an open cell.
func (m Map) Validate() error {
	if m.ID == "" {
		return errors.New("maps: missing id")
	}
	w, h := m.Grid.Width(), m.Grid.Height()
	if w < 3 || h < 3 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrTooSmall)
	}
	s := m.Spawn
	if s.X <= 0 || s.Y <= 0 || s.X >= float64(w) || s.Y >= float64(h) {
		return fmt.Errorf("spawn (%.2f, %.2f) outside %dx%d grid: %w", s.X, s.Y, w, h, ErrBadSpawn)
	}
	if m.Grid.IsWall(s.Cell()) {
		return fmt.Errorf("spawn (%.2f, %.2f) is a wall: %w", s.X, s.Y, ErrBadSpawn)
	}
	return nil
}

// Builtin returns the embedded maps sorted by id.
func Builtin() []Map {
	var out []Map
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(fmt.Sprintf("maps: reading embedded maps: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("maps: reading %s: %v", e.Name(), err))
		}
		m, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("maps: embedded map %s is invalid: %v", e.Name(), err))
		}
		out = append(out, m)
	}
	sortByID(out)
	return out
}

// Find returns the map with the given id from the list.
func Find(list []Map, id string) (Map, error) {
	for _, m := range list {
		if m.ID == id {
			return m, nil
		}
	}
	return Map{}, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// Loader loads map files from a directory tree.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// LoadAll walks the root directory and loads every .yaml or .yml file.
// Invalid files are reported in the returned error slice and skipped.
// Maps are sorted by id.
func (l *Loader) LoadAll() ([]Map, []error, error) {
	var (
		out     []Map
		skipped []error
	)

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMapFile(path) {
			return nil
		}
		m, err := l.LoadFile(path)
		if err != nil {
			skipped = append(skipped, err)
			return nil
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, skipped, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sortByID(out)
	return out, skipped, nil
}

// LoadFile loads a single map file.
func (l *Loader) LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Map{}, fmt.Errorf("reading map %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return Map{}, fmt.Errorf("parsing map %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// Merge overlays extra maps on base. A map in extra replaces a base map with
// the same id. The result is sorted by id.
func Merge(base, extra []Map) []Map {
	byID := make(map[string]Map, len(base)+len(extra))
	for _, m := range base {
		byID[m.ID] = m
	}
	for _, m := range extra {
		byID[m.ID] = m
	}
	out := make([]Map, 0, len(byID))
	for _, m := range byID {
		out = append(out, m)
	}
	sortByID(out)
	return out
}

func isMapFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func sortByID(list []Map) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
}
