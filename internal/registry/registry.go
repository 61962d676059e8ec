// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, so the CLI and menus can
// list and create them without importing each game by name.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the interface every arcade game implements.
// Games are pure simulation: no Bubble Tea, no terminal, no wall clock.
// The platform maps keys to actions, measures time and draws the screen.
type Game interface {
	// ID returns the short identifier used on the command line ("fps", "snake").
	ID() string

	// Title returns the name shown in menus ("Console FPS").
	Title() string

	// Reset (re)starts the game for the given screen size, tick rate and seed.
	// The platform calls it at start and whenever the terminal is resized.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. in.Elapsed carries the wall
	// time since the previous tick; zero means one tick at the configured rate.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst, overwriting every cell it owns.
	Render(dst *core.Screen)

	// State returns score, pause and game-over flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id. The title is read from one
// throwaway instance. Registering an empty id, a nil factory or an id twice
// panics, since all of these are programming errors in an init().
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Info returns the description of one game.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
