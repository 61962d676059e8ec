package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - move forward / steer up
	ActionDown             // S, Down arrow - move back / steer down
	ActionLeft             // A, Left arrow - turn left / steer left
	ActionRight            // D, Right arrow - turn right / steer right
	ActionJump             // Space - primary action (flap)
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game
	ActionPause            // P, Escape - pause/unpause game
	ActionToggleMap        // M - show or hide the minimap
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionToggleMap:
		return "ToggleMap"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions holds actions pressed since the previous tick (edge triggered).
	Actions map[Action]bool

	// Held holds actions whose key is still considered down. Terminals do not
	// report key releases, so the platform derives this from key repeats.
	Held map[Action]bool

	// Elapsed is the wall time since the previous tick. Zero means the game
	// should assume one fixed tick (1 / TickRate).
	Elapsed time.Duration
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// IsHeld returns true if the action is held or was triggered this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Seconds returns the frame duration in seconds, falling back to one tick
// at the given rate when no elapsed time was measured.
func (f InputFrame) Seconds(tickRate int) float64 {
	if f.Elapsed > 0 {
		return f.Elapsed.Seconds()
	}
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return 1.0 / float64(tickRate)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Held)
	f.Elapsed = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Elapsed = f.Elapsed
	return clone
}
