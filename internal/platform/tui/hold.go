package tui

import (
	"time"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// Default hold windows. Terminals repeat a held key only after an initial
// delay (usually 250-600ms), then every 30-50ms.
const (
	DefaultFirstHold  = 500 * time.Millisecond
	DefaultRepeatHold = 120 * time.Millisecond
)

type holdState struct {
	last      time.Time
	repeating bool
}

// HoldTracker emulates key-up events, which terminals never send. A key
// counts as held for First after its first press, and for Repeat after each
// auto-repeat once repeats have started.
type HoldTracker struct {
	First  time.Duration
	Repeat time.Duration

	keys map[core.Action]holdState
}

// NewHoldTracker creates a tracker with the default windows.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		First:  DefaultFirstHold,
		Repeat: DefaultRepeatHold,
		keys:   make(map[core.Action]holdState),
	}
}

func (h *HoldTracker) window(s holdState) time.Duration {
	if s.repeating {
		return h.Repeat
	}
	return h.First
}

// Press records a key event for the action at time now.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	s, ok := h.keys[a]
	s.repeating = ok && now.Sub(s.last) <= h.window(s)
	s.last = now
	h.keys[a] = s
}

// Apply marks every still-held action on the frame and forgets expired ones.
func (h *HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, s := range h.keys {
		if now.Sub(s.last) <= h.window(s) {
			frame.Hold(a)
		} else {
			delete(h.keys, a)
		}
	}
}

// Release forgets an action, as if its key went up.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.keys, a)
}

// Reset forgets all held keys.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
