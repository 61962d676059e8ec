// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weekend-arcade/internal/core"
)

// MaxElapsed caps the time a single tick may report, so a stalled terminal
// does not teleport the player.
const MaxElapsed = 250 * time.Millisecond

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next TickMsg one tick interval from now.
func tickCmd(cfg core.RuntimeConfig) tea.Cmd {
	return tea.Tick(cfg.TickInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// elapsedSince returns the time between two ticks, capped at MaxElapsed.
// The first tick, with no previous time, reports zero.
func elapsedSince(prev, now time.Time) time.Duration {
	if prev.IsZero() || now.Before(prev) {
		return 0
	}
	return min(now.Sub(prev), MaxElapsed)
}
