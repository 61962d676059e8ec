package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

// loadErrorer is implemented by games that fall back to defaults when their
// config or assets fail to load.
type loadErrorer interface {
	LoadError() error
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keyMapper     *KeyMapper
	holds         *HoldTracker
	inputFrame    core.InputFrame
	gameState     core.GameState
	lastTick      time.Time
	now           func() time.Time
	logger        *log.Logger
	screenshotDir string
	quitting      bool
	back          bool // Left with Esc/B rather than quit
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.WithDefaults(time.Now())
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keyMapper:     NewKeyMapper(),
		holds:         NewHoldTracker(),
		inputFrame:    core.NewInputFrame(),
		now:           time.Now,
		logger:        logger.WithPrefix(game.ID()),
		screenshotDir: defaultScreenshotDir(),
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.reportLoadError()

	// Start the tick loop
	return tickCmd(m.config)
}

func (m Model) reportLoadError() {
	if le, ok := m.game.(loadErrorer); ok {
		if err := le.LoadError(); err != nil {
			m.logger.Warn("using defaults", "error", err)
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Error("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case action == core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	if Holdable(action) {
		m.holds.Press(action, m.now())
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}

	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Games lay out for the screen in Reset, so a new size restarts them,
	// finished or not
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick runs one simulation step with the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.inputFrame.Elapsed = elapsedSince(m.lastTick, now)
	m.lastTick = now
	m.holds.Apply(&m.inputFrame, now)

	result := m.game.Step(m.inputFrame)
	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Debug("game over", "score", result.State.Score)
	}
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config)
}

// saveScreenshot writes the current screen as plain text and returns the path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("creating screenshot dir: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a game. It reports whether the
// player left with Esc/B to go back to a menu rather than quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (goBack bool, err error) {
	model := NewModel(game, cfg, logger)
	model.logger.Info("session started", "tick_rate", model.config.TickRate, "seed", model.config.Seed)
	started := time.Now()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("running %s: %w", game.ID(), err)
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	m.logger.Info("session ended", "duration", time.Since(started).Round(time.Second), "score", m.gameState.Score)
	return m.back, nil
}
