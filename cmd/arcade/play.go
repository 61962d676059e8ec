package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/core"
	"github.com/vovakirdan/weekend-arcade/internal/games/cube"
	"github.com/vovakirdan/weekend-arcade/internal/games/flappy"
	"github.com/vovakirdan/weekend-arcade/internal/games/fps"
	"github.com/vovakirdan/weekend-arcade/internal/games/snake"
	"github.com/vovakirdan/weekend-arcade/internal/platform/tui"
	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

var (
	flagDifficulty string
	flagMap        string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S or Up/Down     - Move forward/back (fps), steer (snake), spin speed (cube)
  A/D or Left/Right  - Turn (fps), steer (snake)
  Space              - Flap (flappy)
  M                  - Toggle minimap (fps)
  P                  - Pause
  R                  - Restart
  Ctrl+S             - Save a screenshot to ~/.arcade/screenshots
  Esc/B              - Back
  Q/Ctrl+C           - Quit

Difficulty options (flappy, snake):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Without --map, fps opens a map picker first.

Examples:
  arcade play fps
  arcade play fps --map pillars
  arcade play flappy --difficulty hard
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMap, "map", "", "Ray-caster map id (fps only)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	configureGame(gameID)

	if gameID == "fps" {
		chosen, err := chooseMap(cfg, logger)
		if err != nil {
			return err
		}
		if !chosen {
			return nil
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	logger.Debug("starting game", "id", info.ID, "title", info.Title)

	if _, err := tui.Run(game, cfg, logger); err != nil {
		return err
	}
	return nil
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame passes the CLI config path, difficulty and map to a game
// package before it is created.
func configureGame(gameID string) {
	switch gameID {
	case "fps":
		fps.SetConfigPath(flagConfig)
		fps.SetMap(flagMap)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
		flappy.SetDifficultyPreset(flagDifficulty)
	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)
	case "cube":
		cube.SetConfigPath(flagConfig)
	}
}

// chooseMap shows the map picker unless --map was given. It reports false
// when the player backed out or quit.
func chooseMap(cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	if flagMap != "" {
		return true, nil
	}

	list, current := mapChoices(logger)
	selected, _, err := tui.RunMapPicker(list, current, cfg.ScreenW, cfg.ScreenH)
	if err != nil {
		return false, err
	}
	if selected == nil {
		return false, nil
	}
	fps.SetMap(selected.ID)
	logger.Debug("map selected", "id", selected.ID, "file", selected.FilePath)
	return true, nil
}

// mapChoices returns the maps the picker offers and the id to start on.
func mapChoices(logger *log.Logger) ([]maps.Map, string) {
	rc, _, err := config.LoadRaycast(flagConfig)
	if err != nil {
		logger.Warn("using default raycast config", "error", err)
		rc = config.DefaultRaycastConfig()
	}

	list, skipped := fps.Levels(rc.Map.Dir)
	for _, err := range skipped {
		logger.Warn("skipping map", "error", err)
	}

	current := fps.SelectedMap()
	if current == "" {
		current = rc.Map.ID
	}
	return list, current
}
