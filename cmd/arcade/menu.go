package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weekend-arcade/internal/platform/tui"
	"github.com/vovakirdan/weekend-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Picking the Console FPS opens the map picker. Leaving a game with
Esc/B returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --log-file arcade.log --log-level debug`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := terminalConfig()
	lastID := ""

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, lastID)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		gameID := menuResult.GameID
		lastID = gameID
		configureGame(gameID)

		if gameID == "fps" {
			// Each menu visit picks a map again
			flagMap = ""
			chosen, err := chooseMap(cfg, logger)
			if err != nil {
				logger.Error("map picker failed", "error", err)
				continue
			}
			if !chosen {
				continue
			}
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("creating game", "id", gameID, "error", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		runCfg := cfg
		if flagSeed == 0 {
			runCfg.Seed = time.Now().UnixNano()
		}

		goBack, err := tui.Run(game, runCfg, logger)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
