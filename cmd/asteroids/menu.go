package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the title menu",
	Long: `Start asteroids in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, press B to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  asteroids menu
  asteroids menu --fps 30
  asteroids menu --db ./history.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	// Uses global flags from main.go
	menuCmd.Flags().StringVar(&flagPlayer, "name", defaultPlayer(), "Default name for the high-score table")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger, flagDBPath)
	if store != nil {
		defer store.Close()
	}
	scores := openScores(logger, gameCfg)
	checkScores(logger, scores)

	opts := tui.Options{
		Store:         store,
		Scores:        scores,
		Player:        flagPlayer,
		Difficulty:    difficultyLabel(),
		HoldTicks:     gameCfg.Input.HoldTicks,
		MaxNameLength: gameCfg.HighScores.MaxNameLength,
		Embedded:      true,
	}

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(scores, store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			model, err := tui.RunModel(asteroids.New(gameCfg), opts, cfg)
			if err != nil {
				return err
			}
			if !model.BackToMenu() {
				return nil
			}

		default:
			return nil
		}
	}
}
