package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/highscore"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

var (
	flagRecord string
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing asteroids.

Controls:
  Left/Right, A/D  - Turn
  Up, W            - Thrust
  Space, F         - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Spawn rate starts low and speeds up with score
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty
  fixed  - One asteroid every five seconds, no progression

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids play --seed 42 --record run.replay
  asteroids play --config ./my-asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Save a replay of the last finished game to this file")
	playCmd.Flags().StringVar(&flagPlayer, "name", defaultPlayer(), "Default name for the high-score table")
}

// defaultPlayer returns the login name, or the generic default.
func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return highscore.DefaultName
}

func runPlay(_ *cobra.Command, _ []string) error {
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
	}
	if flagRecord != "" {
		opts.Recorder = replay.NewRecorder(gameCfg, flagSeed)
		opts.ReplayPath = flagRecord
	}

	state, err := tui.Run(asteroids.New(gameCfg), opts, runtimeConfig())
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if state.GameOver {
		fmt.Printf("Final score: %d\n", state.Score)
		if flagRecord != "" {
			fmt.Printf("Replay saved to %s\n", flagRecord)
		}
	}
	return nil
}
