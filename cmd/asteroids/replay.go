package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/replay"
)

var flagVerify bool

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded game",
	Long: `Load a recording made with 'asteroids play --record' and run it again
without a terminal UI. Games are deterministic for a seed and input sequence,
so the replay ends exactly where the recorded game did.

Examples:
  asteroids replay run.replay
  asteroids replay run.replay --verify`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagVerify, "verify", false, "Fail if the final score or tick count differs from the recording")
}

func runReplay(_ *cobra.Command, args []string) error {
	logger := newLogger()

	rec, err := replay.Load(args[0])
	if err != nil {
		return err
	}
	logger.Info("loaded recording",
		"seed", rec.Seed,
		"steps", rec.Steps,
		"frames", len(rec.Frames),
		"recorded", rec.RecordedAt.Format("2006-01-02 15:04"),
	)

	if flagVerify {
		state, err := replay.Verify(rec)
		if err != nil {
			logger.Error("replay diverged", "score", state.Score, "ticks", state.Ticks)
			return err
		}
		fmt.Printf("OK: score %d after %d ticks\n", state.Score, state.Ticks)
		return nil
	}

	state := replay.Play(rec, nil)
	fmt.Printf("Score: %d\n", state.Score)
	fmt.Printf("Ticks: %d\n", state.Ticks)
	fmt.Printf("Game over: %v\n", state.GameOver)
	return nil
}
