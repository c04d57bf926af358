// asteroids is a terminal rendition of the classic arcade game.
//
// Usage:
//
//	asteroids play             - Play a game
//	asteroids menu             - Start the title menu
//	asteroids serve            - Start SSH server for remote play
//	asteroids scores           - Show the high-score table and history
//	asteroids replay <file>    - Re-simulate a recorded game
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set history database path (default: ~/.asteroids/history.db)
//	--scores <path>       - Set high-score file path (default: ~/.asteroids/highscores.txt)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagScoresPath string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly, shoot and survive in your terminal",
	Long: `Asteroids is a terminal rendition of the classic arcade game.
Steer the ship, shoot the rocks and stay alive as long as you can.

Available commands:
  play     - Play a game directly
  menu     - Title menu with high scores
  serve    - Start SSH server for remote play
  scores   - View high scores and history
  replay   - Re-simulate a recorded game

Examples:
  asteroids play
  asteroids play --record last.replay
  asteroids menu --difficulty hard
  asteroids serve --ssh :2222
  asteroids replay last.replay --verify`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to game history database")
	rootCmd.PersistentFlags().StringVar(&flagScoresPath, "scores", defaultScoresPath, "Path to high-score file")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
}
