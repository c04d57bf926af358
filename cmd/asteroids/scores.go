package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagHistory int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and game history",
	Long: `Display the high-score table and statistics from the game history.

Examples:
  asteroids scores
  asteroids scores --history 20
  asteroids scores --scores ./highscores.txt`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagHistory, "history", 10, "Number of recent games to list (0 to skip)")
}

func runScores(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	gameCfg, err := loadConfig()
	if err != nil {
		return err
	}

	// High-score table
	fmt.Println("High Scores")
	fmt.Println()

	if scores := openScores(logger, gameCfg); scores != nil {
		table, err := scores.Table()
		if err != nil {
			return fmt.Errorf("reading high scores: %w", err)
		}

		if table.Len() == 0 {
			fmt.Println("No scores recorded yet.")
			fmt.Println()
			fmt.Println("Play 'asteroids play' to set the first high score!")
		} else {
			fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
			fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
			for i, e := range table.Entries() {
				fmt.Printf("  %-4d  %-16s  %d\n", i+1, e.Name, e.Score)
			}
		}
	}

	// History
	store := openStore(logger, flagDBPath)
	if store == nil {
		return nil
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}
	if stats.GamesCount == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("History")
	fmt.Println()
	fmt.Printf("  Games played: %d\n", stats.GamesCount)
	fmt.Printf("  Best score:   %d\n", stats.HighScore)
	fmt.Printf("  Average:      %.1f\n", stats.AvgScore)
	fmt.Printf("  Total score:  %d\n", stats.TotalScore)
	fmt.Printf("  Time played:  %ds\n", stats.TotalTicks/max(flagFPS, 1))
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played:  %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if flagHistory <= 0 {
		return nil
	}

	recent, err := store.RecentResults(flagHistory)
	if err != nil {
		return fmt.Errorf("reading history: %w", err)
	}

	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-10s  %s\n", "Player", "Score", "Difficulty", "Date")
	fmt.Printf("  %-16s  %-8s  %-10s  %s\n", "------", "-----", "----------", "----")
	for _, r := range recent {
		fmt.Printf("  %-16s  %-8d  %-10s  %s\n", r.Player, r.Score, r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
