package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top players",
	Long: `Display the players with the highest best scores.

Examples:
  brickbreaker scores
  brickbreaker scores --limit 25`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of players to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	top, err := store.TopPlayers(flagLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Println("High Scores - Brick Breaker")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'brickbreaker play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Player", "Best")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "------", "----")
	for _, r := range top {
		fmt.Printf("  %-4d  %-16s  %d\n", r.Rank, r.Username, r.BestScore)
	}
	return nil
}
