package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <username>",
	Short: "Show statistics for a player",
	Long: `Display a player's highest and average score, games played and
recent runs, followed by the statistics of all players.

Examples:
  brickbreaker stats alice`,
	Args: cobra.ExactArgs(1),
	RunE: runStats,
}

func runStats(_ *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	user, err := store.UserByName(args[0])
	if errors.Is(err, storage.ErrUserNotFound) {
		return fmt.Errorf("unknown player %q", args[0])
	}
	if err != nil {
		return err
	}

	ps, err := store.PlayerStats(user.ID)
	if err != nil {
		return err
	}
	gs, err := store.GlobalStats()
	if err != nil {
		return err
	}

	fmt.Printf("Player: %s (member since %s)\n\n", user.Username, user.CreatedAt.Format("2006-01-02"))
	fmt.Printf("  %-14s %d\n", "Highest", ps.Highest)
	fmt.Printf("  %-14s %.1f\n", "Average", ps.Average)
	fmt.Printf("  %-14s %d\n", "Games played", ps.GamesPlayed)
	if len(ps.Recent) > 0 {
		recent := make([]string, len(ps.Recent))
		for i, s := range ps.Recent {
			recent[i] = fmt.Sprint(s)
		}
		fmt.Printf("  %-14s %s\n", "Recent", strings.Join(recent, ", "))
	}

	fmt.Println()
	fmt.Println("All players:")
	if gs.BestPlayer != "" {
		fmt.Printf("  %-14s %s (%d)\n", "Best", gs.BestPlayer, gs.BestScore)
	}
	fmt.Printf("  %-14s %.1f\n", "Average", gs.Average)
	fmt.Printf("  %-14s %d\n", "Total games", gs.TotalGames)
	return nil
}
