// brickbreaker is a terminal brick-breaker with accounts and a shared
// leaderboard, playable locally or over SSH.
//
// Usage:
//
//	brickbreaker play                 - Log in and play
//	brickbreaker serve                - Start SSH server for remote play
//	brickbreaker scores               - Show the top players
//	brickbreaker stats <username>     - Show statistics for a player
//	brickbreaker account <subcommand> - Register, rename or delete an account
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.brickbreaker/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickbreaker/internal/config"
)

var (
	flagFPS        int
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break bricks in your terminal",
	Long: `Brick Breaker is a terminal arcade game: bounce the ball off your
paddle, clear every brick, collect power-ups and climb the leaderboard.

Available commands:
  play     - Log in and play
  serve    - Start SSH server for remote play
  scores   - View the top players
  stats    - View statistics for a player
  account  - Manage accounts

Examples:
  brickbreaker play
  brickbreaker play --user alice --difficulty hard
  brickbreaker serve --ssh :2222
  brickbreaker scores --limit 20`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db",
		config.GetEnv("BRICKBREAKER_DB", "~/.brickbreaker/scores.db"), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level",
		config.GetEnv("BRICKBREAKER_LOG_LEVEL", "info"), "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(accountCmd)
}
