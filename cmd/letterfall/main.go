// letterfall is a terminal typing game: upcoming letters scroll across a
// strip, and each one must be typed before its countdown runs out.
//
// Usage:
//
//	letterfall play          - Play in the current terminal
//	letterfall serve         - Start SSH server for remote play
//	letterfall scores        - Show recorded high scores
//
// Global flags:
//
//	--tick-ms <ms>  - Countdown tick interval (default: 100)
//	--seed <value>  - RNG seed for reproducible letter sequences
//	--db <path>     - Scores database (default: ":memory:", nothing persists)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/letterfall/letterfall/internal/storage"

	// Import games to register them
	_ "github.com/letterfall/letterfall/internal/games/letterfall"
)

var (
	// Global flags
	flagTickMs int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "letterfall",
	Short: "Letterfall - type the falling letters before time runs out",
	Long: `Letterfall is a terminal typing game. Letters scroll across the
screen; type each highlighted letter before its 3-second countdown
expires. Every hit scores 100 points and refills the clock.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View recorded high scores

Scores live in memory by default; pass --db with a file path to keep
a leaderboard between runs.

Examples:
  letterfall play
  letterfall play --seed 42
  letterfall serve --ssh :2222
  letterfall scores --db ~/.letterfall/scores.db`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTickMs, "tick-ms", 100, "Countdown tick interval in milliseconds")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN, "Path to scores database (\":memory:\" = process lifetime only)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
