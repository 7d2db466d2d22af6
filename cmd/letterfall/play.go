package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/letterfall/letterfall/internal/core"
	"github.com/letterfall/letterfall/internal/games/letterfall"
	"github.com/letterfall/letterfall/internal/platform/tui"
	"github.com/letterfall/letterfall/internal/registry"
	"github.com/letterfall/letterfall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play letterfall",
	Long: `Start a game in the current terminal.

Controls:
  Enter/Space  - Start a session
  A-Z          - Type the highlighted letter
  R            - Restart (after game over)
  Esc/Ctrl+C   - Quit

Wrong letters are ignored: no penalty, the clock just keeps draining.

Examples:
  letterfall play
  letterfall play --seed 42
  letterfall play --config ./my-rules.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	const gameID = "letterfall"

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		TickMs:  flagTickMs,
		Seed:    flagSeed,
	}

	// Set rules config path before creation
	letterfall.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
