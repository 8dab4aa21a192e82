package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lunarcade/lander/internal/core"
	"github.com/lunarcade/lander/internal/games/lander"
	"github.com/lunarcade/lander/internal/platform/tui"
	"github.com/lunarcade/lander/internal/registry"
	"github.com/lunarcade/lander/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly the lander",
	Long: `Start a landing session. Attempts continue until you quit.

Controls:
  Space/Up/W - Main engine
  Left/A     - Rotate counter-clockwise
  Right/D    - Rotate clockwise
  Q / E      - Side thrusters
  P          - Pause
  R          - Retry the same terrain (after touchdown or crash)
  N          - New terrain
  Ctrl+C     - Quit

Examples:
  lander play
  lander play --seed 42
  lander play --config ./my-lander.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens score storage, degrading to nil on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg := terminalConfig()

	// Set tuning path before the game instance loads it in Reset
	lander.SetConfigPath(flagConfig)

	game, err := registry.Create("lander")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
