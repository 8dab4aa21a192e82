package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lunarcade/lander/internal/games/lander"
	"github.com/lunarcade/lander/internal/platform/tui"
	"github.com/lunarcade/lander/internal/registry"
)

var flagMenuConfig string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start from the title screen",
	Long: `Show the title screen with the score log before flying.

Examples:
  lander menu
  lander menu --seed 42`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuConfig, "config", "", "Path to custom tuning YAML")
}

func runMenu(cmd *cobra.Command, args []string) {
	cfg := terminalConfig()

	lander.SetConfigPath(flagMenuConfig)

	store := openStore()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Loop between title screen, game, and scoreboard until quit
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.Launch:
			game, err := registry.Create("lander")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				os.Exit(1)
			}
			if err := tui.Run(game, store, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				os.Exit(1)
			}

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}
		}
	}
}
