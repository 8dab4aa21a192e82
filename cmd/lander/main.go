// lander is a terminal moon-landing game played over a TUI or SSH.
//
// Usage:
//
//	lander play              - Fly immediately
//	lander menu              - Start from the title screen
//	lander serve             - Start SSH server for remote play
//	lander scores            - Show the attempt log
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.lander/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/lunarcade/lander/internal/games/lander"
)

var (
	// Global flags
	flagFPS    int
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
	Use:   "lander",
	Short: "Moon Lander - Land on the pad without breaking anything",
	Long: `Moon Lander is a terminal game: gravity pulls your ship down,
fuel is finite, and the pad is narrower than you would like.

Available commands:
  play     - Fly immediately
  menu     - Title screen with score log
  serve    - Start SSH server for remote play
  scores   - View the attempt log

Examples:
  lander play
  lander play --seed 42
  lander serve --ssh :2222
  lander scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
