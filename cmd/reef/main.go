// reef is an underwater arcade game played in the terminal.
//
// Usage:
//
//	reef play            - Play directly
//	reef menu            - Start with the title menu
//	reef serve           - Start SSH server for remote play
//	reef scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.reef/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/gavrojas/reef-adventures-game/internal/game"
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
	Use:   "reef",
	Short: "Reef Adventures - an underwater arcade game in your terminal",
	Long: `Reef Adventures is a terminal arcade game: swim through an endless
reef, collect pearls, dodge jellyfish, crabs and sharks, and climb
through ever harder levels.

Available commands:
  play     - Start a run directly
  menu     - Title screen with instructions and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  reef play
  reef play --seed 42
  reef menu
  reef serve --ssh :2222
  reef scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.reef/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
