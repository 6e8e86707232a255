// skyhop is a terminal vertical jumper: bounce up an endless tower of
// platforms, grab power-ups, and dodge or shoot the hazards on the way.
//
// Usage:
//
//	skyhop play              - Play the game
//	skyhop serve             - Start SSH server for remote play
//	skyhop scores            - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.skyhop/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadehop/skyhop/internal/games/skyhop"
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
	Use:   "skyhop",
	Short: "Sky Hopper - An endless climbing game in your terminal",
	Long: `Sky Hopper is a terminal vertical jumper. Bounce up an endless
tower of procedurally generated platforms, collect timed power-ups,
and stomp or shoot the enemies patrolling the climb.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  skyhop play
  skyhop play --difficulty hard
  skyhop serve --ssh :2222
  skyhop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyhop/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
