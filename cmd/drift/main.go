// drift is a terminal arcade game: steer a ship with the mouse, collect
// crystals, shoot the drones hunting you, and escape through the gate.
//
// Usage:
//
//	drift play              - Play the game
//	drift serve             - Start SSH server for remote play
//	drift scores            - Show high scores
//	drift tuning            - Inspect or edit saved tuning parameters
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.crystaldrift/drift.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "drift",
	Short: "Crystal Drift - mouse-steered arcade action in your terminal",
	Long: `Crystal Drift is a terminal arcade game. Your ship chases the mouse
pointer on a spring, drifting and overshooting as it goes. Collect every
crystal on the field while dodging or shooting the drones, then escape
through the gate before the next, meaner level begins.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores
  tuning   - Inspect or edit saved tuning parameters

Examples:
  drift play
  drift play --seed 42
  drift serve --ssh :2222
  drift scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crystaldrift/drift.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(tuningCmd)
}
