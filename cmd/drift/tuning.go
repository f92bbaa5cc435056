package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkovrin/crystal-drift/internal/game"
	"github.com/mkovrin/crystal-drift/internal/tuning"
)

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Inspect or edit saved tuning parameters",
	Long: `Manage the tuning parameters saved from the in-game panel.

Without arguments, lists the saved values and their valid ranges.
Values can also be adjusted live while playing with the Tab panel.

Examples:
  drift tuning
  drift tuning set spring_kp 30
  drift tuning reset`,
	Args: cobra.NoArgs,
	Run:  runTuningList,
}

var tuningSetCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Save a tuning parameter",
	Args:  cobra.ExactArgs(2),
	Run:   runTuningSet,
}

var tuningResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved tuning parameters",
	Args:  cobra.NoArgs,
	Run:   runTuningReset,
}

func init() {
	tuningCmd.AddCommand(tuningSetCmd)
	tuningCmd.AddCommand(tuningResetCmd)
}

func openTuningStore() *tuning.Store {
	store, err := tuning.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runTuningList(cmd *cobra.Command, args []string) {
	store := openTuningStore()
	defer store.Close()

	saved := store.Load("drift")

	fmt.Printf("  %-14s  %-10s  %s\n", "Parameter", "Saved", "Range")
	fmt.Printf("  %-14s  %-10s  %s\n", "---------", "-----", "-----")

	for _, name := range game.TuningNames {
		r := game.TuningRanges[name]
		value := "(default)"
		if v, ok := saved[name]; ok {
			value = strconv.FormatFloat(v, 'g', -1, 64)
		}
		fmt.Printf("  %-14s  %-10s  [%g, %g] step %g\n", name, value, r.Min, r.Max, r.Step)
	}
}

func runTuningSet(cmd *cobra.Command, args []string) {
	name := args[0]
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a number\n", args[1])
		os.Exit(1)
	}

	// Validate through the same setter the panel uses.
	var t game.Tuning
	if err := t.Set(name, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openTuningStore()
	defer store.Close()

	if err := store.Save("drift", name, value); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s = %g\n", name, value)
}

func runTuningReset(cmd *cobra.Command, args []string) {
	store := openTuningStore()
	defer store.Close()

	if err := store.Reset("drift"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Saved tuning parameters cleared.")
}
