package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkovrin/crystal-drift/internal/audio"
	"github.com/mkovrin/crystal-drift/internal/core"
	"github.com/mkovrin/crystal-drift/internal/game"
	"github.com/mkovrin/crystal-drift/internal/platform/tui"
	"github.com/mkovrin/crystal-drift/internal/registry"
	"github.com/mkovrin/crystal-drift/internal/storage"
	"github.com/mkovrin/crystal-drift/internal/tuning"
)

var (
	flagConfig  string
	flagNoAudio bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Crystal Drift",
	Long: `Start the game.

Controls:
  Mouse      - Steer the ship (it chases the pointer)
  Click/Space- Fire toward the pointer
  Enter      - Start from the menu
  P/Esc      - Pause
  R          - Restart (after game over)
  M          - Toggle audio
  Tab        - Tuning panel
  Q/Ctrl+C   - Quit

Examples:
  drift play
  drift play --seed 42
  drift play --no-audio
  drift play --config ./my-drift.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagNoAudio, "no-audio", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	g, err := registry.Create("drift")
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

	// Open tuning storage
	tuningStore, err := tuning.Open(flagDBPath)
	if err != nil {
		tuningStore = nil
	}

	var sound *audio.Engine
	if !flagNoAudio {
		sound = audio.NewEngine()
	}

	runErr := tui.Run(g, store, tuningStore, sound, cfg)

	if sound != nil {
		sound.Close()
	}
	if tuningStore != nil {
		tuningStore.Close()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
