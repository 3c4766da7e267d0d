package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-chasm/internal/chasm"
	"github.com/vovakirdan/tui-chasm/internal/core"
	"github.com/vovakirdan/tui-chasm/internal/platform/tui"
	"github.com/vovakirdan/tui-chasm/internal/registry"
	"github.com/vovakirdan/tui-chasm/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  WASD/Arrows  - Move the build cursor
  Space/Enter  - Place the held block
  Q/E          - Rotate the held block
  Tab/]        - Next conveyor block
  X            - Chisel the block under the cursor
  F            - Finish the run
  P            - Pause
  R            - Restart (after the run ends)
  Ctrl+C       - Quit

Difficulty options:
  easy   - Decay starts gentle, progresses to max
  normal - Decay starts at 30%, progresses to max
  hard   - Decay starts at 70%, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  chasm play chasm
  chasm play chasm --difficulty hard
  chasm play chasm_free --seed 42
  chasm play chasm --config ./my-chasm.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chasm list' to see available modes.")
		os.Exit(1)
	}

	// Get terminal size early for the difficulty selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	chasm.SetConfigPath(flagConfig)
	chasm.SetDifficultyPreset(flagDifficulty)

	// Show the difficulty selector when no preset was given on the CLI
	if flagDifficulty == "" {
		preset, selErr := tui.RunDifficultySelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if preset == nil {
			return
		}
		chasm.SetDifficultyPreset(string(*preset))
	}

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
