// chasm is a terminal game about building a block structure down into a
// chasm without letting it crumble.
//
// Usage:
//
//	chasm list               - List available modes
//	chasm play <mode>        - Play a mode directly
//	chasm menu               - Start menu to pick modes interactively
//	chasm serve              - Start SSH server for remote play
//	chasm scores <mode>      - Show deepest descents for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.chasm/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game modes to register them
	_ "github.com/vovakirdan/tui-chasm/internal/chasm"
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
	Use:   "chasm",
	Short: "Build down into the chasm without letting the structure fall",
	Long: `chasm is a terminal game of structural engineering: bond blocks
from a conveyor into a structure hanging over a chasm, and dig as deep
as you can before decay and gravity take it apart.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View deepest descents

Examples:
  chasm list
  chasm play chasm
  chasm menu
  chasm serve --ssh :2222
  chasm scores chasm`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chasm/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
