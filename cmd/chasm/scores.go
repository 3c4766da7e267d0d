package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chasm/internal/registry"
	"github.com/vovakirdan/tui-chasm/internal/storage"
)

var flagRecent bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show deepest descents for a mode",
	Long: `Display the top 10 descents for the specified mode.

Scores are the final depth of the structure's center of mass, in rows.

Examples:
  chasm scores chasm
  chasm scores chasm_free
  chasm scores chasm --recent`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show recent descents instead of the top list")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'chasm list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRecent {
		printRecentDescents(store, gameID, title)
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("Deepest Descents - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No descents recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'chasm play %s' to record the first one!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Depth", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores. Stored scores are depth in tenths of a row.
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10.1f  %s\n", i+1, float64(entry.Score)/10, dateStr)
	}

	// Show best descent
	fmt.Println()
	best, err := store.BestDescent(gameID)
	if err == nil && best != nil {
		fmt.Printf("Best: %.1f rows (%d blocks placed, %d lost)\n",
			float64(best.Score)/10, best.BlocksPlaced, best.BlocksLost)
	}
}

func printRecentDescents(store *storage.Store, gameID, title string) {
	descents, err := store.RecentDescents(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving descents: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Descents - %s\n", title)
	fmt.Println()

	if len(descents) == 0 {
		fmt.Println("No descents recorded yet.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-8s  %-6s  %s\n", "Depth", "Placed", "Lost", "Ticks", "Date")
	fmt.Printf("  %-10s  %-8s  %-8s  %-6s  %s\n", "-----", "------", "----", "-----", "----")

	for _, d := range descents {
		dateStr := d.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10.1f  %-8d  %-8d  %-6d  %s\n",
			float64(d.Score)/10, d.BlocksPlaced, d.BlocksLost, d.DurationTicks, dateStr)
	}
}
