package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs for a level, or list levels with recorded
runs when no level is given.

Examples:
  platformer scores
  platformer scores level1.txt`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		listLevels(store)
		return
	}

	levelName := args[0]
	runs, err := store.TopRuns(levelName, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top Runs - %s\n", levelName)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to record the first run!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-18s  %s\n", "Rank", "Score", "Ticks", "Hash", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-18s  %s\n", "----", "-----", "-----", "----", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-8d  %-18s  %s\n", i+1, run.Score, run.Ticks, run.Hash, dateStr)
	}

	fmt.Println()
	if best, bestErr := store.HighScore(levelName); bestErr == nil {
		fmt.Printf("Best: %d\n", best)
	}
}

func listLevels(store *storage.Store) {
	levels, err := store.Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Println("Levels with recorded runs:")
	for _, name := range levels {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'platformer scores <level>' to see the runs.")
}
