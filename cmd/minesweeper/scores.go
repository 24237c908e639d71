package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/PhoneMinThu/minesweeper/internal/config"
	"github.com/PhoneMinThu/minesweeper/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times for a difficulty",
	Long: `Display the ten fastest wins and the overall win rate for the given
difficulty (default: easy).

Examples:
  minesweeper scores
  minesweeper scores medium
  minesweeper scores hard`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	name := "easy"
	if len(args) > 0 {
		name = args[0]
	}

	difficulty, err := config.ParseDifficulty(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	best, err := store.BestTimes(difficulty.String(), 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Times - %s\n", difficulty)
	fmt.Println()

	if len(best) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'minesweeper play --difficulty %s' to set the first time!\n", difficulty)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "----", "----")

	for i, r := range best {
		secs := int(r.Elapsed.Seconds())
		timeStr := fmt.Sprintf("%02d:%02d", secs/60, secs%60)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, timeStr, dateStr)
	}

	fmt.Println()
	if stats, err := store.Stats(difficulty.String()); err == nil && stats.Played > 0 {
		rate := float64(stats.Won) / float64(stats.Played) * 100
		fmt.Printf("Played: %d  Won: %d  Win rate: %.0f%%\n", stats.Played, stats.Won, rate)
	}
}
