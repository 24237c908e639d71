// minesweeper is a terminal minesweeper with keyboard-driven play.
//
// Usage:
//
//	minesweeper play             - Play in the current terminal
//	minesweeper serve            - Start SSH server for remote play
//	minesweeper scores [level]   - Show best times and stats
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible boards
//	--db <path>     - Set database path (default: ~/.minesweeper/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "minesweeper",
	Short: "Minesweeper - classic mine clearing in your terminal",
	Long: `Minesweeper is a terminal rendition of the classic game: reveal every
safe cell without striking a mine. The first reveal is always safe.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View best times and win stats

Examples:
  minesweeper play
  minesweeper play --difficulty hard
  minesweeper serve --ssh :2222
  minesweeper scores medium`,
	// Bare `minesweeper` starts a game.
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minesweeper/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
