package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/PhoneMinThu/minesweeper/internal/config"
	"github.com/PhoneMinThu/minesweeper/internal/session"
	"github.com/PhoneMinThu/minesweeper/internal/storage"
	"github.com/PhoneMinThu/minesweeper/internal/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play minesweeper",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Reveal cell
  F            - Toggle flag
  C            - Chord (reveal neighbors of a satisfied number)
  R            - Restart
  D            - Change difficulty
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - 9x9 board, 10 mines
  medium  - 16x16 board, 40 mines
  hard    - 30x16 board, 99 mines
  custom  - Board from config file (see --config)

Examples:
  minesweeper play
  minesweeper play --difficulty hard
  minesweeper play --difficulty custom --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "easy", "Difficulty preset: easy, medium, hard, custom")
}

func runPlay(cmd *cobra.Command, args []string) error {
	difficulty, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	params := session.ParamsForDifficulty(difficulty)
	if difficulty == config.Custom {
		cfg, cfgErr := config.Load(flagConfig)
		if cfgErr != nil {
			return cfgErr
		}
		params = session.Params{
			Difficulty: config.Custom,
			Width:      cfg.Board.Width,
			Height:     cfg.Board.Height,
			Mines:      cfg.Board.Mines,
		}
	}

	// Get terminal size for centered layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sess := session.New(params, flagSeed)

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(sess, store, width, height)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	return runErr
}
