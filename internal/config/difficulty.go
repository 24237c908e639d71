// Package config provides difficulty presets and YAML-based board
// configuration for the minesweeper TUI.
package config

import "fmt"

// Difficulty is a named board preset.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	// Custom marks a board loaded from a config file rather than a preset.
	Custom
)

// Parameters returns the board dimensions and mine count for this preset.
// Classic minesweeper values:
//   - Easy/Beginner: 9x9 with 10 mines
//   - Medium/Intermediate: 16x16 with 40 mines
//   - Hard/Expert: 30x16 with 99 mines
func (d Difficulty) Parameters() (width, height, mines int) {
	switch d {
	case Medium:
		return 16, 16, 40
	case Hard:
		return 30, 16, 99
	default:
		return 9, 9, 10
	}
}

// Cycle returns the next preset in order: Easy -> Medium -> Hard -> Easy.
// Custom boards cycle back to Easy.
func (d Difficulty) Cycle() Difficulty {
	switch d {
	case Easy:
		return Medium
	case Medium:
		return Hard
	default:
		return Easy
	}
}

// String returns the preset name used in flags and score records.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Custom:
		return "custom"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a flag value to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy", "":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "custom":
		return Custom, nil
	default:
		return Easy, fmt.Errorf("config: unknown difficulty %q (want easy, medium, hard or custom)", s)
	}
}
