package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration: a medium-sized custom
// board matching the intermediate preset.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
	}
}
