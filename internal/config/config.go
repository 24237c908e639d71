package config

import "fmt"

// Config is the game configuration loaded from YAML. It currently describes
// the custom board used when playing with --difficulty custom.
type Config struct {
	Board BoardConfig `yaml:"board"`
}

// BoardConfig defines a custom board shape.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Validate checks the board parameters. Unlike board construction, which
// panics on misconfigured presets, config input comes from the user and is
// reported as an error.
func (c Config) Validate() error {
	b := c.Board
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("config: board dimensions must be positive, got %dx%d", b.Width, b.Height)
	}
	if b.Mines < 0 {
		return fmt.Errorf("config: mine count must not be negative, got %d", b.Mines)
	}
	if b.Mines >= b.Width*b.Height {
		return fmt.Errorf("config: %d mines do not fit a %dx%d board", b.Mines, b.Width, b.Height)
	}
	return nil
}
