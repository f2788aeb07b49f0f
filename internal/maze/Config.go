package maze

import (
	"errors"
	"flag"
)

const (
	MinHeight = 25
	MaxHeight = 51
	MinWidth  = 26
	MaxWidth  = 50

	TopMargin    = 3
	BottomMargin = 2

	SpawnCellCount = 10

	twoTunnelMinHeight    = 33
	twoTunnelMinHalfWidth = 15

	firstVoidColumn = 5

	DefaultMaxAttempts  = 64
	DefaultSearchBudget = 2000
)

// Config bounds the work spent on one Generate call.
type Config struct {
	// MaxAttempts is the number of full pipeline runs before giving up.
	MaxAttempts int
	// SearchBudget caps the placer nodes explored in one attempt.
	SearchBudget int
}

func NewConfig() Config {
	return Config{MaxAttempts: DefaultMaxAttempts, SearchBudget: DefaultSearchBudget}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.MaxAttempts, "attempts", c.MaxAttempts, "generation attempts before giving up")
	fs.IntVar(&c.SearchBudget, "budget", c.SearchBudget, "placer nodes explored per attempt")
}

func (c Config) validate() error {
	if c.MaxAttempts <= 0 {
		return errors.New("max attempts must be positive")
	}
	if c.SearchBudget <= 0 {
		return errors.New("search budget must be positive")
	}
	return nil
}

// ClampSize maps any requested size onto the supported range: height odd in
// [MinHeight, MaxHeight], width even in [MinWidth, MaxWidth].
func ClampSize(height, width int) (int, int) {
	height = min(max(height, MinHeight), MaxHeight)
	if height%2 == 0 {
		height++
	}
	width = min(max(width, MinWidth), MaxWidth)
	if width%2 == 1 {
		width++
	}
	return height, width
}
