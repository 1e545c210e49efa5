package puzzle

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidSize    = errors.New("invalid board size")
	ErrInvalidCeiling = errors.New("invalid ceiling margin")
	ErrInvalidRule    = errors.New("invalid garbage rule")
	ErrInvalidChance  = errors.New("invalid block chance")
)

// Delays are the pauses between escalation phases. They only pace the
// presentation; with every delay at zero a cycle completes synchronously.
type Delays struct {
	Drop  time.Duration `yaml:"drop"`
	Clear time.Duration `yaml:"clear"`
	Push  time.Duration `yaml:"push"`
}

// Tweens are the animation durations attached to emitted events.
type Tweens struct {
	Drop    time.Duration `yaml:"drop"`
	Push    time.Duration `yaml:"push"`
	Destroy time.Duration `yaml:"destroy"`
}

// Config holds everything needed to build a board or a match.
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// CeilingMargin is how many rows below the top the ceiling row sits.
	CeilingMargin int         `yaml:"ceiling_margin"`
	BlockChance   float64     `yaml:"block_chance"`
	Garbage       GarbageRule `yaml:"garbage"`
	Delays        Delays      `yaml:"delays"`
	Tweens        Tweens      `yaml:"tweens"`
	// Seed feeds the row generators. Zero picks a random seed at construction.
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the standard 8×10 versus setup.
func DefaultConfig() Config {
	return Config{
		Width:         8,
		Height:        10,
		CeilingMargin: 3,
		BlockChance:   0.7,
		Garbage:       RuleLinesCleared,
		Delays: Delays{
			Drop:  400 * time.Millisecond,
			Clear: 500 * time.Millisecond,
			Push:  300 * time.Millisecond,
		},
		Tweens: Tweens{
			Drop:    200 * time.Millisecond,
			Push:    300 * time.Millisecond,
			Destroy: 200 * time.Millisecond,
		},
	}
}

// Instant returns a copy of the config with every phase delay set to zero.
func (c Config) Instant() Config {
	c.Delays = Delays{}
	return c
}

// CeilingRow returns the row whose occupation after a push-up ends the game:
// Height-CeilingMargin, so row 7 of a 10-row board with the default margin of 3.
// Rows 7, 8 and 9 are all out of bounds for the stack.
func (c Config) CeilingRow() int {
	return c.Height - c.CeilingMargin
}

// Validate reports the first problem with the config.
func (c Config) Validate() error {
	if c.Width < 2 || c.Height < 2 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.CeilingMargin < 1 || c.CeilingMargin >= c.Height {
		return fmt.Errorf("%w: %d for height %d", ErrInvalidCeiling, c.CeilingMargin, c.Height)
	}
	if c.BlockChance < 0 || c.BlockChance > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidChance, c.BlockChance)
	}
	return c.Garbage.validate()
}

// LoadConfig reads a YAML file over DefaultConfig. Durations use Go syntax ("400ms").
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
