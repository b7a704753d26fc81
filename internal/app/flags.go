package app

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

// ErrInvalidConfig reports an unusable configuration value.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Rows     int
	Cols     int
	CellSize int
	Tick     time.Duration
	Seed     int64
	Play     bool
}

// NewConfig returns a Config matching a 1000x800 window of 4px cells.
func NewConfig() *Config {
	return &Config{Rows: 250, Cols: 200, CellSize: 4, Tick: core.DefaultTickInterval}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (drawn along x)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (drawn along y)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.DurationVar(&c.Tick, "tick", c.Tick, "simulation tick interval")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomization, 0 picks one from the clock")
	fs.BoolVar(&c.Play, "play", c.Play, "start playing instead of paused")
}

// Validate checks the values the grid constructor does not.
func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick interval %v", ErrInvalidConfig, c.Tick)
	}
	return nil
}

// Screen returns the pixel dimensions of the rendered grid.
func (c *Config) Screen() (w, h int) {
	return c.Rows * c.CellSize, c.Cols * c.CellSize
}

// NewSimulation builds a randomized grid for cfg.
func NewSimulation(cfg *Config) (*life.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid, err := life.New(cfg.Rows, cfg.Cols, life.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	grid.Randomize()
	return grid, nil
}
