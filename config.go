package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/mikenye/wrapsnake/internal/game"
)

// ErrInvalidConfig is returned for out-of-range flag values
var ErrInvalidConfig = errors.New("invalid config")

// limits for the tunable settings
const (
	minSpeed = 1
	maxSpeed = 60
	minScale = 1
	maxScale = 4
)

// Config holds the command-line settings
type Config struct {
	// ticks per second
	Speed int

	// random seed for apple placement, 0 picks one from the clock
	Seed uint64

	// window scale factor
	Scale int

	// run in the terminal instead of a window
	Terminal bool

	// show the snake length
	HUD bool
}

// parseConfig reads flags from args (without the program name)
func parseConfig(args []string, output io.Writer) (Config, error) {
	var c Config

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&c.Speed, "speed", game.DefaultSpeed, "game speed in ticks per second")
	fs.Uint64Var(&c.Seed, "seed", 0, "random seed for apple placement (0 = from clock)")
	fs.IntVar(&c.Scale, "scale", 1, "window scale factor")
	fs.BoolVar(&c.Terminal, "term", false, "play in the terminal instead of a window")
	fs.BoolVar(&c.HUD, "hud", false, "show the snake length")

	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig, fs.Arg(0))
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate checks the settings are in range
func (c Config) Validate() error {
	if c.Speed < minSpeed || c.Speed > maxSpeed {
		return fmt.Errorf("%w: speed %d not in %d..%d", ErrInvalidConfig, c.Speed, minSpeed, maxSpeed)
	}
	if c.Scale < minScale || c.Scale > maxScale {
		return fmt.Errorf("%w: scale %d not in %d..%d", ErrInvalidConfig, c.Scale, minScale, maxScale)
	}
	return nil
}

// seed returns the configured seed, or one taken from now
func (c Config) seed(now time.Time) uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(now.UnixNano())
}
