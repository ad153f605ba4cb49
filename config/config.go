package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"snake-arcade/game/types"
)

// Frontends the binary can drive.
const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

// Config holds the command line settings.
type Config struct {
	TicksPerSecond int
	Frontend       string
	Autopilot      bool
	AutoRestart    bool
	Seed           uint64
	LogFile        string
	Debug          bool
}

// Default returns the settings used when no flags are given.
func Default() Config {
	return Config{
		TicksPerSecond: types.TicksPerSec,
		Frontend:       FrontendRaylib,
		Seed:           uint64(time.Now().UnixNano()),
	}
}

// Parse reads flags from args (without the program name). Usage and parse
// errors are written to output.
func Parse(name string, args []string, output io.Writer) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.TicksPerSecond, "tps", cfg.TicksPerSecond, "Game ticks per second")
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "Display to use: raylib or terminal")
	fs.BoolVar(&cfg.Autopilot, "autopilot", false, "Let the Q-learning agent steer")
	fs.BoolVar(&cfg.AutoRestart, "auto-restart", false, "Restart rounds automatically (with -autopilot)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for food placement")
	fs.StringVar(&cfg.LogFile, "logfile", "", "Write logs to file instead of stderr")
	fs.BoolVar(&cfg.Debug, "debug", false, "Verbose raylib logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(output, err)
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.TicksPerSecond < 1 || c.TicksPerSecond > 240 {
		return fmt.Errorf("tps must be between 1 and 240, got %d", c.TicksPerSecond)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Frontend)
	}
	if c.AutoRestart && !c.Autopilot {
		return fmt.Errorf("-auto-restart needs -autopilot")
	}
	return nil
}

// TickInterval is the wall time between updates.
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TicksPerSecond)
}
