package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-arcade/ai"
	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"
)

func main() {
	cfg, err := config.Parse(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Printf("starting %s frontend at %d ticks/s, seed %d", cfg.Frontend, cfg.TicksPerSecond, cfg.Seed)
	g := game.NewGame(cfg.Seed)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		err = runTerminal(cfg, g)
	default:
		runRaylib(cfg, g)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}

	stats := g.Stats()
	log.Printf("session over: %d rounds, best score %d", len(stats.ScoreHistory), stats.HighScore)
}

// controller puts the autopilot in front of the human input when asked.
func controller(cfg config.Config, human game.Controller) game.Controller {
	if !cfg.Autopilot {
		return human
	}
	pilot := ai.NewAutopilot(ai.NewQLearning(cfg.Seed), human, types.Board)
	pilot.AutoRestart = cfg.AutoRestart
	return pilot
}

func runRaylib(cfg config.Config, g *game.Game) {
	ui.SetTraceLevel(cfg.Debug)
	ui.OpenWindow(cfg.TicksPerSecond)
	defer ui.CloseWindow()

	renderer := ui.NewRenderer()
	input := controller(cfg, ui.KeyboardInput{})

	for !ui.ShouldClose() {
		renderer.Draw(g.Tick(input))
	}
}

func runTerminal(cfg config.Config, g *game.Game) error {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
	}

	screen, err := terminal.New()
	if err != nil {
		return fmt.Errorf("terminal frontend: %w", err)
	}
	defer screen.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := controller(cfg, screen)
	ticker := time.NewTicker(cfg.TickInterval())
	defer ticker.Stop()

	screen.Draw(g.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			view := g.Tick(input)
			if screen.Quit() {
				return nil
			}
			screen.Draw(view)
		}
	}
}
