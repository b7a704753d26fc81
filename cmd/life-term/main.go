package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 30, "frame rate cap, 0 for unlimited")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	screen, err := term.Open(*fps)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := screen.GridSize()
	if !explicit["rows"] {
		cfg.Rows = rows
	}
	if !explicit["cols"] {
		cfg.Cols = cols
	}

	grid, err := app.NewSimulation(cfg)
	if err != nil {
		screen.Close()
		log.Fatalf("create grid: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = app.Run(ctx, app.NewDriver(grid, cfg), screen, screen, core.NewMonotonicClock())
	stop()
	screen.Close()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
}
