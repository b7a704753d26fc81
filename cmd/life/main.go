//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	grid, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	driver := app.NewDriver(grid, cfg)
	game := app.New(driver, core.NewMonotonicClock())
	w, h := cfg.Screen()

	ebiten.SetWindowTitle("Game Of Life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(true)

	log.Printf("grid %dx%d, tick %v", cfg.Rows, cfg.Cols, cfg.Tick)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
