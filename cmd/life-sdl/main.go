//go:build sdl

package main

import (
	"context"
	"flag"
	"log"
	"runtime"

	"lifegrid/internal/app"
	"lifegrid/internal/sdlfront"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	font := flag.String("font", "", "TTF font for the timing overlay; empty shows it in the title bar")
	flag.Parse()

	grid, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("create grid: %v", err)
	}

	w, h := cfg.Screen()
	window, err := sdlfront.Open("Game Of Life", w, h, *font)
	if err != nil {
		log.Fatal(err)
	}
	defer window.Close()

	if err := app.Run(context.Background(), app.NewDriver(grid, cfg), window, window, sdlfront.Clock{}); err != nil {
		log.Print(err)
	}
}
