package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"lifegrid/internal/core"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-rows", "40", "-cols", "30", "-cell", "8", "-tick", "100ms", "-seed", "9", "-play"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Config{Rows: 40, Cols: 30, CellSize: 8, Tick: 100 * time.Millisecond, Seed: 9, Play: true}
	if *cfg != want {
		t.Fatalf("config %+v, expected %+v", *cfg, want)
	}
	if w, h := cfg.Screen(); w != 320 || h != 240 {
		t.Fatalf("screen %dx%d", w, h)
	}
}

func TestNewSimulation(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols, cfg.Seed = 20, 10, 42
	grid, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	if grid.Size() != (core.Size{Rows: 20, Cols: 10}) {
		t.Fatalf("size %+v", grid.Size())
	}
	if grid.Population() == 0 {
		t.Fatal("simulation was not randomized")
	}

	again, err := NewSimulation(cfg)
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	for i, v := range grid.Cells() {
		if again.Cells()[i] != v {
			t.Fatal("same seed produced different boards")
		}
	}
}

func TestNewSimulationInvalid(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows = 0
	if _, err := NewSimulation(cfg); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	cfg = NewConfig()
	cfg.CellSize = 0
	if _, err := NewSimulation(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}
