package app

import (
	"context"
	"fmt"
	"iter"
	"time"

	"lifegrid/internal/core"
)

// Mode is the play state of the simulation.
type Mode int

const (
	Paused Mode = iota
	Playing
)

func (m Mode) String() string {
	if m == Playing {
		return "playing"
	}
	return "paused"
}

// Overlay is the visibility of the frame timing readout.
type Overlay int

const (
	Hidden Overlay = iota
	Shown
)

// Event is a discrete input command delivered by a front end.
type Event int

const (
	EventNone Event = iota
	EventQuit
	EventTogglePlay
	EventReset
	EventToggleOverlay
	EventEscape
)

// Input supplies the events that arrived since the previous call. It must not
// block.
type Input interface {
	Poll() []Event
}

// Renderer presents one frame.
type Renderer interface {
	Render(Frame) error
}

// Frame is everything a renderer needs to draw one iteration.
type Frame struct {
	Cells      iter.Seq[core.Cell]
	Size       core.Size
	CellSize   int
	Overlay    Overlay
	Mode       Mode
	Generation uint64
	Stats      core.FrameStats
}

// Driver owns the simulation, the tick scheduler and the mode flags.
type Driver struct {
	sim      core.Sim
	ticks    *core.FixedStep
	cellSize int

	mode    Mode
	overlay Overlay
}

// NewDriver wires sim to a scheduler configured by cfg.
func NewDriver(sim core.Sim, cfg *Config) *Driver {
	d := &Driver{
		sim:      sim,
		ticks:    core.NewFixedStep(cfg.Tick),
		cellSize: max(cfg.CellSize, 1),
	}
	if cfg.Play {
		d.mode = Playing
	}
	return d
}

// Mode returns the current play state.
func (d *Driver) Mode() Mode { return d.mode }

// Overlay returns the current overlay visibility.
func (d *Driver) Overlay() Overlay { return d.overlay }

// Sim returns the driven simulation.
func (d *Driver) Sim() core.Sim { return d.sim }

// Dispatch applies a single event and reports whether the loop must end.
func (d *Driver) Dispatch(ev Event) (quit bool) {
	switch ev {
	case EventQuit, EventEscape:
		return true
	case EventTogglePlay:
		if d.mode == Playing {
			d.mode = Paused
		} else {
			d.mode = Playing
		}
	case EventReset:
		d.sim.Randomize()
		d.mode = Paused
	case EventToggleOverlay:
		if d.overlay == Shown {
			d.overlay = Hidden
		} else {
			d.overlay = Shown
		}
	}
	return false
}

// Advance feeds dt to the scheduler while playing and steps the simulation
// at most once. It reports whether a step happened.
func (d *Driver) Advance(dt time.Duration) bool {
	if d.mode != Playing {
		return false
	}
	if !d.ticks.Advance(dt) {
		return false
	}
	d.sim.Step()
	return true
}

// Iterate dispatches events in order, then advances by dt. It returns false
// once a quit event is seen; events after it are ignored.
func (d *Driver) Iterate(events []Event, dt time.Duration) (running bool) {
	for _, ev := range events {
		if d.Dispatch(ev) {
			return false
		}
	}
	d.Advance(dt)
	return true
}

// Frame snapshots the state to render.
func (d *Driver) Frame(stats core.FrameStats) Frame {
	return Frame{
		Cells:      d.sim.LiveCells(),
		Size:       d.sim.Size(),
		CellSize:   d.cellSize,
		Overlay:    d.overlay,
		Mode:       d.mode,
		Generation: d.sim.Generation(),
		Stats:      stats,
	}
}

// Run drives the loop until a quit event, a render failure or ctx is done.
// Each iteration drains input, steps, measures the iteration and renders.
func Run(ctx context.Context, d *Driver, in Input, out Renderer, clock core.Clock) error {
	timer := core.NewFrameTimer(clock)
	var dt time.Duration
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !d.Iterate(in.Poll(), dt) {
			return nil
		}

		stats := timer.Tick()
		dt = stats.Delta
		if err := out.Render(d.Frame(stats)); err != nil {
			return fmt.Errorf("render frame: %w", err)
		}
	}
}
