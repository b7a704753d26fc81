// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"lifegrid/internal/core"
)

// ErrInvalidSize is returned by New for non-positive dimensions.
var ErrInvalidSize = errors.New("life: invalid grid size")

const (
	dead  = 0
	alive = 1
)

// Grid is a bounded Game of Life board. Cells outside [0,rows)×[0,cols) do
// not exist and never count as neighbors.
type Grid struct {
	rows, cols int
	cur        *core.ByteGrid
	nxt        *core.ByteGrid
	rng        *core.RNG
	generation uint64
}

var _ core.Sim = (*Grid)(nil)

// Option configures a Grid at construction.
type Option func(*options)

type options struct {
	seed    int64
	hasSeed bool
}

// WithSeed makes Randomize reproducible for the given seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.hasSeed = true
	}
}

// New returns a grid with the provided dimensions and every cell dead.
func New(rows, cols int, opts ...Option) (*Grid, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasSeed {
		o.seed = time.Now().UnixNano()
	}

	cur, err := core.NewByteGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	nxt, err := core.NewByteGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
	}
	return &Grid{rows: rows, cols: cols, cur: cur, nxt: nxt, rng: core.NewRNG(o.seed)}, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{Rows: g.rows, Cols: g.cols} }

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Cells exposes the current generation in row-major order. Callers must not
// retain it across Step.
func (g *Grid) Cells() []uint8 { return g.cur.Cells() }

// Generation returns the number of steps since the board was last seeded.
func (g *Grid) Generation() uint64 { return g.generation }

// Alive reports whether (row, col) is alive. Out of range coordinates are dead.
func (g *Grid) Alive(row, col int) bool { return g.cur.At(row, col) == alive }

// Set changes a single cell and reports whether the coordinate exists.
func (g *Grid) Set(row, col int, on bool) bool {
	if !g.cur.Contains(row, col) {
		return false
	}
	v := uint8(dead)
	if on {
		v = alive
	}
	g.cur.Cells()[g.cur.Index(row, col)] = v
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	g.cur.Clear()
	g.generation = 0
}

// Randomize sets every cell alive or dead with equal probability.
func (g *Grid) Randomize() {
	g.rng.FillBinary(g.cur.Cells())
	g.generation = 0
}

// Reset reseeds the random source and randomizes the board.
func (g *Grid) Reset(seed int64) {
	g.rng = core.NewRNG(seed)
	g.Randomize()
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur.Cells() {
		n += int(c)
	}
	return n
}

// Next applies the B3/S23 rule to a single cell.
func Next(isAlive bool, neighbors int) bool {
	if isAlive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Neighbors counts the live cells adjacent to (row, col).
func (g *Grid) Neighbors(row, col int) int {
	cells := g.cur.Cells()
	r0, r1 := max(row-1, 0), min(row+1, g.rows-1)
	c0, c1 := max(col-1, 0), min(col+1, g.cols-1)
	n := 0
	for r := r0; r <= r1; r++ {
		base := r * g.cols
		for c := c0; c <= c1; c++ {
			if r == row && c == col {
				continue
			}
			n += int(cells[base+c])
		}
	}
	return n
}

// Step advances the simulation by one generation. The next generation is
// written to the scratch buffer only, then the buffers are swapped.
func (g *Grid) Step() {
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			nxt[idx] = dead
			if Next(cur[idx] == alive, g.Neighbors(r, c)) {
				nxt[idx] = alive
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.generation++
}

// LiveCells enumerates live coordinates in row-major order. The sequence is
// bound to the generation current at call time and may be ranged repeatedly.
func (g *Grid) LiveCells() iter.Seq[core.Cell] {
	snap := slices.Clone(g.cur.Cells())
	cols := g.cols
	return func(yield func(core.Cell) bool) {
		for i, v := range snap {
			if v != alive {
				continue
			}
			if !yield(core.Cell{Row: i / cols, Col: i % cols}) {
				return
			}
		}
	}
}
