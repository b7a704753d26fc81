package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSize reports a grid constructed with a non-positive dimension.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// ByteGrid stores a bounded 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid with the given dimensions.
func NewByteGrid(rows, cols int) (*ByteGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, rows, cols)
	}
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// Contains reports whether (row, col) addresses a cell of the grid.
func (g *ByteGrid) Contains(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// At returns the value at (row, col), or 0 outside the grid.
func (g *ByteGrid) At(row, col int) uint8 {
	if !g.Contains(row, col) {
		return 0
	}
	return g.data[row*g.Cols+col]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	clear(g.data)
}
