package core

import "iter"

// Size describes the dimensions of a simulation grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of addressable coordinates.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Cell is a grid coordinate.
type Cell struct {
	Row int
	Col int
}

// Sim defines the minimal contract the loop driver needs from an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Randomize()
	Step()
	Cells() []uint8
	LiveCells() iter.Seq[Cell]
	Generation() uint64
}
