package life

import (
	"errors"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

// fromRows builds a grid where each string is a row and 'O' marks a live cell.
func fromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := New(len(rows), len(rows[0]), WithSeed(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for r, line := range rows {
		for c, ch := range line {
			if ch == 'O' {
				g.Set(r, c, true)
			}
		}
	}
	return g
}

func cell(row, col int) core.Cell { return core.Cell{Row: row, Col: col} }

func live(g *Grid) []core.Cell {
	return slices.Collect(g.LiveCells())
}

func expectLive(t *testing.T, g *Grid, want ...core.Cell) {
	t.Helper()
	got := live(g)
	if !slices.Equal(got, want) {
		t.Fatalf("generation %d: live cells %v, expected %v", g.Generation(), got, want)
	}
}

func TestNewRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {3, -7}, {0, 0}} {
		g, err := New(dims[0], dims[1])
		if err == nil {
			t.Fatalf("New(%d, %d) succeeded, expected error", dims[0], dims[1])
		}
		if g != nil {
			t.Fatalf("New(%d, %d) returned a grid alongside an error", dims[0], dims[1])
		}
		if !errors.Is(err, ErrInvalidSize) || !errors.Is(err, core.ErrInvalidSize) {
			t.Fatalf("New(%d, %d) error %v does not wrap ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewStartsDead(t *testing.T) {
	g, err := New(4, 7)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if g.Population() != 0 {
		t.Fatalf("new grid has %d live cells", g.Population())
	}
	if g.Rows() != 4 || g.Cols() != 7 || g.Size() != (core.Size{Rows: 4, Cols: 7}) {
		t.Fatalf("unexpected dimensions %+v", g.Size())
	}
	if len(g.Cells()) != 28 {
		t.Fatalf("buffer length %d, expected 28", len(g.Cells()))
	}
}

func TestSetRejectsOutOfRange(t *testing.T) {
	g := fromRows(t, "...", "...")
	for _, c := range []core.Cell{cell(-1, 0), cell(0, -1), cell(2, 0), cell(0, 3)} {
		if g.Set(c.Row, c.Col, true) {
			t.Fatalf("Set(%d, %d) accepted an out of range coordinate", c.Row, c.Col)
		}
		if g.Alive(c.Row, c.Col) {
			t.Fatalf("Alive(%d, %d) reported true outside the grid", c.Row, c.Col)
		}
	}
	if g.Population() != 0 {
		t.Fatalf("out of range writes leaked into the grid")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := fromRows(t,
		"...",
		"OOO",
		"...",
	)

	g.Step()
	expectLive(t, g, cell(0, 1), cell(1, 1), cell(2, 1))

	g.Step()
	expectLive(t, g, cell(1, 0), cell(1, 1), cell(1, 2))
	if g.Generation() != 2 {
		t.Fatalf("generation %d after two steps", g.Generation())
	}
}

// stepInPlace updates the board in a single buffer, so cells visited later
// see the new values of cells visited earlier.
func stepInPlace(g *Grid) {
	cells := g.cur.Cells()
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			idx := r*g.cols + c
			on := Next(cells[idx] == alive, g.Neighbors(r, c))
			cells[idx] = dead
			if on {
				cells[idx] = alive
			}
		}
	}
}

func TestStepDoesNotReadItsOwnWrites(t *testing.T) {
	rows := []string{
		"...",
		"OOO",
		"...",
	}
	naive := fromRows(t, rows...)
	stepInPlace(naive)

	buffered := fromRows(t, rows...)
	buffered.Step()

	if slices.Equal(live(naive), live(buffered)) {
		t.Fatal("in-place update matched buffered update; pattern does not expose aliasing")
	}
	expectLive(t, buffered, cell(0, 1), cell(1, 1), cell(2, 1))
}

func TestUnderpopulation(t *testing.T) {
	g := fromRows(t,
		".....",
		".....",
		"..O..",
		".....",
		".....",
	)
	g.Step()
	expectLive(t, g)
}

func TestOverpopulation(t *testing.T) {
	g := fromRows(t,
		"O.O",
		".O.",
		"O.O",
	)
	if n := g.Neighbors(1, 1); n != 4 {
		t.Fatalf("center has %d neighbors, expected 4", n)
	}
	g.Step()
	if g.Alive(1, 1) {
		t.Fatal("live cell with 4 neighbors survived")
	}
}

func TestBirthRequiresExactlyThree(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want bool
	}{
		{"two", []string{"OO.", "...", "..."}, false},
		{"three", []string{"OOO", "...", "..."}, true},
		{"four", []string{"OOO", "...", "O.."}, false},
	}
	for _, tc := range cases {
		g := fromRows(t, tc.rows...)
		g.Step()
		if got := g.Alive(1, 1); got != tc.want {
			t.Fatalf("%s neighbors: center alive=%v, expected %v", tc.name, got, tc.want)
		}
	}
}

func TestSurvival(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8} {
		want := n == 2 || n == 3
		if got := Next(true, n); got != want {
			t.Fatalf("Next(alive, %d) = %v, expected %v", n, got, want)
		}
		want = n == 3
		if got := Next(false, n); got != want {
			t.Fatalf("Next(dead, %d) = %v, expected %v", n, got, want)
		}
	}
}

func TestCornerCellDies(t *testing.T) {
	g := fromRows(t,
		"O...",
		"....",
		"....",
		"....",
	)
	if n := g.Neighbors(0, 0); n != 0 {
		t.Fatalf("corner has %d neighbors", n)
	}
	g.Step()
	expectLive(t, g)
}

func TestEdgesDoNotWrap(t *testing.T) {
	g := fromRows(t,
		"..O",
		"..O",
		"..O",
	)
	if n := g.Neighbors(1, 0); n != 0 {
		t.Fatalf("left edge sees %d neighbors across the right edge", n)
	}
	g.Step()
	expectLive(t, g, cell(1, 1), cell(1, 2))
}

func TestThinGrids(t *testing.T) {
	g := fromRows(t, "OOO")
	g.Step()
	expectLive(t, g, cell(0, 1))

	g = fromRows(t, "O", "O", "O")
	g.Step()
	expectLive(t, g, cell(1, 0))

	g = fromRows(t, "O")
	g.Step()
	expectLive(t, g)
}

func TestRandomizeLiveCellsInBounds(t *testing.T) {
	g, err := New(17, 23, WithSeed(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Randomize()

	cells := live(g)
	if len(cells) == 0 || len(cells) == 17*23 {
		t.Fatalf("randomized grid has %d live cells out of %d", len(cells), 17*23)
	}
	if len(cells) != g.Population() {
		t.Fatalf("LiveCells yielded %d cells, Population reports %d", len(cells), g.Population())
	}
	seen := make(map[core.Cell]bool, len(cells))
	for i, c := range cells {
		if c.Row < 0 || c.Row >= 17 || c.Col < 0 || c.Col >= 23 {
			t.Fatalf("cell %v out of bounds", c)
		}
		if seen[c] {
			t.Fatalf("cell %v enumerated twice", c)
		}
		seen[c] = true
		if i > 0 {
			prev := cells[i-1]
			if prev.Row > c.Row || (prev.Row == c.Row && prev.Col >= c.Col) {
				t.Fatalf("cells %v then %v are not in row-major order", prev, c)
			}
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	g, err := New(12, 9)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(777)
	first := slices.Clone(g.Cells())
	g.Step()
	g.Reset(777)
	if !slices.Equal(first, g.Cells()) {
		t.Fatal("Reset with the same seed produced different boards")
	}
	if g.Generation() != 0 {
		t.Fatalf("Reset left generation at %d", g.Generation())
	}
}

func TestLiveCellsSnapshot(t *testing.T) {
	g := fromRows(t,
		"...",
		"OOO",
		"...",
	)
	seq := g.LiveCells()
	before := slices.Collect(seq)

	g.Step()
	g.Step()
	g.Step()

	if again := slices.Collect(seq); !slices.Equal(before, again) {
		t.Fatalf("restarted sequence %v differs from %v", again, before)
	}

	for c := range seq {
		if c != cell(1, 0) {
			t.Fatalf("first cell %v, expected {1 0}", c)
		}
		break
	}
}

func TestClear(t *testing.T) {
	g, err := New(5, 5, WithSeed(3))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Randomize()
	g.Step()
	g.Clear()
	if g.Population() != 0 || g.Generation() != 0 {
		t.Fatalf("Clear left population=%d generation=%d", g.Population(), g.Generation())
	}
}
