package life

import (
	"errors"
	"slices"
	"testing"

	"lifeboard/pkg/core"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := Parse(lines...)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return g
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := mustParse(t,
		".....",
		"..O..",
		"..O..",
		"..O..",
		".....",
	)
	horizontal := mustParse(t,
		".....",
		".....",
		".OOO.",
		".....",
		".....",
	)

	first := vertical.Next()
	if !first.Equal(horizontal) {
		t.Fatalf("after one step got\n%s\nwant\n%s", first, horizontal)
	}
	second := first.Next()
	if !second.Equal(vertical) {
		t.Fatalf("after second step got\n%s\nwant\n%s", second, vertical)
	}
}

func TestBlockStillLife(t *testing.T) {
	block := mustParse(t,
		"....",
		".OO.",
		".OO.",
		"....",
	)
	if next := block.Next(); !next.Equal(block) {
		t.Fatalf("block changed:\n%s", next)
	}
}

func TestCornerCellDiesWithoutWraparound(t *testing.T) {
	g, err := NewEmpty(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	// Live cells on the opposite edges would be neighbours of (0,0) on a torus.
	for _, rc := range [][2]int{{0, 0}, {3, 3}, {0, 3}, {3, 0}} {
		if g, err = g.Toggle(rc[0], rc[1]); err != nil {
			t.Fatal(err)
		}
	}
	if n := g.LiveNeighbors(0, 0); n != 0 {
		t.Fatalf("corner neighbours = %d, want 0", n)
	}
	if next := g.Next(); next.Population() != 0 {
		t.Fatalf("isolated corners survived:\n%s", next)
	}
}

func TestLiveNeighbors(t *testing.T) {
	g := mustParse(t,
		"OOO",
		"OOO",
		"OOO",
	)
	tests := []struct {
		row, col int
		want     int
	}{
		{1, 1, 8},
		{0, 0, 3},
		{0, 1, 5},
		{2, 2, 3},
		{1, 2, 5},
	}
	for _, tt := range tests {
		if got := g.LiveNeighbors(tt.row, tt.col); got != tt.want {
			t.Errorf("LiveNeighbors(%d,%d) = %d, want %d", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestRule(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := Rule(true, n); got != wantAlive {
			t.Errorf("Rule(alive, %d) = %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := Rule(false, n); got != wantBorn {
			t.Errorf("Rule(dead, %d) = %v, want %v", n, got, wantBorn)
		}
	}
}

func TestNextIsPureAndPreservesSize(t *testing.T) {
	g, err := NewRandom(DefaultRows, DefaultCols, DefaultDensity, core.NewRNG(7).Source())
	if err != nil {
		t.Fatal(err)
	}
	before := g.Cells()

	a := g.Next()
	b := g.Next()
	if !a.Equal(b) {
		t.Fatal("Next is not deterministic")
	}
	if a.Rows() != g.Rows() || a.Cols() != g.Cols() {
		t.Fatalf("Next changed size to %dx%d", a.Rows(), a.Cols())
	}
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("Next mutated its receiver")
	}
}

func TestToggleTwiceRestoresGrid(t *testing.T) {
	g, err := NewRandom(6, 9, 0.5, core.NewRNG(3).Source())
	if err != nil {
		t.Fatal(err)
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			once, err := g.Toggle(r, c)
			if err != nil {
				t.Fatal(err)
			}
			if once.Alive(r, c) == g.Alive(r, c) {
				t.Fatalf("Toggle(%d,%d) did not flip the cell", r, c)
			}
			twice, err := once.Toggle(r, c)
			if err != nil {
				t.Fatal(err)
			}
			if !twice.Equal(g) {
				t.Fatalf("Toggle(%d,%d) twice changed the grid", r, c)
			}
		}
	}
}

func TestToggleOutOfBounds(t *testing.T) {
	g, err := NewEmpty(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		next, err := g.Toggle(rc[0], rc[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle(%d,%d) err = %v, want ErrOutOfBounds", rc[0], rc[1], err)
		}
		if next != nil {
			t.Fatal("Toggle returned a grid on error")
		}
	}
	if g.Population() != 0 {
		t.Fatal("failed toggle mutated the grid")
	}
}

func TestNewEmptyRejectsInvalidSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		if _, err := NewEmpty(dims[0], dims[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewEmpty(%d,%d) err = %v, want ErrInvalidSize", dims[0], dims[1], err)
		}
	}
}

func TestNewRandom(t *testing.T) {
	a, err := NewRandom(10, 10, 0.3, core.NewRNG(42).Source())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRandom(10, 10, 0.3, core.NewRNG(42).Source())
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed produced different boards")
	}

	full, err := NewRandom(4, 4, 1, core.NewRNG(1).Source())
	if err != nil {
		t.Fatal(err)
	}
	if full.Population() != 16 {
		t.Fatalf("density 1 population = %d, want 16", full.Population())
	}
	empty, err := NewRandom(4, 4, 0, core.NewRNG(1).Source())
	if err != nil {
		t.Fatal(err)
	}
	if empty.Population() != 0 {
		t.Fatalf("density 0 population = %d, want 0", empty.Population())
	}

	if _, err := NewRandom(4, 4, 1.5, core.NewRNG(1).Source()); !errors.Is(err, ErrInvalidDensity) {
		t.Fatalf("density 1.5 err = %v, want ErrInvalidDensity", err)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("O.", "x."); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("err = %v, want ErrInvalidPattern", err)
	}
	if _, err := Parse("O..", "O."); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("ragged err = %v, want ErrInvalidSize", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	lines := []string{".O.", "..O", "OOO"}
	g := mustParse(t, lines...)
	want := ".O.\n..O\nOOO"
	if g.String() != want {
		t.Fatalf("String() = %q, want %q", g.String(), want)
	}
}
