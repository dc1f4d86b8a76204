package life

import (
	"math/rand/v2"
	"strings"

	"github.com/pkg/errors"

	"lifeboard/pkg/core"
)

const (
	// DefaultRows and DefaultCols are the board dimensions used by the app.
	DefaultRows = 40
	DefaultCols = 60

	// DefaultDensity is the probability of a cell starting alive in a random fill.
	DefaultDensity = 0.3
)

var (
	// ErrInvalidSize is returned for non-positive or ragged dimensions.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrInvalidDensity is returned for fill probabilities outside [0, 1].
	ErrInvalidDensity = errors.New("density must be within [0, 1]")
	// ErrInvalidPattern is returned by Parse for unknown cell characters.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Grid is an immutable Game of Life board. Every operation that changes
// cells returns a new Grid, so a *Grid can be shared as a read-only snapshot.
type Grid struct {
	cells *core.ByteGrid
}

// NewEmpty returns a rows x cols grid with every cell dead.
func NewEmpty(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewEmpty] %dx%d", rows, cols)
	}
	return &Grid{cells: core.NewByteGrid(rows, cols)}, nil
}

// NewRandom returns a grid where each cell is independently alive with
// probability density. Pass core.NewRNG(seed).Source() for a reproducible board.
func NewRandom(rows, cols int, density float64, rng *rand.Rand) (*Grid, error) {
	if density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidDensity, "[NewRandom] density %v", density)
	}
	g, err := NewEmpty(rows, cols)
	if err != nil {
		return nil, err
	}
	core.FillChance(rng, g.cells.Cells(), density)
	return g, nil
}

// FromRows builds a grid from a rectangular matrix; any non-zero value is alive.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidSize, "[FromRows] no rows")
	}
	g, err := NewEmpty(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	cells := g.cells.Cells()
	for r, row := range rows {
		if len(row) != g.cells.Cols {
			return nil, errors.Wrapf(ErrInvalidSize, "[FromRows] row %d has %d cells, want %d", r, len(row), g.cells.Cols)
		}
		for c, v := range row {
			if v != 0 {
				cells[g.cells.Index(r, c)] = 1
			}
		}
	}
	return g, nil
}

// Parse builds a grid from plaintext rows where 'O' or '*' is alive and '.'
// is dead.
func Parse(lines ...string) (*Grid, error) {
	rows := make([][]uint8, len(lines))
	for r, line := range lines {
		rows[r] = make([]uint8, 0, len(line))
		for c, ch := range line {
			switch ch {
			case 'O', '*':
				rows[r] = append(rows[r], 1)
			case '.':
				rows[r] = append(rows[r], 0)
			default:
				return nil, errors.Wrapf(ErrInvalidPattern, "[Parse] %q at row %d col %d", ch, r, c)
			}
		}
	}
	return FromRows(rows)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.cells.Rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cells.Cols }

// Size returns the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{Rows: g.cells.Rows, Cols: g.cells.Cols} }

// Alive reports whether (row, col) is alive. Coordinates outside the grid are dead.
func (g *Grid) Alive(row, col int) bool { return g.cells.At(row, col) != 0 }

// Cells returns a row-major copy of the cell values (1 alive, 0 dead).
func (g *Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells.Cells()))
	copy(out, g.cells.Cells())
	return out
}

// Population counts live cells.
func (g *Grid) Population() (count int) {
	for _, v := range g.cells.Cells() {
		count += int(v)
	}
	return
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.Rows() != other.Rows() || g.Cols() != other.Cols() {
		return false
	}
	a, b := g.cells.Cells(), other.cells.Cells()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String renders the grid in the same plaintext form Parse accepts.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.Cols() + 1) * g.Rows())
	for r := 0; r < g.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Blank returns an all-dead grid with the same dimensions.
func (g *Grid) Blank() *Grid {
	return &Grid{cells: core.NewByteGrid(g.Rows(), g.Cols())}
}

// Toggle returns a copy of the grid with the cell at (row, col) flipped.
func (g *Grid) Toggle(row, col int) (*Grid, error) {
	if !g.cells.In(row, col) {
		return nil, errors.Wrapf(ErrOutOfBounds, "[Toggle] (%d,%d) outside %dx%d", row, col, g.Rows(), g.Cols())
	}
	next := &Grid{cells: g.cells.Clone()}
	cells := next.cells.Cells()
	idx := next.cells.Index(row, col)
	cells[idx] ^= 1
	return next, nil
}

// LiveNeighbors counts live cells in the Moore neighbourhood of (row, col).
// Neighbours outside the grid count as dead; the board does not wrap.
func (g *Grid) LiveNeighbors(row, col int) int {
	count := 0
	for _, off := range Neighborhood {
		count += int(g.cells.At(row+off.DRow, col+off.DCol))
	}
	return count
}

// Next computes the following generation. Every cell is evaluated against
// the receiver, never against the partially built result.
func (g *Grid) Next() *Grid {
	next := &Grid{cells: core.NewByteGrid(g.Rows(), g.Cols())}
	out := next.cells.Cells()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if Rule(g.Alive(r, c), g.LiveNeighbors(r, c)) {
				out[next.cells.Index(r, c)] = 1
			}
		}
	}
	return next
}
