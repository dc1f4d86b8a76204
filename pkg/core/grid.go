package core

// Size describes the dimensions of a grid in cells.
type Size struct {
	Rows int
	Cols int
}

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
// Coordinates outside the grid are never wrapped.
type ByteGrid struct {
	Rows, Cols int
	data       []uint8
}

// NewByteGrid allocates a zeroed grid. Callers validate dimensions.
func NewByteGrid(rows, cols int) *ByteGrid {
	return &ByteGrid{Rows: rows, Cols: cols, data: make([]uint8, rows*cols)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// In reports whether (row, col) lies inside [0, Rows) x [0, Cols).
func (g *ByteGrid) In(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Index returns the linear slice index for (row, col).
func (g *ByteGrid) Index(row, col int) int { return row*g.Cols + col }

// At returns the value at (row, col), or 0 outside the grid.
func (g *ByteGrid) At(row, col int) uint8 {
	if !g.In(row, col) {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// Clone returns a deep copy.
func (g *ByteGrid) Clone() *ByteGrid {
	c := &ByteGrid{Rows: g.Rows, Cols: g.Cols, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}
