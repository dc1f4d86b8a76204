package render

import "image/color"

// Layout maps between board cells and screen pixels. Cells are square and
// separated, and surrounded, by a gap of Gap pixels.
type Layout struct {
	Rows     int
	Cols     int
	CellSize int
	Gap      int
}

// Width returns the board width in pixels.
func (l Layout) Width() int { return l.Cols*(l.CellSize+l.Gap) + l.Gap }

// Height returns the board height in pixels.
func (l Layout) Height() int { return l.Rows*(l.CellSize+l.Gap) + l.Gap }

// CellOrigin returns the top-left pixel of (row, col).
func (l Layout) CellOrigin(row, col int) (x, y int) {
	pitch := l.CellSize + l.Gap
	return l.Gap + col*pitch, l.Gap + row*pitch
}

// CellAt maps a pixel to the cell under it. Pixels on a gap line or outside
// the board report ok=false.
func (l Layout) CellAt(x, y int) (row, col int, ok bool) {
	pitch := l.CellSize + l.Gap
	if pitch <= 0 || x < l.Gap || y < l.Gap {
		return 0, 0, false
	}
	col, cx := (x-l.Gap)/pitch, (x-l.Gap)%pitch
	row, cy := (y-l.Gap)/pitch, (y-l.Gap)%pitch
	if row >= l.Rows || col >= l.Cols || cx >= l.CellSize || cy >= l.CellSize {
		return 0, 0, false
	}
	return row, col, true
}

// Palette holds the board colours.
type Palette struct {
	Alive color.Color
	Dead  color.Color
	Gap   color.Color
}

// DefaultPalette is green on near-black with dark grey grid lines.
func DefaultPalette() Palette {
	return Palette{
		Alive: color.RGBA{R: 0x00, G: 0xff, B: 0x41, A: 0xff},
		Dead:  color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff},
		Gap:   color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
	}
}
