package render

import "image/color"

// fillBoardRGBA paints binary cell data (0/1, row-major) into an RGBA buffer
// of l.Width() x l.Height() pixels.
func fillBoardRGBA(buf []byte, l Layout, cells []uint8, p Palette) {
	gap := rgba(p.Gap)
	for i := 0; i+3 < len(buf); i += 4 {
		copy(buf[i:i+4], gap[:])
	}
	on, off := rgba(p.Alive), rgba(p.Dead)
	stride := l.Width() * 4
	for idx, c := range cells {
		row, col := idx/l.Cols, idx%l.Cols
		if row >= l.Rows {
			return
		}
		px := off
		if c != 0 {
			px = on
		}
		x0, y0 := l.CellOrigin(row, col)
		for y := y0; y < y0+l.CellSize; y++ {
			base := y*stride + x0*4
			for x := 0; x < l.CellSize; x++ {
				copy(buf[base+x*4:base+x*4+4], px[:])
			}
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
