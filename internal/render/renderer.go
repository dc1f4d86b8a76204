//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads board cells into a single image and draws it.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter sized for the layout.
func NewGridPainter(l Layout) *GridPainter {
	gp := &GridPainter{layout: l, buf: make([]byte, 4*l.Width()*l.Height())}
	gp.img = ebiten.NewImage(l.Width(), l.Height())
	return gp
}

// Draw renders cells at the top-left corner of dst.
func (gp *GridPainter) Draw(dst *ebiten.Image, cells []uint8, p Palette) {
	if len(cells) != gp.layout.Rows*gp.layout.Cols {
		return
	}
	fillBoardRGBA(gp.buf, gp.layout, cells, p)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}
