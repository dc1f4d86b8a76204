//go:build ebiten

package ui

import (
	"image/color"

	"lifeboard/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay outlines the board cell under the cursor.
type Overlay struct {
	layout   render.Layout
	row, col int
	hovering bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for the board layout.
func NewOverlay(l render.Layout) *Overlay {
	o := &Overlay{layout: l}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell.
func (o *Overlay) Update() {
	x, y := ebiten.CursorPosition()
	o.row, o.col, o.hovering = o.layout.CellAt(x, y)
}

// Hovered returns the cell under the cursor, if any.
func (o *Overlay) Hovered() (row, col int, ok bool) {
	return o.row, o.col, o.hovering
}

// Draw paints a translucent highlight over the hovered cell.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.hovering {
		return
	}
	x, y := o.layout.CellOrigin(o.row, o.col)
	size := float64(o.layout.CellSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 64})
	screen.DrawImage(o.pixel, op)
}
