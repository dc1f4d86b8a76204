package render

import (
	"bufio"
	"io"

	"github.com/pkg/errors"

	"lifeboard/pkg/sims/life"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	ansiClear = "\x1b[H\x1b[2J"
)

// Terminal draws boards as text frames on an io.Writer.
type Terminal struct {
	w io.Writer
	// NoClear suppresses the ANSI clear sequence, for logs and tests.
	NoClear bool
}

// NewTerminal returns a renderer writing to w.
func NewTerminal(w io.Writer) *Terminal { return &Terminal{w: w} }

// Draw writes one frame: an optional status line followed by the board.
func (t *Terminal) Draw(g *life.Grid, status string) error {
	bw := bufio.NewWriter(t.w)
	if !t.NoClear {
		bw.WriteString(ansiClear)
	}
	if status != "" {
		bw.WriteString(status)
		bw.WriteByte('\n')
	}
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if g.Alive(r, c) {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Terminal.Draw] flush")
}
