//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"

	"lifeboard/internal/core"
	"lifeboard/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controller is what the HUD drives: the run commands plus the tunables.
type Controller interface {
	Commander
	core.ParameterControlsProvider
	Parameters() core.ParameterSnapshot
}

// HUD renders the control panel to the right of the board.
type HUD struct {
	ctrl       Controller
	width      int
	panel      *ebiten.Image
	lastHeight int
	state      driver.State
	snapshot   core.ParameterSnapshot

	buttons      []hudButton
	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	logger       *log.Logger

	pixel *ebiten.Image
}

type hudButton struct {
	action Action
	rect   image.Rectangle
}

// NewHUD constructs a HUD for the controller and panel width.
func NewHUD(ctrl Controller, width int, logger *log.Logger) *HUD {
	if width < 0 {
		width = 0
	}
	if logger == nil {
		logger = log.Default()
	}
	h := &HUD{ctrl: ctrl, width: width, logger: logger}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := ctrl.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, c := range controls {
		h.controls[i] = hudControlState{control: c, value: "--"}
	}
	if setter, ok := ctrl.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := ctrl.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	h.layout()
	return h
}

// Update refreshes the cached state and handles clicks inside the panel.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.state = h.ctrl.State()
	h.snapshot = h.ctrl.Parameters()
	for i := range h.controls {
		h.controls[i].refresh(h.snapshot)
	}
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	h.drawButtons()
	h.drawControls()
	h.drawHelp()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for _, b := range h.buttons {
		if !pointInRect(px, my, b.rect) {
			continue
		}
		if err := Apply(h.ctrl, b.action); err != nil {
			h.logger.Printf("hud: %v", err)
		}
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			state.adjust(-1, h.intSetter, h.floatSetter)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			state.adjust(1, h.intSetter, h.floatSetter)
			return
		}
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Conway's Game of Life", face, panelPadding, y, colorTitle)
	y += infoSpacing
	text.Draw(h.panel, fmt.Sprintf("Generation: %d", h.state.Generation), face, panelPadding, y, colorText)
	if h.state.Grid != nil {
		y += infoLine
		text.Draw(h.panel, fmt.Sprintf("Population: %d", h.state.Grid.Population()), face, panelPadding, y, colorMuted)
	}
}

func (h *HUD) drawButtons() {
	for _, b := range h.buttons {
		bg := colorButton
		switch {
		case !b.action.Enabled(h.state):
			bg = colorButtonOff
		case b.action == ActionStartStop && h.state.Running:
			bg = colorStop
		case b.action == ActionStartStop:
			bg = colorStart
		case b.action == ActionRandom:
			bg = colorRandom
		}
		h.drawButton(b.rect, b.action.Label(h.state), bg, b.action.Enabled(h.state))
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, colorText)
		valueColor := colorText
		if !state.hasValue {
			valueColor = colorMuted
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minusOK := state.target(-1)
		_, plusOK := state.target(1)
		h.drawButton(state.minusRect, "-", colorButton, minusOK)
		h.drawButton(state.plusRect, "+", colorButton, plusOK)
	}
}

func (h *HUD) drawHelp() {
	face := basicfont.Face7x13
	y := h.lastHeight - panelPadding - len(helpLines)*infoLine + headerBaseline
	for _, line := range helpLines {
		text.Draw(h.panel, line, face, panelPadding, y, colorMuted)
		y += infoLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, bg color.RGBA, enabled bool) {
	if h.pixel == nil {
		return
	}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = colorButtonOff
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	colWidth := (h.width - 2*panelPadding - buttonGap) / 2
	h.buttons = h.buttons[:0]
	for i, a := range Actions {
		col, row := i%2, i/2
		x := panelPadding + col*(colWidth+buttonGap)
		y := buttonsTop + row*(actionHeight+buttonGap)
		h.buttons = append(h.buttons, hudButton{action: a, rect: image.Rect(x, y, x+colWidth, y+actionHeight)})
	}
	rows := (len(Actions) + 1) / 2
	controlsTop := buttonsTop + rows*(actionHeight+buttonGap) + buttonGap
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

var helpLines = []string{
	"Click cells to toggle",
	"Space start/stop  N step",
	"R random  C clear  Q quit",
}

var (
	colorTitle     = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorText      = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorMuted     = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	colorButton    = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	colorButtonOff = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	colorStart     = color.RGBA{R: 0, G: 160, B: 40, A: 255}
	colorStop      = color.RGBA{R: 200, G: 50, B: 50, A: 255}
	colorRandom    = color.RGBA{R: 68, G: 68, B: 255, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	actionHeight   = 28
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 28
	infoLine       = 16
	buttonsTop     = panelPadding + headerBaseline + infoSpacing + 2*infoLine
)
