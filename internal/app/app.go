//go:build ebiten

package app

import (
	"log"

	"lifeboard/internal/core"
	"lifeboard/internal/driver"
	"lifeboard/internal/render"
	"lifeboard/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the control panel in pixels.
const HUDWidth = 240

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	drv     *driver.Driver
	clock   *core.ManualClock
	cfg     *Config
	layout  render.Layout
	painter *render.GridPainter
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay
	logger  *log.Logger

	wasRunning bool
}

// New constructs a Game. When clock is non-nil it is advanced by one frame
// per Update, so steps run on the game loop.
func New(drv *driver.Driver, clock *core.ManualClock, cfg *Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.Default()
	}
	l := cfg.Layout()
	return &Game{
		drv:     drv,
		clock:   clock,
		cfg:     cfg,
		layout:  l,
		painter: render.NewGridPainter(l),
		palette: render.DefaultPalette(),
		hud:     ui.NewHUD(drv, HUDWidth, logger),
		overlay: ui.NewOverlay(l),
		logger:  logger,
	}
}

// Update handles per-frame input and advances the frame clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			g.apply(action)
		}
	}

	g.overlay.Update()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.overlay.Hovered(); ok {
			if err := g.drv.ToggleCell(row, col); err != nil {
				g.logger.Printf("toggle: %v", err)
			}
		}
	}
	g.hud.Update(g.layout.Width())

	if g.clock != nil {
		g.clock.Advance(g.cfg.Frame())
	}
	s := g.drv.State()
	if g.wasRunning && !s.Running && g.cfg.MaxGenerations > 0 && s.Generation >= g.cfg.MaxGenerations {
		g.logger.Printf("generation limit reached: %d", s.Generation)
	}
	g.wasRunning = s.Running
	return nil
}

// Draw renders the board, the hover highlight and the panel.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.drv.State()
	g.painter.Draw(screen, s.Grid.Cells(), g.palette)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.layout.Width(), h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width() + HUDWidth, max(g.layout.Height(), minPanelHeight)
}

func (g *Game) apply(a ui.Action) {
	if err := ui.Apply(g.drv, a); err != nil {
		g.logger.Printf("%v", err)
	}
}

var keyActions = map[ebiten.Key]ui.Action{
	ebiten.KeySpace: ui.ActionStartStop,
	ebiten.KeyN:     ui.ActionStep,
	ebiten.KeyR:     ui.ActionRandom,
	ebiten.KeyC:     ui.ActionClear,
}

const minPanelHeight = 360
