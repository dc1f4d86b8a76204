//go:build !ebiten

package ui

import (
	"log"

	"lifeboard/internal/core"
)

// Controller is what the HUD drives: the run commands plus the tunables.
type Controller interface {
	Commander
	core.ParameterControlsProvider
	Parameters() core.ParameterSnapshot
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Controller, int, *log.Logger) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
