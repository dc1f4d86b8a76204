//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/core"
	"lifeboard/internal/driver"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.ParseArgs("life", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		clock      core.Clock = core.WallClock{}
		frameClock *core.ManualClock
	)
	if cfg.Clock == app.ClockFrame {
		frameClock = core.NewManualClock()
		clock = frameClock
	}

	drv, err := driver.New(cfg.DriverOptions(clock))
	if err != nil {
		log.Fatalf("driver: %v", err)
	}

	game := app.New(drv, frameClock, cfg, log.Default())
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	drv.Stop()
}
