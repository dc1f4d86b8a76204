package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeboard/internal/app"
	"lifeboard/internal/core"
	"lifeboard/internal/driver"
	"lifeboard/internal/render"
	"lifeboard/internal/term"
)

func main() {
	cfg, err := app.ParseArgs("life-term", os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The terminal has no game loop to drive a frame clock.
	drv, err := driver.New(cfg.DriverOptions(core.WallClock{}))
	if err != nil {
		log.Fatalf("driver: %v", err)
	}
	if err := drv.Randomize(); err != nil {
		log.Fatalf("randomize: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := &term.Runner{
		Sim:     drv,
		Out:     render.NewTerminal(os.Stdout),
		Refresh: cfg.Refresh(),
		Logger:  log.New(os.Stderr, "life-term: ", log.LstdFlags),
	}
	if err := runner.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
