// Package term runs a simulation headless and draws it as text.
package term

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeboard/internal/driver"
	"lifeboard/pkg/sims/life"
)

// Simulation is the part of the driver the runner needs.
type Simulation interface {
	Start()
	Stop()
	State() driver.State
	Halted() <-chan struct{}
}

// Drawer renders one frame.
type Drawer interface {
	Draw(g *life.Grid, status string) error
}

// Runner steps a simulation on its own clock and redraws it periodically
// until the context ends or the simulation halts on its own, for example
// at its generation limit.
type Runner struct {
	Sim     Simulation
	Out     Drawer
	Refresh time.Duration
	Logger  *log.Logger
}

var errHalted = errors.New("simulation halted")

// Run blocks until ctx is done or the simulation stops running. The
// simulation is stopped on return and the final frame is drawn.
func (r *Runner) Run(ctx context.Context) error {
	logger := r.Logger
	if logger == nil {
		logger = log.Default()
	}
	refresh := r.Refresh
	if refresh <= 0 {
		refresh = 100 * time.Millisecond
	}

	r.Sim.Start()
	halted := r.Sim.Halted()
	logger.Printf("started: speed=%dms", r.Sim.State().Speed)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ticker := time.NewTicker(refresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				if err := r.draw(); err != nil {
					return err
				}
			}
		}
	})
	g.Go(func() error {
		select {
		case <-ctx.Done():
			return nil
		case <-halted:
			return errHalted
		}
	})

	err := g.Wait()
	r.Sim.Stop()
	s := r.Sim.State()
	logger.Printf("stopped: generation=%d population=%d", s.Generation, s.Grid.Population())
	if errors.Is(err, errHalted) {
		err = nil
	}
	if drawErr := r.draw(); err == nil {
		err = drawErr
	}
	return err
}

func (r *Runner) draw() error {
	s := r.Sim.State()
	status := fmt.Sprintf("Generation: %d | Population: %d | Speed: %dms", s.Generation, s.Grid.Population(), s.Speed)
	return errors.Wrap(r.Out.Draw(s.Grid, status), "[Runner.draw]")
}
