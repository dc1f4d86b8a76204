// Package sweep measures how random boards evolve across fill densities.
package sweep

import (
	"context"
	"math"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	pcore "lifeboard/pkg/core"
	"lifeboard/pkg/sims/life"
)

// Params describes one sweep.
type Params struct {
	Rows, Cols int
	Steps      int
	Trials     int
	Workers    int
	Densities  []float64
	Seed       int64
}

// Result aggregates the trials of one density.
type Result struct {
	Density        float64
	Trials         int
	Settled        int
	MeanPopulation float64
	// MeanSettle and SettledPopulation average over settled trials only.
	MeanSettle        float64
	SettledPopulation float64
}

type trial struct {
	population int
	settledAt  int
	settled    bool
}

// Densities returns from, from+step, ... up to and including to.
func Densities(from, to, step float64) []float64 {
	if step <= 0 || to < from {
		return nil
	}
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Round((from+float64(i)*step)*1e6) / 1e6
	}
	return out
}

// Run simulates Trials boards per density for up to Steps generations each.
// Trial t of every density uses seed Seed+t, so densities are compared on
// the same random streams.
func Run(ctx context.Context, p Params) ([]Result, error) {
	if p.Steps <= 0 || p.Trials <= 0 {
		return nil, errors.Errorf("[sweep.Run] steps=%d trials=%d must be positive", p.Steps, p.Trials)
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	trials := make([][]trial, len(p.Densities))
	for i := range trials {
		trials[i] = make([]trial, p.Trials)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for di, density := range p.Densities {
		for ti := 0; ti < p.Trials; ti++ {
			g.Go(func() error {
				res, err := runTrial(ctx, p.Rows, p.Cols, p.Steps, density, p.Seed+int64(ti))
				if err != nil {
					return err
				}
				trials[di][ti] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, len(p.Densities))
	for di, density := range p.Densities {
		results[di] = aggregate(density, trials[di])
	}
	return results, nil
}

func aggregate(density float64, trials []trial) Result {
	r := Result{Density: density, Trials: len(trials)}
	if len(trials) == 0 {
		return r
	}
	var popSum, settledPop, settleSum int
	for _, t := range trials {
		popSum += t.population
		if t.settled {
			r.Settled++
			settleSum += t.settledAt
			settledPop += t.population
		}
	}
	r.MeanPopulation = float64(popSum) / float64(len(trials))
	if r.Settled > 0 {
		r.MeanSettle = float64(settleSum) / float64(r.Settled)
		r.SettledPopulation = float64(settledPop) / float64(r.Settled)
	}
	return r
}

// MostPopulousSettled returns the result with the highest population among
// settled trials. ok is false when no density settled.
func MostPopulousSettled(results []Result) (best Result, ok bool) {
	for _, r := range results {
		if r.Settled == 0 {
			continue
		}
		if !ok || r.SettledPopulation > best.SettledPopulation {
			best, ok = r, true
		}
	}
	return best, ok
}

// runTrial evolves one board until it repeats with period one or two, or
// the step budget runs out.
func runTrial(ctx context.Context, rows, cols, steps int, density float64, seed int64) (trial, error) {
	grid, err := life.NewRandom(rows, cols, density, pcore.NewRNG(seed).Source())
	if err != nil {
		return trial{}, errors.Wrap(err, "[runTrial]")
	}
	var prev *life.Grid
	for gen := 1; gen <= steps; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return trial{}, err
			}
		}
		next := grid.Next()
		if next.Equal(grid) || next.Equal(prev) {
			return trial{population: next.Population(), settledAt: gen, settled: true}, nil
		}
		prev, grid = grid, next
	}
	return trial{population: grid.Population()}, nil
}
