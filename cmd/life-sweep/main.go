package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"lifeboard/internal/sweep"
	"lifeboard/pkg/sims/life"
)

func main() {
	steps := flag.Int("steps", 1000, "generations to simulate per trial")
	trials := flag.Int("trials", 16, "random boards per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	rows := flag.Int("rows", life.DefaultRows, "board rows")
	cols := flag.Int("cols", life.DefaultCols, "board columns")
	from := flag.Float64("from", 0.05, "lowest density")
	to := flag.Float64("to", 0.95, "highest density")
	step := flag.Float64("step", 0.05, "density increment")
	seed := flag.Int64("seed", 1337, "base seed")
	flag.Parse()

	densities := sweep.Densities(*from, *to, *step)
	if len(densities) == 0 {
		log.Fatalf("empty density range %v..%v step %v", *from, *to, *step)
	}

	fmt.Printf("Sweeping %d densities x %d trials (%d workers, %d steps, %dx%d)\n",
		len(densities), *trials, *workers, *steps, *rows, *cols)

	start := time.Now()
	results, err := sweep.Run(context.Background(), sweep.Params{
		Rows:      *rows,
		Cols:      *cols,
		Steps:     *steps,
		Trials:    *trials,
		Workers:   *workers,
		Densities: densities,
		Seed:      *seed,
	})
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "density\tsettled\tmean settle gen\tsettled pop\tmean final pop")
	for _, r := range results {
		fmt.Fprintf(tw, "%.2f\t%d/%d\t%.1f\t%.1f\t%.1f\n", r.Density, r.Settled, r.Trials, r.MeanSettle, r.SettledPopulation, r.MeanPopulation)
	}
	tw.Flush()

	best, ok := sweep.MostPopulousSettled(results)
	if !ok {
		fmt.Printf("\nNo density settled within %d steps (elapsed %s)\n", *steps, elapsed.Round(time.Millisecond))
		return
	}
	fmt.Printf("\nMost populous after settling: density=%.2f pop=%.1f over %d/%d trials (elapsed %s)\n",
		best.Density, best.SettledPopulation, best.Settled, best.Trials, elapsed.Round(time.Millisecond))
}
