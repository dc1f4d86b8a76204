// Package driver runs a Game of Life board over time. A Driver is the only
// writer of its board; callers read snapshots through State.
package driver

import (
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	pcore "lifeboard/pkg/core"
	"lifeboard/pkg/sims/life"
)

const (
	// MinSpeed and MaxSpeed bound the step interval in milliseconds.
	MinSpeed = 10
	MaxSpeed = 500
	// DefaultSpeed is the step interval a new Driver starts with.
	DefaultSpeed = 100

	// ParamSpeed and ParamDensity are the HUD parameter keys.
	ParamSpeed   = "speed_ms"
	ParamDensity = "density"
)

var (
	// ErrSpeedOutOfRange is returned for intervals outside [MinSpeed, MaxSpeed].
	ErrSpeedOutOfRange = errors.New("speed out of range")
	// ErrDensityOutOfRange is returned for fill probabilities outside [0, 1].
	ErrDensityOutOfRange = errors.New("density out of range")
)

// State is a point-in-time copy of the simulation. Grid is immutable and
// safe to keep.
type State struct {
	Grid       *life.Grid
	Generation int
	Running    bool
	Speed      int
	Density    float64
}

// Options configures a new Driver.
type Options struct {
	Rows    int
	Cols    int
	Speed   int
	Density float64
	// Seed drives Randomize. Zero seeds from the wall clock.
	Seed  int64
	Clock core.Clock
	// MaxGenerations stops a run once the generation counter reaches it.
	// Zero means no limit.
	MaxGenerations int
}

// DefaultOptions returns a 40x60 board stepping every 100ms on the wall clock.
func DefaultOptions() Options {
	return Options{
		Rows:    life.DefaultRows,
		Cols:    life.DefaultCols,
		Speed:   DefaultSpeed,
		Density: life.DefaultDensity,
		Clock:   core.WallClock{},
	}
}

// Driver owns the board, the generation counter, the running flag and the
// step interval. At most one step is scheduled at any time.
type Driver struct {
	mu    sync.Mutex
	clock core.Clock
	rng   *pcore.RNG

	grid       *life.Grid
	generation int
	running    bool
	speed      int
	density    float64
	limit      int

	// halted is closed when the current run ends.
	halted  chan struct{}
	pending core.Timer
	// epoch changes whenever the schedule is cancelled; a callback carrying
	// an older epoch does nothing when it fires.
	epoch uint64
}

// New constructs a stopped Driver with an empty board.
func New(opts Options) (*Driver, error) {
	if err := validateSpeed(opts.Speed); err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	if err := validateDensity(opts.Density); err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	grid, err := life.NewEmpty(opts.Rows, opts.Cols)
	if err != nil {
		return nil, errors.Wrap(err, "[New]")
	}
	clock := opts.Clock
	if clock == nil {
		clock = core.WallClock{}
	}
	rng := pcore.NewTimeRNG()
	if opts.Seed != 0 {
		rng = pcore.NewRNG(opts.Seed)
	}
	if opts.MaxGenerations < 0 {
		return nil, errors.Errorf("[New] max generations %d is negative", opts.MaxGenerations)
	}
	halted := make(chan struct{})
	close(halted)
	return &Driver{
		clock:   clock,
		rng:     rng,
		grid:    grid,
		speed:   opts.Speed,
		density: opts.Density,
		limit:   opts.MaxGenerations,
		halted:  halted,
	}, nil
}

// State returns a snapshot of the simulation.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return State{
		Grid:       d.grid,
		Generation: d.generation,
		Running:    d.running,
		Speed:      d.speed,
		Density:    d.density,
	}
}

// Start begins periodic stepping. The first step is scheduled immediately.
// Calling Start while running, or once the generation limit is reached,
// does nothing.
func (d *Driver) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running || d.limitReached() {
		return
	}
	d.running = true
	d.halted = make(chan struct{})
	d.schedule(0)
}

// Halted returns a channel that is closed when the current run ends through
// Stop, Clear or the generation limit. It is already closed while stopped.
func (d *Driver) Halted() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.halted
}

// Stop halts periodic stepping and cancels the pending step. The last
// completed generation is kept.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running {
		return
	}
	d.halt()
}

// Step advances one generation while stopped. It reports false and does
// nothing while running.
func (d *Driver) Step() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.running {
		return false
	}
	d.advance()
	return true
}

// ToggleCell flips one cell in either state. Generation and running state
// are left alone.
func (d *Driver) ToggleCell(row, col int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	next, err := d.grid.Toggle(row, col)
	if err != nil {
		return errors.Wrap(err, "[ToggleCell]")
	}
	d.grid = next
	return nil
}

// Randomize replaces the board with a random fill at the current density
// and resets the generation counter. The running state is unchanged.
func (d *Driver) Randomize() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	size := d.grid.Size()
	next, err := life.NewRandom(size.Rows, size.Cols, d.density, d.rng.Source())
	if err != nil {
		return errors.Wrap(err, "[Randomize]")
	}
	d.grid = next
	d.generation = 0
	return nil
}

// Clear empties the board, resets the generation counter and stops.
func (d *Driver) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grid = d.grid.Blank()
	d.generation = 0
	if d.running {
		d.halt()
	}
}

// SetSpeed changes the interval used for future steps. A step that is
// already scheduled keeps its deadline.
func (d *Driver) SetSpeed(ms int) error {
	if err := validateSpeed(ms); err != nil {
		return errors.Wrap(err, "[SetSpeed]")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.speed = ms
	return nil
}

// SetDensity changes the fill probability used by Randomize.
func (d *Driver) SetDensity(p float64) error {
	if err := validateDensity(p); err != nil {
		return errors.Wrap(err, "[SetDensity]")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.density = p
	return nil
}

// Parameters reports the tunables shown on the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	s := d.State()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			{Key: ParamSpeed, Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Speed)},
			{Key: ParamDensity, Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.Density, 'f', -1, 64)},
		},
	}}}
}

// ParameterControls lists the HUD controls for speed and density.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: ParamSpeed, Label: "Speed (ms)", Type: core.ParamTypeInt, Step: 10, Min: MinSpeed, Max: MaxSpeed, HasMin: true, HasMax: true},
		{Key: ParamDensity, Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.05, Max: 0.95, HasMin: true, HasMax: true},
	}
}

// SetIntParameter implements core.IntParameterSetter.
func (d *Driver) SetIntParameter(key string, value int) bool {
	if key != ParamSpeed {
		return false
	}
	return d.SetSpeed(value) == nil
}

// SetFloatParameter implements core.FloatParameterSetter.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if key != ParamDensity {
		return false
	}
	return d.SetDensity(value) == nil
}

// schedule arms the single pending step. Must be called with d.mu held.
func (d *Driver) schedule(delay time.Duration) {
	epoch := d.epoch
	d.pending = d.clock.AfterFunc(delay, func() { d.fire(epoch) })
}

// cancel drops the pending step. Must be called with d.mu held.
func (d *Driver) cancel() {
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
	d.epoch++
}

// halt ends the current run. Must be called with d.mu held while running.
func (d *Driver) halt() {
	d.running = false
	d.cancel()
	close(d.halted)
}

func (d *Driver) limitReached() bool {
	return d.limit > 0 && d.generation >= d.limit
}

func (d *Driver) fire(epoch uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.running || epoch != d.epoch {
		return
	}
	d.pending = nil
	d.advance()
	if d.limitReached() {
		d.halt()
		return
	}
	d.schedule(time.Duration(d.speed) * time.Millisecond)
}

// advance computes one generation. Must be called with d.mu held.
func (d *Driver) advance() {
	d.grid = d.grid.Next()
	d.generation++
}

func validateSpeed(ms int) error {
	if ms < MinSpeed || ms > MaxSpeed {
		return errors.Wrapf(ErrSpeedOutOfRange, "%dms not in [%d, %d]", ms, MinSpeed, MaxSpeed)
	}
	return nil
}

func validateDensity(p float64) error {
	if p < 0 || p > 1 {
		return errors.Wrapf(ErrDensityOutOfRange, "%v not in [0, 1]", p)
	}
	return nil
}
