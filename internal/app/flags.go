package app

import (
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"

	"lifeboard/internal/core"
	"lifeboard/internal/driver"
	"lifeboard/internal/render"
	"lifeboard/pkg/sims/life"
)

const (
	// ClockFrame steps the simulation from the game loop, one frame at a time.
	ClockFrame = "frame"
	// ClockWall steps the simulation on real timers.
	ClockWall = "wall"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line and file parameters for the application.
type Config struct {
	Rows           int     `json:"rows"`
	Cols           int     `json:"cols"`
	SpeedMS        int     `json:"speed_ms"`
	Density        float64 `json:"density"`
	Seed           int64   `json:"seed"`
	CellSize       int     `json:"cell_size"`
	TPS            int     `json:"tps"`
	Clock          string  `json:"clock"`
	MaxGenerations int     `json:"max_generations"`
	RefreshMS      int     `json:"refresh_ms"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Rows:      life.DefaultRows,
		Cols:      life.DefaultCols,
		SpeedMS:   driver.DefaultSpeed,
		Density:   life.DefaultDensity,
		CellSize:  12,
		TPS:       60,
		Clock:     ClockFrame,
		RefreshMS: 100,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "board rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "board columns")
	fs.IntVar(&c.SpeedMS, "speed", c.SpeedMS, "step interval in milliseconds (10-500)")
	fs.Float64Var(&c.Density, "density", c.Density, "probability of a live cell on Random")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for Random (0 uses the clock)")
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Clock, "clock", c.Clock, "step scheduling: frame or wall")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations (0 runs forever)")
	fs.IntVar(&c.RefreshMS, "refresh", c.RefreshMS, "terminal redraw interval in milliseconds")
}

// LoadConfig reads a JSON configuration file on top of the defaults.
func LoadConfig(filename string) (*Config, error) {
	config := NewConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseArgs builds a Config from defaults, an optional -config file and the
// remaining flags, in increasing priority.
func ParseArgs(name string, args []string) (*Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var path string
	fs.StringVar(&path, "config", "", "JSON config file")
	cfg := NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[ParseArgs]")
	}

	if path != "" {
		fromFile, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		overlay := flag.NewFlagSet(name, flag.ContinueOnError)
		fromFile.Bind(overlay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if f.Name == "config" || setErr != nil {
				return
			}
			setErr = overlay.Set(f.Name, f.Value.String())
		})
		if setErr != nil {
			return nil, errors.Wrap(setErr, "[ParseArgs]")
		}
		cfg = fromFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the driver and renderer rely on.
func (c *Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board %dx%d", c.Rows, c.Cols)
	case c.SpeedMS < driver.MinSpeed || c.SpeedMS > driver.MaxSpeed:
		return errors.Wrapf(ErrInvalidConfig, "speed %dms not in [%d, %d]", c.SpeedMS, driver.MinSpeed, driver.MaxSpeed)
	case c.Density < 0 || c.Density > 1:
		return errors.Wrapf(ErrInvalidConfig, "density %v not in [0, 1]", c.Density)
	case c.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "cell size %d", c.CellSize)
	case c.TPS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tps %d", c.TPS)
	case c.Clock != ClockFrame && c.Clock != ClockWall:
		return errors.Wrapf(ErrInvalidConfig, "clock %q", c.Clock)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "max generations %d", c.MaxGenerations)
	case c.RefreshMS <= 0:
		return errors.Wrapf(ErrInvalidConfig, "refresh %dms", c.RefreshMS)
	}
	return nil
}

// DriverOptions converts the config into driver options using clock.
func (c *Config) DriverOptions(clock core.Clock) driver.Options {
	return driver.Options{
		Rows:    c.Rows,
		Cols:    c.Cols,
		Speed:   c.SpeedMS,
		Density: c.Density,
		Seed:    c.Seed,
		Clock:   clock,

		MaxGenerations: c.MaxGenerations,
	}
}

// Layout returns the board pixel layout.
func (c *Config) Layout() render.Layout {
	return render.Layout{Rows: c.Rows, Cols: c.Cols, CellSize: c.CellSize, Gap: 1}
}

// Frame is the duration of one game loop tick.
func (c *Config) Frame() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Refresh is the terminal redraw interval.
func (c *Config) Refresh() time.Duration {
	return time.Duration(c.RefreshMS) * time.Millisecond
}
