package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifeboard/internal/core"
	"lifeboard/internal/driver"
)

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs("life", nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 40 || cfg.Cols != 60 || cfg.SpeedMS != 100 || cfg.Density != 0.3 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.Frame() != time.Second/60 {
		t.Fatalf("frame = %v", cfg.Frame())
	}
}

func TestParseArgsFileThenFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.json")
	body := `{"rows": 20, "cols": 30, "speed_ms": 250, "clock": "wall"}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseArgs("life", []string{"-config", path, "-speed", "50"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Rows != 20 || cfg.Cols != 30 {
		t.Fatalf("file values lost: %+v", cfg)
	}
	if cfg.SpeedMS != 50 {
		t.Fatalf("flag did not override file: speed = %d", cfg.SpeedMS)
	}
	if cfg.Clock != ClockWall {
		t.Fatalf("clock = %q", cfg.Clock)
	}
	if cfg.Density != 0.3 {
		t.Fatalf("unset field lost its default: density = %v", cfg.Density)
	}
}

func TestParseArgsRejectsInvalid(t *testing.T) {
	tests := [][]string{
		{"-speed", "5"},
		{"-speed", "501"},
		{"-rows", "0"},
		{"-density", "1.2"},
		{"-clock", "sundial"},
		{"-max-generations", "-1"},
	}
	for _, args := range tests {
		if _, err := ParseArgs("life", args); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseArgs(%v) err = %v, want ErrInvalidConfig", args, err)
		}
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v", err)
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("bad JSON accepted")
	}
}

func TestDriverOptionsBuildDriver(t *testing.T) {
	cfg := NewConfig()
	cfg.Rows, cfg.Cols, cfg.SpeedMS = 8, 9, 20
	d, err := driver.New(cfg.DriverOptions(core.NewManualClock()))
	if err != nil {
		t.Fatal(err)
	}
	s := d.State()
	if s.Grid.Rows() != 8 || s.Grid.Cols() != 9 || s.Speed != 20 {
		t.Fatalf("state = %+v", s)
	}
	if l := cfg.Layout(); l.Width() != 9*13+1 || l.Height() != 8*13+1 {
		t.Fatalf("layout = %dx%d", l.Width(), l.Height())
	}
}

func TestDriverOptionsCarryGenerationLimit(t *testing.T) {
	cfg, err := ParseArgs("life", []string{"-speed", "10", "-max-generations", "3"})
	if err != nil {
		t.Fatal(err)
	}
	clock := core.NewManualClock()
	d, err := driver.New(cfg.DriverOptions(clock))
	if err != nil {
		t.Fatal(err)
	}
	d.Start()
	for i := 0; i < 10; i++ {
		clock.Advance(cfg.Frame())
	}
	if s := d.State(); s.Generation != 3 || s.Running {
		t.Fatalf("generation = %d running = %v, want 3 stopped", s.Generation, s.Running)
	}
}
