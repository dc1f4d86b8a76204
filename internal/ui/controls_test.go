package ui

import (
	"image"
	"testing"

	"lifeboard/internal/driver"
)

func controlFor(t *testing.T, d *driver.Driver, key string) *hudControlState {
	t.Helper()
	for _, c := range d.ParameterControls() {
		if c.Key == key {
			s := &hudControlState{control: c}
			s.refresh(d.Parameters())
			return s
		}
	}
	t.Fatalf("no control %q", key)
	return nil
}

func TestSpeedControlClampsToBounds(t *testing.T) {
	d, _ := newDriver(t)
	speed := controlFor(t, d, driver.ParamSpeed)
	if !speed.hasValue || speed.intValue != driver.DefaultSpeed {
		t.Fatalf("speed control = %+v", speed)
	}

	if !speed.adjust(1, d, d) {
		t.Fatal("increment rejected")
	}
	if got := d.State().Speed; got != driver.DefaultSpeed+10 {
		t.Fatalf("speed = %d", got)
	}

	if err := d.SetSpeed(driver.MinSpeed); err != nil {
		t.Fatal(err)
	}
	speed.refresh(d.Parameters())
	if _, ok := speed.target(-1); ok {
		t.Fatal("decrement allowed at minimum")
	}
	if speed.adjust(-1, d, d) {
		t.Fatal("adjust below minimum succeeded")
	}
	if got := d.State().Speed; got != driver.MinSpeed {
		t.Fatalf("speed = %d", got)
	}
}

func TestDensityControl(t *testing.T) {
	d, _ := newDriver(t)
	density := controlFor(t, d, driver.ParamDensity)
	if density.value != "0.30" {
		t.Fatalf("density label = %q", density.value)
	}
	if !density.adjust(-1, d, d) {
		t.Fatal("decrement rejected")
	}
	if got := d.State().Density; got < 0.249 || got > 0.251 {
		t.Fatalf("density = %v", got)
	}
	if density.value != "0.25" {
		t.Fatalf("density label = %q", density.value)
	}
}

func TestControlWithoutValue(t *testing.T) {
	d, _ := newDriver(t)
	s := &hudControlState{control: d.ParameterControls()[0]}
	if _, ok := s.target(1); ok {
		t.Fatal("target without value")
	}
}

func TestPointInRect(t *testing.T) {
	r := image.Rect(10, 10, 20, 20)
	if !pointInRect(10, 10, r) || pointInRect(20, 15, r) || pointInRect(9, 15, r) {
		t.Fatal("pointInRect bounds wrong")
	}
}

func TestDensityControlStepsFromExactValue(t *testing.T) {
	d, _ := newDriver(t)
	if err := d.SetDensity(0.333); err != nil {
		t.Fatal(err)
	}
	density := controlFor(t, d, driver.ParamDensity)
	if density.value != "0.33" {
		t.Fatalf("density label = %q", density.value)
	}
	if !density.adjust(1, d, d) {
		t.Fatal("increment rejected")
	}
	if got := d.State().Density; got < 0.3829 || got > 0.3831 {
		t.Fatalf("density = %v, want 0.383", got)
	}
}
