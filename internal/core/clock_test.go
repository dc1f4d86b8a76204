package core

import (
	"slices"
	"testing"
	"time"
)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	c := NewManualClock()
	var got []string
	c.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	c.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	c.Advance(9 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("fired early: %v", got)
	}
	c.Advance(21 * time.Millisecond)
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	if c.Now() != 30*time.Millisecond {
		t.Fatalf("Now = %v", c.Now())
	}
}

func TestManualClockChainsWithinWindow(t *testing.T) {
	c := NewManualClock()
	fired := 0
	var tick func()
	tick = func() {
		fired++
		c.AfterFunc(10*time.Millisecond, tick)
	}
	c.AfterFunc(0, tick)

	c.Advance(0)
	if fired != 1 {
		t.Fatalf("fired = %d after Advance(0), want 1", fired)
	}
	c.Advance(35 * time.Millisecond)
	if fired != 4 {
		t.Fatalf("fired = %d, want 4", fired)
	}
	if c.Pending() != 1 {
		t.Fatalf("pending = %d, want 1", c.Pending())
	}
}

func TestManualTimerStop(t *testing.T) {
	c := NewManualClock()
	fired := false
	timer := c.AfterFunc(5*time.Millisecond, func() { fired = true })
	if !timer.Stop() {
		t.Fatal("Stop on pending timer returned false")
	}
	if timer.Stop() {
		t.Fatal("second Stop returned true")
	}
	c.Advance(time.Second)
	if fired {
		t.Fatal("stopped timer fired")
	}

	done := c.AfterFunc(0, func() {})
	c.Advance(0)
	if done.Stop() {
		t.Fatal("Stop after firing returned true")
	}
}
