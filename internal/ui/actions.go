package ui

import (
	"github.com/pkg/errors"

	"lifeboard/internal/driver"
)

// Commander is the set of driver operations the controls can issue.
type Commander interface {
	State() driver.State
	Start()
	Stop()
	Step() bool
	Randomize() error
	Clear()
}

// Action is a user command bound to a HUD button and a key.
type Action int

const (
	ActionStartStop Action = iota
	ActionStep
	ActionRandom
	ActionClear
)

// ErrActionDisabled is returned when an action is not available in the
// current state.
var ErrActionDisabled = errors.New("action disabled")

// Actions lists the buttons in panel order.
var Actions = []Action{ActionStartStop, ActionStep, ActionRandom, ActionClear}

// Label returns the button caption for the given state.
func (a Action) Label(s driver.State) string {
	switch a {
	case ActionStartStop:
		if s.Running {
			return "Stop"
		}
		return "Start"
	case ActionStep:
		return "Step"
	case ActionRandom:
		return "Random"
	case ActionClear:
		return "Clear"
	}
	return "?"
}

// Enabled reports whether the action may be issued. Random and Step are
// unavailable while the simulation runs.
func (a Action) Enabled(s driver.State) bool {
	switch a {
	case ActionRandom, ActionStep:
		return !s.Running
	}
	return true
}

// Apply issues the action to c if it is enabled.
func Apply(c Commander, a Action) error {
	s := c.State()
	if !a.Enabled(s) {
		return errors.Wrapf(ErrActionDisabled, "[Apply] %s", a.Label(s))
	}
	switch a {
	case ActionStartStop:
		if s.Running {
			c.Stop()
		} else {
			c.Start()
		}
	case ActionStep:
		if !c.Step() {
			return errors.Wrap(ErrActionDisabled, "[Apply] Step")
		}
	case ActionRandom:
		return errors.Wrap(c.Randomize(), "[Apply] Random")
	case ActionClear:
		c.Clear()
	}
	return nil
}
