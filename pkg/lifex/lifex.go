// Package lifex provides a small lifecycle state machine for long-lived
// components: guarded one-way transitions from NEW through RUNNING to
// CLOSED, with PAUSED and EXCEPTION side states.
package lifex

import (
	"fmt"
	"sync"

	"github.com/Abraxas-365/corekit/pkg/errx"
	"github.com/Abraxas-365/corekit/pkg/logx"
)

var log = logx.Named("lifex")

// State is a lifecycle state.
type State string

const (
	StateNew       State = "NEW"
	StateStarting  State = "STARTING"
	StateRunning   State = "RUNNING"
	StatePausing   State = "PAUSING"
	StatePaused    State = "PAUSED"
	StateException State = "EXCEPTION"
	StateClosing   State = "CLOSING"
	StateClosed    State = "CLOSED"
)

// validTransitions lists, per state, the states reachable from it.
// StateClosed is terminal.
var validTransitions = map[State][]State{
	StateNew:       {StateStarting, StateClosed},
	StateStarting:  {StateRunning, StateException, StateClosing},
	StateRunning:   {StatePausing, StateException, StateClosing},
	StatePausing:   {StatePaused, StateException},
	StatePaused:    {StateStarting, StateClosing},
	StateException: {StateClosing},
	StateClosing:   {StateClosed},
	StateClosed:    {},
}

// Errors is the error registry for this module.
var Errors = errx.NewRegistry("LIFEX")

// ErrInvalidTransition is returned when a transition is not allowed.
var ErrInvalidTransition = Errors.Register(
	"INVALID_TRANSITION", errx.TypeIllegalState, "invalid lifecycle transition")

// LifeCycle tracks the state of one named component. All methods are safe
// for concurrent use.
type LifeCycle struct {
	name string

	mu      sync.Mutex
	current State
}

// New returns a LifeCycle in StateNew.
func New(name string) *LifeCycle {
	return &LifeCycle{name: name, current: StateNew}
}

// Name returns the component name this lifecycle tracks.
func (l *LifeCycle) Name() string {
	return l.name
}

// Current returns the current state.
func (l *LifeCycle) Current() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current
}

// Closed reports whether the lifecycle reached its terminal state.
func (l *LifeCycle) Closed() bool {
	return l.Current() == StateClosed
}

// Transition moves to state to, or fails with a LIFEX_INVALID_TRANSITION
// error if the move is not allowed from the current state.
func (l *LifeCycle) Transition(to State) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !allowed(l.current, to) {
		return Errors.New(ErrInvalidTransition).
			WithDetail("name", l.name).
			WithDetail("from", string(l.current)).
			WithDetail("to", string(to))
	}

	log.WithFields(logx.Fields{
		"name": l.name,
		"from": l.current,
		"to":   to,
	}).Debug("lifecycle transition")

	l.current = to
	return nil
}

// TransitionIfValid moves to state to if allowed and reports whether it did.
func (l *LifeCycle) TransitionIfValid(to State) bool {
	return l.Transition(to) == nil
}

// MustTransition is Transition for moves the caller knows are valid;
// an invalid move is a programmer error and panics.
func (l *LifeCycle) MustTransition(to State) {
	errx.MustRun(func() error { return l.Transition(to) })
}

// String implements fmt.Stringer.
func (l *LifeCycle) String() string {
	return fmt.Sprintf("%s:%s", l.name, l.Current())
}

func allowed(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
