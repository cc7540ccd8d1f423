// Package reveal latches a section's entrance animation the first time enough of it
// scrolls into view.
package reveal

import (
	"errors"
	"sync"
)

var (
	ErrThreshold = errors.New("reveal: threshold must be in (0, 1)")
	ErrAttached  = errors.New("reveal: trigger already attached")
)

// State of a trigger. Revealed is terminal.
type State int

const (
	Unrevealed State = iota
	Revealed
)

func (s State) String() string {
	if s == Revealed {
		return "revealed"
	}
	return "unrevealed"
}

// Target reports how much of an element's bounding box is inside the viewport.
// fn must not be called after disconnect returns.
type Target interface {
	ObserveIntersection(threshold float64, fn func(ratio float64)) (disconnect func())
}

// Trigger flips once from Unrevealed to Revealed.
type Trigger struct {
	mu         sync.Mutex
	state      State
	attached   bool
	threshold  float64
	disconnect func()
	hooks      []func()
}

// New returns an unrevealed, detached trigger.
func New() *Trigger {
	return &Trigger{}
}

// OnReveal registers fn to run once, right after the transition. Registering on an
// already revealed trigger runs fn immediately.
func (t *Trigger) OnReveal(fn func()) {
	t.mu.Lock()
	if t.state == Revealed {
		t.mu.Unlock()
		fn()
		return
	}
	t.hooks = append(t.hooks, fn)
	t.mu.Unlock()
}

// Attach starts observing target. Attaching a revealed trigger does nothing.
func (t *Trigger) Attach(target Target, threshold float64) error {
	if !(threshold > 0 && threshold < 1) {
		return ErrThreshold
	}

	t.mu.Lock()
	if t.state == Revealed {
		t.mu.Unlock()
		return nil
	}
	if t.attached {
		t.mu.Unlock()
		return ErrAttached
	}
	t.attached = true
	t.threshold = threshold
	t.mu.Unlock()

	disconnect := target.ObserveIntersection(threshold, t.observe)

	t.mu.Lock()
	if !t.attached {
		// revealed or detached while the observer was being set up
		t.mu.Unlock()
		disconnect()
		return nil
	}
	t.disconnect = disconnect
	t.mu.Unlock()
	return nil
}

// Detach stops observing. Safe to call at any time, any number of times.
func (t *Trigger) Detach() {
	t.mu.Lock()
	t.attached = false
	disconnect := t.disconnect
	t.disconnect = nil
	t.mu.Unlock()

	if disconnect != nil {
		disconnect()
	}
}

// State returns the current state.
func (t *Trigger) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Revealed reports whether the trigger has fired.
func (t *Trigger) Revealed() bool {
	return t.State() == Revealed
}

// Attached reports whether the trigger is observing a target.
func (t *Trigger) Attached() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attached
}

func (t *Trigger) observe(ratio float64) {
	t.mu.Lock()
	if t.state == Revealed || !t.attached || ratio < t.threshold {
		t.mu.Unlock()
		return
	}
	t.state = Revealed
	t.attached = false
	disconnect := t.disconnect
	t.disconnect = nil
	hooks := t.hooks
	t.hooks = nil
	t.mu.Unlock()

	if disconnect != nil {
		disconnect()
	}
	for _, fn := range hooks {
		fn()
	}
}
