package particles

import "sync"

// StepScheduler holds requested frames until Advance is called. It stands in for a display
// refresh when frames are produced on demand, e.g. rendering a still image.
type StepScheduler struct {
	mu      sync.Mutex
	next    FrameID
	pending map[FrameID]func()
	order   []FrameID
}

// NewStepScheduler returns an empty scheduler.
func NewStepScheduler() *StepScheduler {
	return &StepScheduler{pending: make(map[FrameID]func())}
}

func (s *StepScheduler) RequestFrame(fn func()) FrameID {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.pending[s.next] = fn
	s.order = append(s.order, s.next)
	return s.next
}

func (s *StepScheduler) CancelFrame(id FrameID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *StepScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Advance runs n frames. Callbacks requested while a frame runs wait for the following one.
func (s *StepScheduler) Advance(n int) {
	for i := 0; i < n; i++ {
		s.mu.Lock()
		ids := s.order
		s.order = nil
		fns := make([]func(), 0, len(ids))
		for _, id := range ids {
			if fn, ok := s.pending[id]; ok {
				fns = append(fns, fn)
				delete(s.pending, id)
			}
		}
		s.mu.Unlock()

		for _, fn := range fns {
			fn()
		}
	}
}

// FixedViewport is a viewport of constant size that can be resized by hand.
type FixedViewport struct {
	mu        sync.Mutex
	w, h      int
	nextID    int
	listeners map[int]func()
}

// NewFixedViewport returns a w×h viewport.
func NewFixedViewport(w, h int) *FixedViewport {
	return &FixedViewport{w: w, h: h, listeners: make(map[int]func())}
}

func (v *FixedViewport) Size() (int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.w, v.h
}

func (v *FixedViewport) OnResize(fn func()) func() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Listeners returns the number of active resize subscriptions.
func (v *FixedViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// SetSize changes the dimensions and notifies subscribers.
func (v *FixedViewport) SetSize(w, h int) {
	v.mu.Lock()
	v.w, v.h = w, h
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
