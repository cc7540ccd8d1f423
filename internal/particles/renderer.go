// Package particles draws the decorative field of drifting circles behind page sections.
//
// A Renderer owns one surface and one population. The host environment (browser canvas,
// ebiten window, in-memory image) is injected through Surface, Viewport and Scheduler so
// the same loop runs everywhere and can be stepped by hand in tests.
package particles

import (
	"math/rand/v2"
	"sync"
)

// Context is the 2D drawing context of a surface.
type Context interface {
	Clear(w, h float64)
	FillCircle(x, y, r float64, c RGBA)
}

// Surface is a drawable area that can be resized in place.
type Surface interface {
	Resize(w, h int)
	// Context2D returns false when the surface cannot be drawn on.
	Context2D() (Context, bool)
}

// Viewport reports the current display size and announces changes to it.
type Viewport interface {
	Size() (w, h int)
	OnResize(fn func()) (cancel func())
}

// FrameID identifies a scheduled frame callback.
type FrameID uint64

// Scheduler runs a callback at the host's next display refresh.
type Scheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithConfig overrides the population parameters.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) { r.cfg = cfg.withDefaults() }
}

// WithRand sets the random source used to seed particles.
func WithRand(rng *rand.Rand) Option {
	return func(r *Renderer) { r.rng = rng }
}

// Renderer runs the redraw loop for a single surface.
type Renderer struct {
	viewport  Viewport
	scheduler Scheduler
	cfg       Config
	rng       *rand.Rand

	mu           sync.Mutex
	mounted      bool
	surface      Surface
	ctx          Context
	width        float64
	height       float64
	field        *Field
	frame        FrameID
	framePending bool
	cancelResize func()
}

// NewRenderer creates an unmounted renderer.
func NewRenderer(viewport Viewport, scheduler Scheduler, opts ...Option) *Renderer {
	r := &Renderer{
		viewport:  viewport,
		scheduler: scheduler,
		cfg:       DefaultConfig(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r
}

// Mount sizes the surface to the viewport, seeds the population and starts the loop.
// It reports false, and does nothing, when the surface or its context is unavailable
// or the renderer is already mounted.
func (r *Renderer) Mount(s Surface) bool {
	if s == nil {
		return false
	}
	ctx, ok := s.Context2D()
	if !ok || ctx == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.mounted {
		return false
	}

	r.surface = s
	r.ctx = ctx
	r.resizeLocked()
	r.field = NewField(r.cfg, r.width, r.height, r.rng)
	r.mounted = true
	r.cancelResize = r.viewport.OnResize(r.OnResize)
	r.scheduleLocked()
	return true
}

// OnResize matches the surface to the viewport. Particle positions are left as they are.
func (r *Renderer) OnResize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.mounted {
		return
	}
	r.resizeLocked()
}

// Unmount stops the loop and the resize subscription. No drawing happens once it returns.
// Calling it on an unmounted renderer does nothing.
func (r *Renderer) Unmount() {
	r.mu.Lock()
	if !r.mounted {
		r.mu.Unlock()
		return
	}
	r.mounted = false
	if r.framePending {
		r.scheduler.CancelFrame(r.frame)
		r.framePending = false
	}
	cancel := r.cancelResize
	r.cancelResize = nil
	r.field = nil
	r.surface = nil
	r.ctx = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Mounted reports whether the loop is running.
func (r *Renderer) Mounted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mounted
}

// Size returns the current surface dimensions.
func (r *Renderer) Size() (w, h float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Particles returns a copy of the current population, nil when unmounted.
func (r *Renderer) Particles() []Particle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.field == nil {
		return nil
	}
	out := make([]Particle, len(r.field.Particles))
	copy(out, r.field.Particles)
	return out
}

func (r *Renderer) tick() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.framePending = false
	if !r.mounted {
		return
	}
	r.field.Step(r.width, r.height)
	r.field.Draw(r.ctx, r.width, r.height)
	r.scheduleLocked()
}

func (r *Renderer) scheduleLocked() {
	r.frame = r.scheduler.RequestFrame(r.tick)
	r.framePending = true
}

func (r *Renderer) resizeLocked() {
	w, h := r.viewport.Size()
	r.surface.Resize(w, h)
	r.width, r.height = float64(w), float64(h)
}
