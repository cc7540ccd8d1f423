package particles

import (
	"math/rand/v2"
	"testing"
)

type recordingContext struct {
	clears int
	fills  int
}

func (c *recordingContext) Clear(w, h float64) {
	c.clears++
	c.fills = 0
}

func (c *recordingContext) FillCircle(x, y, r float64, col RGBA) {
	c.fills++
}

type fakeSurface struct {
	w, h    int
	resizes int
	ctx     *recordingContext
	noCtx   bool
}

func (s *fakeSurface) Resize(w, h int) {
	s.w, s.h = w, h
	s.resizes++
}

func (s *fakeSurface) Context2D() (Context, bool) {
	if s.noCtx {
		return nil, false
	}
	return s.ctx, true
}

func newFake() *fakeSurface {
	return &fakeSurface{ctx: &recordingContext{}}
}

func seeded(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed+1)))
}

func TestRenderer_MountSeedsPopulation(t *testing.T) {
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(400, 300), sched, seeded(1))
	s := newFake()

	if !r.Mount(s) {
		t.Fatal("Mount returned false")
	}
	if s.w != 400 || s.h != 300 {
		t.Errorf("surface %dx%d, want 400x300", s.w, s.h)
	}
	ps := r.Particles()
	if len(ps) != 100 {
		t.Fatalf("len(Particles) %d, want 100", len(ps))
	}
	for i, p := range ps {
		if p.Radius <= 1 || p.Radius >= 3 {
			t.Errorf("particle %d radius %v outside (1,3)", i, p.Radius)
		}
		if p.SpeedX <= -1.5 || p.SpeedX >= 1.5 || p.SpeedY <= -1.5 || p.SpeedY >= 1.5 {
			t.Errorf("particle %d speed (%v,%v) outside (-1.5,1.5)", i, p.SpeedX, p.SpeedY)
		}
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 300 {
			t.Errorf("particle %d at (%v,%v) outside surface", i, p.X, p.Y)
		}
		if p.Color.A != 0.5 {
			t.Errorf("particle %d alpha %v, want 0.5", i, p.Color.A)
		}
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending %d, want 1", sched.Pending())
	}
}

func TestRenderer_MountManyPopulationsInRange(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		r := NewRenderer(NewFixedViewport(10, 10), NewStepScheduler(), seeded(seed))
		r.Mount(newFake())
		ps := r.Particles()
		if len(ps) != 100 {
			t.Fatalf("seed %d: len(Particles) %d, want 100", seed, len(ps))
		}
		for _, p := range ps {
			if p.Radius <= 1 || p.Radius >= 3 {
				t.Fatalf("seed %d: radius %v outside (1,3)", seed, p.Radius)
			}
			if p.SpeedX <= -1.5 || p.SpeedX >= 1.5 || p.SpeedY <= -1.5 || p.SpeedY >= 1.5 {
				t.Fatalf("seed %d: speed (%v,%v) outside (-1.5,1.5)", seed, p.SpeedX, p.SpeedY)
			}
		}
		r.Unmount()
	}
}

func TestRenderer_MountWithoutContext(t *testing.T) {
	sched := NewStepScheduler()
	vp := NewFixedViewport(400, 300)
	r := NewRenderer(vp, sched)

	s := newFake()
	s.noCtx = true
	if r.Mount(s) {
		t.Error("Mount should fail without a 2D context")
	}
	if r.Mount(nil) {
		t.Error("Mount should fail without a surface")
	}
	if r.Particles() != nil {
		t.Error("no particles expected")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending %d, want 0", sched.Pending())
	}
	if vp.Listeners() != 0 {
		t.Errorf("Listeners %d, want 0", vp.Listeners())
	}
	if s.resizes != 0 {
		t.Error("surface should not be touched")
	}
}

func TestRenderer_OneFrame(t *testing.T) {
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(400, 300), sched, seeded(7))
	s := newFake()
	r.Mount(s)

	before := r.Particles()
	sched.Advance(1)
	after := r.Particles()

	for i := range before {
		b, a := before[i], after[i]
		if a.X != b.X+b.SpeedX || a.Y != b.Y+b.SpeedY {
			t.Errorf("particle %d moved to (%v,%v), want (%v,%v)", i, a.X, a.Y, b.X+b.SpeedX, b.Y+b.SpeedY)
		}
		wantSX := b.SpeedX
		if (a.X < 0 && b.SpeedX < 0) || (a.X > 400 && b.SpeedX > 0) {
			wantSX = -wantSX
		}
		if a.SpeedX != wantSX {
			t.Errorf("particle %d SpeedX %v, want %v", i, a.SpeedX, wantSX)
		}
	}
	if s.ctx.clears != 1 {
		t.Errorf("clears %d, want 1", s.ctx.clears)
	}
	if s.ctx.fills != 100 {
		t.Errorf("fills %d, want 100", s.ctx.fills)
	}
	if sched.Pending() != 1 {
		t.Errorf("next frame not scheduled, Pending %d", sched.Pending())
	}
}

func TestRenderer_UnmountStopsLoop(t *testing.T) {
	for cycle := 0; cycle < 5; cycle++ {
		sched := NewStepScheduler()
		vp := NewFixedViewport(200, 100)
		r := NewRenderer(vp, sched, seeded(uint64(cycle)))
		s := newFake()
		r.Mount(s)
		sched.Advance(cycle)

		r.Unmount()
		if sched.Pending() != 0 {
			t.Errorf("cycle %d: Pending %d after Unmount, want 0", cycle, sched.Pending())
		}
		if vp.Listeners() != 0 {
			t.Errorf("cycle %d: Listeners %d after Unmount, want 0", cycle, vp.Listeners())
		}
		clears := s.ctx.clears
		sched.Advance(3)
		if s.ctx.clears != clears {
			t.Errorf("cycle %d: drew after Unmount", cycle)
		}
	}
}

func TestRenderer_UnmountIdempotent(t *testing.T) {
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(50, 50), sched)
	r.Unmount()

	r.Mount(newFake())
	r.Unmount()
	r.Unmount()
	if r.Mounted() {
		t.Error("still mounted")
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending %d, want 0", sched.Pending())
	}
}

func TestRenderer_StaleFrameDrawsNothing(t *testing.T) {
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(50, 50), sched)
	s := newFake()
	r.Mount(s)

	r.mu.Lock()
	stale := r.tick
	r.mu.Unlock()
	r.Unmount()

	stale()
	if s.ctx.clears != 0 {
		t.Error("stale frame drew after Unmount")
	}
}

func TestRenderer_Remount(t *testing.T) {
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(50, 50), sched)
	r.Mount(newFake())
	if r.Mount(newFake()) {
		t.Error("second Mount while mounted should fail")
	}
	r.Unmount()
	if !r.Mount(newFake()) {
		t.Fatal("Mount after Unmount should succeed")
	}
	if len(r.Particles()) != 100 {
		t.Errorf("len(Particles) %d, want 100", len(r.Particles()))
	}
	if sched.Pending() != 1 {
		t.Errorf("Pending %d, want 1", sched.Pending())
	}
}

func TestRenderer_ResizeKeepsPositions(t *testing.T) {
	sched := NewStepScheduler()
	vp := NewFixedViewport(800, 600)
	r := NewRenderer(vp, sched, seeded(3))
	s := newFake()
	r.Mount(s)

	before := r.Particles()
	vp.SetSize(100, 80)

	if s.w != 100 || s.h != 80 {
		t.Errorf("surface %dx%d, want 100x80", s.w, s.h)
	}
	if w, h := r.Size(); w != 100 || h != 80 {
		t.Errorf("Size %vx%v, want 100x80", w, h)
	}
	after := r.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d changed on resize", i)
		}
	}
}

func TestRenderer_WithConfig(t *testing.T) {
	cfg := Config{Count: 12, MinRadius: 2, MaxRadius: 4, MaxSpeed: 0.5, Alpha: 0.8}
	r := NewRenderer(NewFixedViewport(10, 10), NewStepScheduler(), WithConfig(cfg))
	r.Mount(newFake())
	ps := r.Particles()
	if len(ps) != 12 {
		t.Fatalf("len(Particles) %d, want 12", len(ps))
	}
	for _, p := range ps {
		if p.Radius <= 2 || p.Radius >= 4 || p.Color.A != 0.8 {
			t.Errorf("particle %+v does not follow config", p)
		}
		if p.SpeedX <= -0.5 || p.SpeedX >= 0.5 {
			t.Errorf("SpeedX %v outside (-0.5,0.5)", p.SpeedX)
		}
	}
}
