package particles

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestField_StepReflects(t *testing.T) {
	tests := []struct {
		name   string
		p      Particle
		wantSX float64
		wantSY float64
	}{
		{"inside", Particle{X: 50, Y: 50, SpeedX: 1, SpeedY: -1}, 1, -1},
		{"past right", Particle{X: 99.5, Y: 50, SpeedX: 1, SpeedY: 0.5}, -1, 0.5},
		{"past left", Particle{X: 0.2, Y: 50, SpeedX: -1, SpeedY: 0.5}, 1, 0.5},
		{"past bottom", Particle{X: 50, Y: 79.9, SpeedX: 0.3, SpeedY: 1.2}, 0.3, -1.2},
		{"past top", Particle{X: 50, Y: 0.1, SpeedX: 0.3, SpeedY: -1.2}, 0.3, 1.2},
		{"corner", Particle{X: 99.9, Y: 79.9, SpeedX: 1, SpeedY: 1}, -1, -1},
		{"on edge", Particle{X: 99, Y: 79, SpeedX: 1, SpeedY: 1}, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &Field{Particles: []Particle{tt.p}}
			f.Step(100, 80)
			got := f.Particles[0]
			if got.SpeedX != tt.wantSX || got.SpeedY != tt.wantSY {
				t.Errorf("speed (%v,%v), want (%v,%v)", got.SpeedX, got.SpeedY, tt.wantSX, tt.wantSY)
			}
		})
	}
}

func TestField_OneFlipPerCrossing(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	const w, h = 120.0, 90.0
	f := NewField(DefaultConfig(), w, h, rng)

	for frame := 0; frame < 5000; frame++ {
		before := make([]Particle, len(f.Particles))
		copy(before, f.Particles)
		f.Step(w, h)

		for i, a := range f.Particles {
			b := before[i]
			if a.SpeedX != b.SpeedX && a.SpeedX != -b.SpeedX {
				t.Fatalf("frame %d particle %d: speed magnitude changed", frame, i)
			}
			flipped := a.SpeedX != b.SpeedX
			outward := (a.X < 0 && b.SpeedX < 0) || (a.X > w && b.SpeedX > 0)
			if flipped != outward {
				t.Fatalf("frame %d particle %d: flipped=%v at x=%v speed=%v", frame, i, flipped, a.X, b.SpeedX)
			}
		}
	}
	for i, p := range f.Particles {
		if p.X < -1.5 || p.X > w+1.5 || p.Y < -1.5 || p.Y > h+1.5 {
			t.Errorf("particle %d escaped to (%v,%v)", i, p.X, p.Y)
		}
	}
}

func TestField_StrandedParticleReturns(t *testing.T) {
	f := &Field{Particles: []Particle{{X: 500, Y: 20, SpeedX: 1, SpeedY: 0}}}
	for i := 0; i < 1000; i++ {
		f.Step(100, 100)
	}
	p := f.Particles[0]
	if p.X < 0 || p.X > 101 {
		t.Errorf("particle still outside at x=%v", p.X)
	}
}

func TestRGBA_String(t *testing.T) {
	c := RGBA{R: 12, G: 200, B: 7, A: 0.5}
	if got := c.String(); got != "rgba(12, 200, 7, 0.5)" {
		t.Errorf("String %q", got)
	}
	if got := c.NRGBA(); got != (color.NRGBA{R: 12, G: 200, B: 7, A: 128}) {
		t.Errorf("NRGBA %+v", got)
	}
}

func TestImageSurface_FillCircle(t *testing.T) {
	s := NewImageSurface()
	s.Resize(20, 20)
	ctx, ok := s.Context2D()
	if !ok {
		t.Fatal("no context")
	}
	ctx.Clear(20, 20)
	ctx.FillCircle(10, 10, 3, RGBA{R: 255, A: 1})

	if _, _, _, a := s.Image().At(10, 10).RGBA(); a == 0 {
		t.Error("centre pixel not painted")
	}
	if _, _, _, a := s.Image().At(1, 1).RGBA(); a != 0 {
		t.Error("corner pixel painted")
	}

	ctx.Clear(20, 20)
	if _, _, _, a := s.Image().At(10, 10).RGBA(); a != 0 {
		t.Error("Clear left pixels behind")
	}
}

func TestRenderStill_Deterministic(t *testing.T) {
	a := RenderStill(64, 48, 10, 42, DefaultConfig())
	b := RenderStill(64, 48, 10, 42, DefaultConfig())
	if a.Bounds().Dx() != 64 || a.Bounds().Dy() != 48 {
		t.Fatalf("bounds %v", a.Bounds())
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("same seed produced different images")
		}
	}
	painted := false
	for i := 3; i < len(a.Pix); i += 4 {
		if a.Pix[i] != 0 {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("still frame is blank")
	}
}
