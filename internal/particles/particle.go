package particles

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

// RGBA is a particle fill colour. A is the canvas-style alpha in [0, 1].
type RGBA struct {
	R, G, B uint8
	A       float64
}

// String renders the colour as a CSS colour, e.g. "rgba(12, 200, 7, 0.5)".
func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// NRGBA converts to a non-premultiplied image colour.
func (c RGBA) NRGBA() color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Particle is one moving circle. Radius, colour and speed magnitudes are fixed at creation;
// only the position and the sign of each speed component change afterwards.
type Particle struct {
	X, Y           float64
	Radius         float64
	SpeedX, SpeedY float64
	Color          RGBA
}

// Config controls the population seeded on mount.
type Config struct {
	// Count is the number of particles in a field.
	Count int
	// MinRadius and MaxRadius bound the radius, exclusive on both ends.
	MinRadius, MaxRadius float64
	// MaxSpeed bounds each velocity component to (-MaxSpeed, MaxSpeed).
	MaxSpeed float64
	// Alpha is the fill alpha shared by every particle.
	Alpha float64
}

// DefaultConfig is the page background: 100 particles, radius (1,3), speed (-1.5,1.5), half alpha.
func DefaultConfig() Config {
	return Config{
		Count:     100,
		MinRadius: 1,
		MaxRadius: 3,
		MaxSpeed:  1.5,
		Alpha:     0.5,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Count <= 0 {
		c.Count = d.Count
	}
	if c.MaxRadius <= c.MinRadius || c.MinRadius < 0 {
		c.MinRadius, c.MaxRadius = d.MinRadius, d.MaxRadius
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = d.MaxSpeed
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		c.Alpha = d.Alpha
	}
	return c
}

// Field is a particle population living on a surface of the given size.
type Field struct {
	Particles []Particle
}

// NewField seeds cfg.Count particles uniformly over a w×h surface.
func NewField(cfg Config, w, h float64, rng *rand.Rand) *Field {
	cfg = cfg.withDefaults()
	f := &Field{Particles: make([]Particle, cfg.Count)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Radius: openRange(rng, cfg.MinRadius, cfg.MaxRadius),
			SpeedX: openRange(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
			SpeedY: openRange(rng, -cfg.MaxSpeed, cfg.MaxSpeed),
			Color: RGBA{
				R: uint8(rng.IntN(256)),
				G: uint8(rng.IntN(256)),
				B: uint8(rng.IntN(256)),
				A: cfg.Alpha,
			},
		}
	}
	return f
}

// Step advances every particle by its velocity and reflects it off the w×h bounds.
//
// An axis is reflected only while the particle is outside on that axis and still heading
// away, so a crossing flips the sign once and a particle left outside by a shrinking
// surface turns around and drifts back in.
func (f *Field) Step(w, h float64) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.SpeedX
		p.Y += p.SpeedY

		if (p.X < 0 && p.SpeedX < 0) || (p.X > w && p.SpeedX > 0) {
			p.SpeedX = -p.SpeedX
		}
		if (p.Y < 0 && p.SpeedY < 0) || (p.Y > h && p.SpeedY > 0) {
			p.SpeedY = -p.SpeedY
		}
	}
}

// Draw clears the surface and fills one circle per particle.
func (f *Field) Draw(ctx Context, w, h float64) {
	ctx.Clear(w, h)
	for _, p := range f.Particles {
		ctx.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
}

// openRange draws from (lo, hi). Float64 can return exactly 0, which would land on lo.
func openRange(rng *rand.Rand, lo, hi float64) float64 {
	for {
		v := lo + rng.Float64()*(hi-lo)
		if v > lo && v < hi {
			return v
		}
	}
}
