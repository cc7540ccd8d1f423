package particles

import (
	"image"
	"math/rand/v2"
)

// RenderStill mounts a renderer on an in-memory w×h surface, runs the given number of
// frames and returns the last one drawn. The same seed always yields the same image.
func RenderStill(w, h, frames int, seed uint64, cfg Config) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	sched := NewStepScheduler()
	r := NewRenderer(NewFixedViewport(w, h), sched,
		WithConfig(cfg),
		WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))),
	)
	surface := NewImageSurface()
	r.Mount(surface)
	defer r.Unmount()

	sched.Advance(frames)
	return surface.Image()
}
