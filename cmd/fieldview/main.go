// Command fieldview shows the particle background in a resizable desktop window,
// for tuning its parameters outside the browser.
package main

import (
	"flag"
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/saineshnakra/portfolio/internal/particles"
)

// surface draws into an offscreen image that Draw copies to the screen.
type surface struct {
	img *ebiten.Image
}

func (s *surface) Resize(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
}

func (s *surface) Context2D() (particles.Context, bool) {
	return s, true
}

func (s *surface) Clear(w, h float64) {
	s.img.Clear()
}

func (s *surface) FillCircle(x, y, r float64, c particles.RGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c.NRGBA(), true)
}

// game is the ebiten host: it is the viewport (sized by Layout) and the frame scheduler (driven by Update).
type game struct {
	mu        sync.Mutex
	w, h      int
	listeners map[int]func()
	nextID    int
	frames    map[particles.FrameID]func()
	nextFrame particles.FrameID

	surface  *surface
	renderer *particles.Renderer
}

func newGame(w, h int) *game {
	return &game{
		w:         w,
		h:         h,
		listeners: make(map[int]func()),
		frames:    make(map[particles.FrameID]func()),
		surface:   &surface{},
	}
}

func (g *game) Size() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.w, g.h
}

func (g *game) OnResize(fn func()) func() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	id := g.nextID
	g.listeners[id] = fn
	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(g.listeners, id)
	}
}

func (g *game) RequestFrame(fn func()) particles.FrameID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextFrame++
	g.frames[g.nextFrame] = fn
	return g.nextFrame
}

func (g *game) CancelFrame(id particles.FrameID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.frames, id)
}

func (g *game) Update() error {
	g.mu.Lock()
	due := g.frames
	g.frames = make(map[particles.FrameID]func())
	g.mu.Unlock()

	for _, fn := range due {
		fn()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if g.surface.img != nil {
		screen.DrawImage(g.surface.img, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.mu.Lock()
	changed := outsideWidth != g.w || outsideHeight != g.h
	g.w, g.h = outsideWidth, outsideHeight
	var fns []func()
	if changed {
		for _, fn := range g.listeners {
			fns = append(fns, fn)
		}
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return outsideWidth, outsideHeight
}

func main() {
	cfg := particles.DefaultConfig()
	width := flag.Int("width", 1280, "initial window width")
	height := flag.Int("height", 720, "initial window height")
	flag.IntVar(&cfg.Count, "count", cfg.Count, "number of particles")
	flag.Float64Var(&cfg.MinRadius, "min-radius", cfg.MinRadius, "smallest particle radius")
	flag.Float64Var(&cfg.MaxRadius, "max-radius", cfg.MaxRadius, "largest particle radius")
	flag.Float64Var(&cfg.MaxSpeed, "speed", cfg.MaxSpeed, "largest speed per axis, in pixels per frame")
	flag.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "particle alpha")
	flag.Parse()

	g := newGame(*width, *height)
	g.renderer = particles.NewRenderer(g, g, particles.WithConfig(cfg))
	if !g.renderer.Mount(g.surface) {
		log.Fatal("could not mount particle field")
	}
	defer g.renderer.Unmount()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Particle field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
