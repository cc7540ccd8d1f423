package particles

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// ImageSurface is a Surface backed by an in-memory RGBA image.
type ImageSurface struct {
	img  *image.RGBA
	rast *vector.Rasterizer
}

// NewImageSurface returns a zero-sized surface. Mount sizes it to the viewport.
func NewImageSurface() *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

func (s *ImageSurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if b := s.img.Bounds(); b.Dx() == w && b.Dy() == h {
		return
	}
	s.img = image.NewRGBA(image.Rect(0, 0, w, h))
	s.rast = nil
}

func (s *ImageSurface) Context2D() (Context, bool) {
	return s, true
}

// Image returns the current pixels.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

func (s *ImageSurface) Clear(w, h float64) {
	r := image.Rect(0, 0, int(math.Ceil(w)), int(math.Ceil(h))).Intersect(s.img.Bounds())
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

func (s *ImageSurface) FillCircle(x, y, r float64, c RGBA) {
	b := s.img.Bounds()
	if b.Empty() || r <= 0 {
		return
	}
	if x+r < 0 || y+r < 0 || x-r > float64(b.Dx()) || y-r > float64(b.Dy()) {
		return
	}
	if s.rast == nil {
		s.rast = vector.NewRasterizer(b.Dx(), b.Dy())
	} else {
		s.rast.Reset(b.Dx(), b.Dy())
	}

	cx, cy, rr, k := float32(x), float32(y), float32(r), float32(r*kappa)
	s.rast.MoveTo(cx+rr, cy)
	s.rast.CubeTo(cx+rr, cy+k, cx+k, cy+rr, cx, cy+rr)
	s.rast.CubeTo(cx-k, cy+rr, cx-rr, cy+k, cx-rr, cy)
	s.rast.CubeTo(cx-rr, cy-k, cx-k, cy-rr, cx, cy-rr)
	s.rast.CubeTo(cx+k, cy-rr, cx+rr, cy-k, cx+rr, cy)
	s.rast.ClosePath()
	s.rast.Draw(s.img, b, image.NewUniform(c.NRGBA()), image.Point{})
}
