package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Direction an element slides in from.
type Direction string

const (
	FromLeft   Direction = "left"
	FromRight  Direction = "right"
	FromTop    Direction = "top"
	FromBottom Direction = "bottom"
)

// EntranceDuration is how long an element takes to settle, in seconds.
const EntranceDuration = 0.8

// Frame is one step of an entrance: opacity plus a translation in pixels.
type Frame struct {
	Opacity float32
	X, Y    float32
}

// Entrance fades an element in while sliding it home.
type Entrance struct {
	dir     Direction
	opacity *gween.Tween
	offset  *gween.Tween
	delay   float32
	done    bool
	last    Frame
}

// NewEntrance starts an entrance from dir. Horizontal entrances travel 50px,
// vertical ones 20px. Unknown directions only fade.
func NewEntrance(dir Direction) *Entrance {
	var dist float32
	switch dir {
	case FromLeft, FromTop:
		dist = -offsetFor(dir)
	case FromRight, FromBottom:
		dist = offsetFor(dir)
	}
	e := &Entrance{
		dir:     dir,
		opacity: gween.New(0, 1, EntranceDuration, ease.OutCubic),
		offset:  gween.New(dist, 0, EntranceDuration, ease.OutCubic),
	}
	e.last = e.frame(0, dist)
	return e
}

func offsetFor(dir Direction) float32 {
	if dir == FromTop || dir == FromBottom {
		return 20
	}
	return 50
}

// After holds the entrance at its start frame for delay seconds before it moves.
func (e *Entrance) After(delay float32) *Entrance {
	if delay > 0 {
		e.delay = delay
	}
	return e
}

// Start returns the frame before any time has passed.
func (e *Entrance) Start() Frame {
	return e.last
}

// Update advances the entrance by dt seconds.
func (e *Entrance) Update(dt float32) (Frame, bool) {
	if e.done {
		return e.last, true
	}
	if e.delay > 0 {
		if dt <= e.delay {
			e.delay -= dt
			return e.last, false
		}
		dt -= e.delay
		e.delay = 0
	}
	op, opDone := e.opacity.Update(dt)
	off, offDone := e.offset.Update(dt)
	e.done = opDone && offDone
	e.last = e.frame(op, off)
	return e.last, e.done
}

func (e *Entrance) frame(opacity, offset float32) Frame {
	f := Frame{Opacity: opacity}
	switch e.dir {
	case FromLeft, FromRight:
		f.X = offset
	case FromTop, FromBottom:
		f.Y = offset
	}
	return f
}
