//go:build js && wasm

package browser

import (
	"fmt"
	"sync"
	"syscall/js"
	"time"

	"github.com/saineshnakra/portfolio/internal/particles"
	"github.com/saineshnakra/portfolio/internal/reveal"
)

// Element is a DOM element observed with IntersectionObserver.
type Element struct {
	el js.Value
}

func NewElement(el js.Value) *Element {
	return &Element{el: el}
}

func (e *Element) ObserveIntersection(threshold float64, fn func(ratio float64)) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			entry := entries.Index(i)
			if !entry.Get("isIntersecting").Bool() {
				continue
			}
			fn(entry.Get("intersectionRatio").Float())
		}
		return nil
	})
	observer := js.Global().Get("IntersectionObserver").New(cb, map[string]any{
		"threshold": threshold,
	})
	observer.Call("observe", e.el)

	var once sync.Once
	return func() {
		once.Do(func() {
			observer.Call("disconnect")
			cb.Release()
		})
	}
}

// Enter plays the entrance animation on el, sliding in from dir after delay seconds.
func Enter(frames *AnimationFrames, el js.Value, dir reveal.Direction, delay float32) {
	e := reveal.NewEntrance(dir).After(delay)
	style := el.Get("style")
	apply := func(f reveal.Frame) {
		style.Set("opacity", fmt.Sprintf("%.3f", f.Opacity))
		style.Set("transform", fmt.Sprintf("translate(%.2fpx, %.2fpx)", f.X, f.Y))
	}
	apply(e.Start())

	last := -1.0
	var step func()
	step = func() {
		now := js.Global().Get("performance").Call("now").Float()
		dt := float32(0)
		if last >= 0 {
			dt = float32((now - last) / 1000)
		}
		last = now

		f, done := e.Update(dt)
		if done {
			style.Call("removeProperty", "opacity")
			style.Call("removeProperty", "transform")
			return
		}
		apply(f)
		frames.RequestFrame(step)
	}
	frames.RequestFrame(step)
}

// Type cycles roles through el's text on every animation frame until the returned stop is called.
func Type(frames *AnimationFrames, el js.Value, roles []string) (stop func()) {
	t := reveal.NewTyper(roles)
	shown := t.Text()
	el.Set("textContent", shown)

	var (
		mu      sync.Mutex
		pending particles.FrameID
		stopped bool
	)
	last := -1.0
	var step func()
	step = func() {
		now := js.Global().Get("performance").Call("now").Float()
		var dt time.Duration
		if last >= 0 {
			dt = time.Duration((now - last) * float64(time.Millisecond))
		}
		last = now

		if text := t.Update(dt); text != shown {
			shown = text
			el.Set("textContent", text)
		}

		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			pending = frames.RequestFrame(step)
		}
	}

	mu.Lock()
	pending = frames.RequestFrame(step)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		if !stopped {
			stopped = true
			frames.CancelFrame(pending)
		}
	}
}
