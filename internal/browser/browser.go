//go:build js && wasm

// Package browser binds the particle and reveal packages to the DOM.
package browser

import (
	"math"
	"sync"
	"syscall/js"

	"github.com/saineshnakra/portfolio/internal/particles"
)

// Canvas is a <canvas> element used as a particle surface.
type Canvas struct {
	el  js.Value
	ctx js.Value
}

// NewCanvas wraps el. The 2D context is looked up lazily by Context2D.
func NewCanvas(el js.Value) *Canvas {
	return &Canvas{el: el}
}

func (c *Canvas) Resize(w, h int) {
	c.el.Set("width", w)
	c.el.Set("height", h)
}

func (c *Canvas) Context2D() (particles.Context, bool) {
	if c.el.IsUndefined() || c.el.IsNull() {
		return nil, false
	}
	if c.ctx.IsUndefined() {
		ctx := c.el.Call("getContext", "2d")
		if ctx.IsNull() || ctx.IsUndefined() {
			return nil, false
		}
		c.ctx = ctx
	}
	return c, true
}

func (c *Canvas) Clear(w, h float64) {
	c.ctx.Call("clearRect", 0, 0, w, h)
}

func (c *Canvas) FillCircle(x, y, r float64, col particles.RGBA) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", x, y, r, 0, 2*math.Pi)
	c.ctx.Set("fillStyle", col.String())
	c.ctx.Call("fill")
}

// Window is the browser viewport.
type Window struct {
	win js.Value
}

func NewWindow() *Window {
	return &Window{win: js.Global()}
}

func (w *Window) Size() (int, int) {
	return w.win.Get("innerWidth").Int(), w.win.Get("innerHeight").Int()
}

func (w *Window) OnResize(fn func()) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	})
	w.win.Call("addEventListener", "resize", cb)

	var once sync.Once
	return func() {
		once.Do(func() {
			w.win.Call("removeEventListener", "resize", cb)
			cb.Release()
		})
	}
}

// AnimationFrames schedules on requestAnimationFrame.
type AnimationFrames struct {
	win js.Value

	mu    sync.Mutex
	funcs map[particles.FrameID]js.Func
}

func NewAnimationFrames() *AnimationFrames {
	return &AnimationFrames{win: js.Global(), funcs: make(map[particles.FrameID]js.Func)}
}

func (a *AnimationFrames) RequestFrame(fn func()) particles.FrameID {
	var id particles.FrameID
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		a.release(id)
		fn()
		return nil
	})
	id = particles.FrameID(a.win.Call("requestAnimationFrame", cb).Int())

	a.mu.Lock()
	a.funcs[id] = cb
	a.mu.Unlock()
	return id
}

func (a *AnimationFrames) CancelFrame(id particles.FrameID) {
	a.win.Call("cancelAnimationFrame", int(id))
	a.release(id)
}

func (a *AnimationFrames) release(id particles.FrameID) {
	a.mu.Lock()
	cb, ok := a.funcs[id]
	delete(a.funcs, id)
	a.mu.Unlock()
	if ok {
		cb.Release()
	}
}
