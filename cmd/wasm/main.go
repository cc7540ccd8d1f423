//go:build js && wasm

// Command wasm runs in the browser: it paints a particle field on every
// canvas[data-particle-field] and reveals every [data-reveal] section once it scrolls into view.
package main

import (
	"log"
	"strconv"
	"strings"
	"syscall/js"

	"github.com/saineshnakra/portfolio/internal/browser"
	"github.com/saineshnakra/portfolio/internal/particles"
	"github.com/saineshnakra/portfolio/internal/reveal"
)

const defaultThreshold = 0.3

func main() {
	doc := js.Global().Get("document")
	win := browser.NewWindow()
	frames := browser.NewAnimationFrames()

	var renderers []*particles.Renderer
	canvases := doc.Call("querySelectorAll", "canvas[data-particle-field]")
	for i := 0; i < canvases.Length(); i++ {
		r := particles.NewRenderer(win, frames)
		if !r.Mount(browser.NewCanvas(canvases.Index(i))) {
			continue
		}
		renderers = append(renderers, r)
	}

	// Sections marked data-mount play their entrances right away.
	mounted := doc.Call("querySelectorAll", "[data-mount]")
	for i := 0; i < mounted.Length(); i++ {
		enter(frames, mounted.Index(i))
	}

	var typers []func()
	roles := doc.Call("querySelectorAll", "[data-roles]")
	for i := 0; i < roles.Length(); i++ {
		el := roles.Index(i)
		typers = append(typers, browser.Type(frames, el, strings.Split(el.Get("dataset").Get("roles").String(), "|")))
	}

	var triggers []*reveal.Trigger
	sections := doc.Call("querySelectorAll", "[data-reveal]")
	for i := 0; i < sections.Length(); i++ {
		section := sections.Index(i)
		threshold := defaultThreshold
		if v := section.Get("dataset").Get("revealThreshold"); !v.IsUndefined() {
			if th, err := strconv.ParseFloat(v.String(), 64); err == nil {
				threshold = th
			}
		}

		t := reveal.New()
		t.OnReveal(func() { enter(frames, section) })
		if err := t.Attach(browser.NewElement(section), threshold); err != nil {
			log.Printf("reveal %s: %v", section.Get("id").String(), err)
			section.Get("classList").Call("add", "revealed")
			continue
		}
		triggers = append(triggers, t)
	}

	pagehide := js.FuncOf(func(this js.Value, args []js.Value) any {
		for _, r := range renderers {
			r.Unmount()
		}
		for _, t := range triggers {
			t.Detach()
		}
		for _, stop := range typers {
			stop()
		}
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", pagehide)

	select {}
}

// enter marks section revealed and plays the entrance of each [data-enter] child.
func enter(frames *browser.AnimationFrames, section js.Value) {
	section.Get("classList").Call("add", "revealed")
	children := section.Call("querySelectorAll", "[data-enter]")
	for j := 0; j < children.Length(); j++ {
		child := children.Index(j)
		data := child.Get("dataset")
		var delay float32
		if v := data.Get("enterDelay"); !v.IsUndefined() {
			if d, err := strconv.ParseFloat(v.String(), 32); err == nil {
				delay = float32(d)
			}
		}
		browser.Enter(frames, child, reveal.Direction(data.Get("enter").String()), delay)
	}
}
