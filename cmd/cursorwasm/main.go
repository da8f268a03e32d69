//go:build js && wasm

// Command cursorwasm is the browser runtime for the portfolio page. It binds
// DOM events to the client packages: the custom cursor, section reveals, the
// contact form, toasts, the hero phrase rotation and the key sequence egg.
//
// Build with:
//
//	GOOS=js GOARCH=wasm go build -o web/static/cursor.wasm ./cmd/cursorwasm
package main

import (
	"syscall/js"

	"github.com/Pritam6569/portfr/internal/client/cursor"
)

type runtime struct {
	doc       js.Value
	handles   *handles
	teardowns []func()
}

func main() {
	doc := js.Global().Get("document")
	rt := &runtime{doc: doc, handles: newHandles()}

	toaster := rt.mountToaster()
	rt.mountReveal()
	rt.mountImages()
	rt.mountHero()
	rt.mountContact(toaster)
	rt.mountDiscord(toaster)
	rt.mountMenu()
	rt.mountKonami()

	if cursor.Supported(environment()) {
		rt.add(rt.mountCursor())
	}

	doc.Get("body").Call("setAttribute", "data-visible", "true")

	done := make(chan struct{})
	var pagehide js.Func
	pagehide = js.FuncOf(func(this js.Value, args []js.Value) any {
		// A page restored from the back/forward cache keeps running.
		if args[0].Get("persisted").Bool() {
			return nil
		}
		rt.unmount()
		pagehide.Release()
		close(done)
		return nil
	})
	js.Global().Call("addEventListener", "pagehide", pagehide)

	<-done
}

func (rt *runtime) add(teardown func()) {
	rt.teardowns = append(rt.teardowns, teardown)
}

func (rt *runtime) unmount() {
	for i := len(rt.teardowns) - 1; i >= 0; i-- {
		rt.teardowns[i]()
	}
	rt.teardowns = nil
}

func environment() cursor.Environment {
	win := js.Global()
	env := cursor.Environment{Browser: win.Get("document").Truthy()}
	if mm := win.Get("matchMedia"); mm.Truthy() {
		env.CoarsePointer = win.Call("matchMedia", "(pointer: coarse)").Get("matches").Bool()
	}
	return env
}
