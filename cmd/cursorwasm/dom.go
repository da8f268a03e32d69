//go:build js && wasm

package main

import (
	"syscall/js"
)

// listeners tracks event listeners so they can all be removed on unmount.
type listeners struct {
	items []listener
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// on adds fn as a listener and returns a func that removes just that one.
func (l *listeners) on(target js.Value, event string, fn func(this js.Value, args []js.Value) any) func() {
	f := js.FuncOf(fn)
	target.Call("addEventListener", event, f)
	l.items = append(l.items, listener{target: target, event: event, fn: f})
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		target.Call("removeEventListener", event, f)
		for i, it := range l.items {
			if it.fn.Value.Equal(f.Value) {
				l.items = append(l.items[:i], l.items[i+1:]...)
				break
			}
		}
		f.Release()
	}
}

func (l *listeners) removeAll() {
	for _, it := range l.items {
		it.target.Call("removeEventListener", it.event, it.fn)
		it.fn.Release()
	}
	l.items = nil
}

// handles gives DOM elements stable integer keys.
type handles struct {
	next int
	els  map[int]js.Value
}

const handleProp = "__portfrHandle"

func newHandles() *handles {
	return &handles{els: make(map[int]js.Value)}
}

// of returns el's handle, assigning one if needed.
func (h *handles) of(el js.Value) int {
	if v := el.Get(handleProp); v.Type() == js.TypeNumber {
		return v.Int()
	}
	h.next++
	el.Set(handleProp, h.next)
	h.els[h.next] = el
	return h.next
}

// lookup returns el's handle without assigning one.
func (h *handles) lookup(el js.Value) (int, bool) {
	v := el.Get(handleProp)
	if v.Type() != js.TypeNumber {
		return 0, false
	}
	return v.Int(), true
}

func (h *handles) get(id int) js.Value {
	return h.els[id]
}

func (h *handles) forget(id int) {
	if el, ok := h.els[id]; ok {
		el.Delete(handleProp)
		delete(h.els, id)
	}
}

// nextFrame runs fn on the next animation frame.
func nextFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	js.Global().Call("requestAnimationFrame", cb)
}

// elementAndDescendants returns node and every descendant matching selector.
// Non-element nodes yield nothing.
func elementAndDescendants(node js.Value, selector string) []js.Value {
	if node.Get("nodeType").Int() != 1 {
		return nil
	}
	out := []js.Value{node}
	list := node.Call("querySelectorAll", selector)
	for i := 0; i < list.Length(); i++ {
		out = append(out, list.Index(i))
	}
	return out
}

func byID(doc js.Value, id string) js.Value {
	return doc.Call("getElementById", id)
}

func present(v js.Value) bool {
	return v.Truthy()
}
