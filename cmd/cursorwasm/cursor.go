//go:build js && wasm

package main

import (
	"fmt"
	"math"
	"syscall/js"
	"time"

	"github.com/Pritam6569/portfr/internal/client/clock"
	"github.com/Pritam6569/portfr/internal/client/cursor"
	"github.com/Pritam6569/portfr/internal/client/dom"
)

// domCursor draws the tracker's state into the cursor layer.
type domCursor struct {
	doc       js.Value
	indicator js.Value
	trails    js.Value
	bursts    js.Value
	size      cursor.Size

	trailEls map[string]js.Value
	burstEls map[string]js.Value
}

func newDOMCursor(doc js.Value) *domCursor {
	return &domCursor{
		doc:       doc,
		indicator: byID(doc, dom.CursorID),
		trails:    byID(doc, dom.TrailID),
		bursts:    byID(doc, dom.BurstsID),
		trailEls:  make(map[string]js.Value),
		burstEls:  make(map[string]js.Value),
	}
}

func px(f float64) string { return fmt.Sprintf("%.1fpx", f) }

func (r *domCursor) MoveIndicator(p cursor.Point) {
	half := r.size.Diameter() / 2
	r.indicator.Get("style").Set("transform", fmt.Sprintf("translate(%s, %s)", px(p.X-half), px(p.Y-half)))
}

func (r *domCursor) SetSize(s cursor.Size) {
	r.size = s
	style := r.indicator.Get("style")
	style.Set("width", px(s.Diameter()))
	style.Set("height", px(s.Diameter()))
	style.Set("opacity", s.Opacity())
	r.indicator.Get("classList").Call("toggle", "cursor-large", s == cursor.Large)
}

func (r *domCursor) SetVisible(v bool) {
	if v {
		r.indicator.Call("removeAttribute", "hidden")
	} else {
		r.indicator.Call("setAttribute", "hidden", "")
	}
	r.doc.Get("body").Get("classList").Call("toggle", "has-cursor", v)
}

func (r *domCursor) AddTrail(t cursor.Trail) {
	el := r.doc.Call("createElement", "div")
	el.Set("className", "cursor-trail")
	style := el.Get("style")
	style.Set("left", px(t.Point.X-4))
	style.Set("top", px(t.Point.Y-4))
	// Faster movement leaves a brighter trail.
	style.Set("opacity", math.Min(1, 0.3+t.Speed/2000))
	r.trails.Call("appendChild", el)
	r.trailEls[t.ID] = el

	nextFrame(func() {
		style.Set("opacity", 0)
		style.Set("transform", "scale(0.3)")
	})
}

func (r *domCursor) RemoveTrail(id string) {
	if el, ok := r.trailEls[id]; ok {
		el.Call("remove")
		delete(r.trailEls, id)
	}
}

func (r *domCursor) AddBurst(b cursor.Burst) {
	group := r.doc.Call("createElement", "div")
	var glyphs []js.Value
	for _, g := range b.Glyphs {
		el := r.doc.Call("createElement", "span")
		el.Set("className", "cursor-burst")
		el.Set("textContent", g.Char)
		style := el.Get("style")
		style.Set("left", px(b.Origin.X))
		style.Set("top", px(b.Origin.Y))
		group.Call("appendChild", el)
		glyphs = append(glyphs, el)
	}
	r.bursts.Call("appendChild", group)
	r.burstEls[b.ID] = group

	nextFrame(func() {
		for i, g := range b.Glyphs {
			style := glyphs[i].Get("style")
			dx, dy := math.Cos(g.Angle)*g.Distance, math.Sin(g.Angle)*g.Distance
			style.Set("transform", fmt.Sprintf("translate(%s, %s)", px(dx), px(dy)))
			style.Set("opacity", 0)
		}
	})
}

func (r *domCursor) RemoveBurst(id string) {
	if el, ok := r.burstEls[id]; ok {
		el.Call("remove")
		delete(r.burstEls, id)
	}
}

func pointOf(ev js.Value) cursor.Point {
	return cursor.Point{X: ev.Get("clientX").Float(), Y: ev.Get("clientY").Float()}
}

// mountCursor starts the custom cursor and returns its teardown.
func (rt *runtime) mountCursor() func() {
	tracker := cursor.New(cursor.DefaultConfig(), newDOMCursor(rt.doc), clock.Real())
	var events listeners

	events.on(rt.doc, "pointermove", func(this js.Value, args []js.Value) any {
		tracker.Move(pointOf(args[0]), time.Now())
		return nil
	})
	events.on(rt.doc, "pointerdown", func(this js.Value, args []js.Value) any {
		tracker.Down(pointOf(args[0]), time.Now())
		return nil
	})
	events.on(rt.doc.Get("documentElement"), "mouseleave", func(this js.Value, args []js.Value) any {
		tracker.Hide()
		return nil
	})
	events.on(rt.doc.Get("documentElement"), "mouseenter", func(this js.Value, args []js.Value) any {
		tracker.Show()
		return nil
	})

	hover := &dom.Observer[int]{
		Match: func(id int) bool {
			return isInteractive(rt.handles.get(id))
		},
		Attach: func(id int) func() {
			el := rt.handles.get(id)
			detach := tracker.BindHover(func(event string, fn func()) func() {
				return events.on(el, event, func(this js.Value, args []js.Value) any {
					fn()
					return nil
				})
			})
			return func() {
				detach()
				rt.handles.forget(id)
			}
		},
	}

	hover.Observe(rt.interactiveHandles(rt.doc.Get("body"))...)

	mutations := js.FuncOf(func(this js.Value, args []js.Value) any {
		records := args[0]
		for i := 0; i < records.Length(); i++ {
			rec := records.Index(i)
			added := rec.Get("addedNodes")
			for j := 0; j < added.Length(); j++ {
				hover.Inserted(rt.interactiveHandles(added.Index(j))...)
			}
			removed := rec.Get("removedNodes")
			for j := 0; j < removed.Length(); j++ {
				for _, el := range elementAndDescendants(removed.Index(j), dom.InteractiveSelector) {
					if id, ok := rt.handles.lookup(el); ok {
						hover.Removed(id)
					}
				}
			}
		}
		return nil
	})
	observer := js.Global().Get("MutationObserver").New(mutations)
	observer.Call("observe", rt.doc.Get("body"), map[string]any{"childList": true, "subtree": true})

	tracker.Show()

	return func() {
		observer.Call("disconnect")
		mutations.Release()
		hover.Disconnect()
		events.removeAll()
		tracker.Unmount()
	}
}

// interactiveHandles returns handles for the interactive elements in the
// subtree rooted at node.
func (rt *runtime) interactiveHandles(node js.Value) []int {
	var ids []int
	for _, el := range elementAndDescendants(node, dom.InteractiveSelector) {
		if isInteractive(el) {
			ids = append(ids, rt.handles.of(el))
		}
	}
	return ids
}

func isInteractive(el js.Value) bool {
	role := el.Call("getAttribute", "role")
	if !role.Truthy() {
		return dom.IsInteractive(el.Get("tagName").String(), "")
	}
	return dom.IsInteractive(el.Get("tagName").String(), role.String())
}
