//go:build js && wasm

package main

import (
	"encoding/json"
	"strconv"
	"syscall/js"
	"time"

	"github.com/Pritam6569/portfr/internal/client/clock"
	"github.com/Pritam6569/portfr/internal/client/contact"
	"github.com/Pritam6569/portfr/internal/client/dom"
	"github.com/Pritam6569/portfr/internal/client/konami"
	"github.com/Pritam6569/portfr/internal/client/reveal"
	"github.com/Pritam6569/portfr/internal/client/toast"
	"github.com/Pritam6569/portfr/internal/motion"
)

// domToasts draws toasts into the toaster list.
type domToasts struct {
	doc   js.Value
	list  js.Value
	items map[string]js.Value
	close func(id string)
	funcs map[string]js.Func
}

func (r *domToasts) Show(t toast.Toast) {
	li := r.doc.Call("createElement", "li")
	li.Set("className", "toast "+t.Variant.String())
	li.Call("setAttribute", "role", "status")

	title := r.doc.Call("createElement", "div")
	title.Set("className", "toast-title")
	title.Set("textContent", t.Title)
	li.Call("appendChild", title)

	if t.Description != "" {
		desc := r.doc.Call("createElement", "div")
		desc.Set("className", "toast-description")
		desc.Set("textContent", t.Description)
		li.Call("appendChild", desc)
	}

	id := t.ID
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		// Event callbacks must not block on the toaster's lock.
		go r.close(id)
		return nil
	})
	li.Call("addEventListener", "click", fn)

	r.list.Call("appendChild", li)
	r.items[id] = li
	r.funcs[id] = fn
}

func (r *domToasts) Dismiss(id string) {
	if li, ok := r.items[id]; ok {
		li.Call("remove")
		delete(r.items, id)
	}
	if fn, ok := r.funcs[id]; ok {
		fn.Release()
		delete(r.funcs, id)
	}
}

func (rt *runtime) mountToaster() *toast.Toaster {
	r := &domToasts{
		doc:   rt.doc,
		list:  byID(rt.doc, dom.ToasterID),
		items: make(map[string]js.Value),
		funcs: make(map[string]js.Func),
	}
	if !present(r.list) {
		r.list = rt.doc.Call("createElement", "ol")
		r.list.Set("className", "toaster")
		rt.doc.Get("body").Call("appendChild", r.list)
	}
	t := toast.New(r, clock.Real())
	r.close = t.Dismiss
	rt.add(t.Close)
	return t
}

// mountReveal gates section entrances on viewport visibility.
func (rt *runtime) mountReveal() {
	sections := &reveal.Sections{
		Threshold: reveal.DefaultThreshold,
		OnChange: func(id string, visible bool) {
			if el := byID(rt.doc, id); present(el) {
				if visible {
					el.Call("setAttribute", "data-visible", "true")
				} else {
					el.Call("setAttribute", "data-visible", "false")
				}
			}
		},
	}

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		entries := args[0]
		for i := 0; i < entries.Length(); i++ {
			e := entries.Index(i)
			sections.Observe(e.Get("target").Get("id").String(), e.Get("intersectionRatio").Float())
		}
		return nil
	})

	io := js.Global().Get("IntersectionObserver")
	if !io.Truthy() {
		cb.Release()
		rt.revealAll()
		return
	}
	observer := io.New(cb, map[string]any{
		"threshold": []any{0, reveal.DefaultThreshold, 1},
	})

	targets := rt.doc.Call("querySelectorAll", "["+motion.AttrReveal+"]")
	for i := 0; i < targets.Length(); i++ {
		el := targets.Index(i)
		sections.Register(el.Get("id").String())
		observer.Call("observe", el)
	}

	rt.add(func() {
		observer.Call("disconnect")
		cb.Release()
	})
}

func (rt *runtime) revealAll() {
	targets := rt.doc.Call("querySelectorAll", "["+motion.AttrReveal+"]")
	for i := 0; i < targets.Length(); i++ {
		targets.Index(i).Call("setAttribute", "data-visible", "true")
	}
}

// mountHero cycles the hero phrase.
func (rt *runtime) mountHero() {
	el := byID(rt.doc, dom.HeroPhraseID)
	if !present(el) {
		return
	}
	var phrases []string
	if err := json.Unmarshal([]byte(el.Call("getAttribute", dom.AttrPhrases).String()), &phrases); err != nil {
		return
	}
	interval := 3 * time.Second
	if ms := js.Global().Call("parseInt", el.Call("getAttribute", dom.AttrPhraseMillis)).Int(); ms > 0 {
		interval = time.Duration(ms) * time.Millisecond
	}

	rot := motion.NewRotator(phrases, interval, clock.Real(), func(s string) {
		el.Set("textContent", s)
	})
	rot.Start()
	rt.add(rot.Stop)
}

// mountContact acknowledges contact form submissions with a toast.
func (rt *runtime) mountContact(t *toast.Toaster) {
	formEl := byID(rt.doc, dom.ContactFormID)
	if !present(formEl) {
		return
	}
	var events listeners
	events.on(formEl, "submit", func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")

		var f contact.Form
		for _, name := range []string{contact.FieldName, contact.FieldEmail, contact.FieldMessage} {
			if input := formEl.Get("elements").Get(name); present(input) {
				_ = f.Set(name, input.Get("value").String())
			}
		}
		if res := f.SubmitWith(t); res.Outcome == contact.Sent {
			formEl.Call("reset")
		}
		return nil
	})
	rt.add(events.removeAll)
}

// mountDiscord copies the Discord username on click.
func (rt *runtime) mountDiscord(t *toast.Toaster) {
	btn := byID(rt.doc, dom.DiscordCopyID)
	if !present(btn) {
		return
	}
	noop := js.FuncOf(func(this js.Value, args []js.Value) any { return nil })

	var events listeners
	events.on(btn, "click", func(this js.Value, args []js.Value) any {
		username := btn.Call("getAttribute", dom.AttrUsername).String()
		if cb := js.Global().Get("navigator").Get("clipboard"); cb.Truthy() {
			cb.Call("writeText", username).Call("catch", noop)
		}
		t.Show("Username Copied!", "Discord username copied to clipboard.", toast.Default)
		return nil
	})
	rt.add(func() {
		events.removeAll()
		noop.Release()
	})
}

// mountMenu toggles the mobile navigation.
func (rt *runtime) mountMenu() {
	toggle := byID(rt.doc, dom.MenuToggleID)
	menu := byID(rt.doc, dom.MobileMenuID)
	if !present(toggle) || !present(menu) {
		return
	}

	setOpen := func(open bool) {
		if open {
			menu.Call("removeAttribute", "hidden")
		} else {
			menu.Call("setAttribute", "hidden", "")
		}
		toggle.Call("setAttribute", "aria-expanded", strconv.FormatBool(open))
	}

	var events listeners
	events.on(toggle, "click", func(this js.Value, args []js.Value) any {
		setOpen(menu.Call("hasAttribute", "hidden").Bool())
		return nil
	})
	links := menu.Call("querySelectorAll", "a")
	for i := 0; i < links.Length(); i++ {
		events.on(links.Index(i), "click", func(this js.Value, args []js.Value) any {
			setOpen(false)
			return nil
		})
	}
	rt.add(events.removeAll)
}

// mountKonami flashes the page background when the key sequence is typed.
func (rt *runtime) mountKonami() {
	seq := konami.New()
	body := rt.doc.Get("body")

	var events listeners
	var flash clock.Timer
	events.on(rt.doc, "keydown", func(this js.Value, args []js.Value) any {
		if !seq.Feed(args[0].Get("key").String()) {
			return nil
		}
		body.Get("style").Set("backgroundColor", konami.FlashColor)
		if flash != nil {
			flash.Stop()
		}
		flash = clock.Real().AfterFunc(konami.FlashDuration, func() {
			body.Get("style").Set("backgroundColor", "")
		})
		return nil
	})
	rt.add(func() {
		events.removeAll()
		if flash != nil {
			flash.Stop()
		}
	})
}

// mountImages swaps failed images for their placeholder and marks the frame.
func (rt *runtime) mountImages() {
	fail := func(img js.Value) {
		fallback := img.Call("getAttribute", dom.AttrFallback)
		if fallback.IsNull() || img.Get("src").String() == fallback.String() {
			return
		}
		img.Set("src", fallback)
		if frame := img.Get("parentElement"); present(frame) {
			frame.Call("setAttribute", dom.AttrFailed, "")
		}
	}

	var events listeners
	imgs := rt.doc.Call("querySelectorAll", "img["+dom.AttrFallback+"]")
	for i := 0; i < imgs.Length(); i++ {
		img := imgs.Index(i)
		// Images that failed before the runtime loaded never fire again.
		if img.Get("complete").Bool() && img.Get("naturalWidth").Int() == 0 && img.Get("currentSrc").String() != "" {
			fail(img)
			continue
		}
		events.on(img, "error", func(this js.Value, args []js.Value) any {
			fail(img)
			return nil
		})
	}
	rt.add(events.removeAll)
}
