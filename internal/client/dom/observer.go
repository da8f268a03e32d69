// Package dom attaches behaviour to elements that match a predicate, both
// those present at mount and those inserted later.
package dom

import "sync"

// Observer attaches to matching elements once and detaches on removal or
// Disconnect. Every detach function runs exactly once.
type Observer[E comparable] struct {
	// Match selects the elements to attach to.
	Match func(E) bool
	// Attach installs behaviour on el and returns its undo.
	Attach func(el E) (detach func())

	mu        sync.Mutex
	attached  map[E]func()
	connected bool
	closed    bool
}

// Observe starts observing, attaching to the initial elements.
func (o *Observer[E]) Observe(initial ...E) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.connected = true
	o.attachLocked(initial)
}

// Inserted handles elements added to the document after Observe.
func (o *Observer[E]) Inserted(els ...E) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.connected || o.closed {
		return
	}
	o.attachLocked(els)
}

// Removed detaches from elements taken out of the document.
func (o *Observer[E]) Removed(els ...E) {
	o.mu.Lock()
	var undo []func()
	for _, el := range els {
		if detach, ok := o.attached[el]; ok {
			delete(o.attached, el)
			undo = append(undo, detach)
		}
	}
	o.mu.Unlock()

	for _, detach := range undo {
		detach()
	}
}

// Disconnect detaches from everything and stops observing for good.
func (o *Observer[E]) Disconnect() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	o.connected = false
	undo := make([]func(), 0, len(o.attached))
	for el, detach := range o.attached {
		undo = append(undo, detach)
		delete(o.attached, el)
	}
	o.mu.Unlock()

	for _, detach := range undo {
		detach()
	}
}

// Attached is the number of elements currently attached.
func (o *Observer[E]) Attached() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.attached)
}

// IsAttached reports whether el is currently attached.
func (o *Observer[E]) IsAttached(el E) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.attached[el]
	return ok
}

func (o *Observer[E]) attachLocked(els []E) {
	if o.attached == nil {
		o.attached = make(map[E]func())
	}
	for _, el := range els {
		if _, ok := o.attached[el]; ok {
			continue
		}
		if o.Match != nil && !o.Match(el) {
			continue
		}
		detach := o.Attach(el)
		if detach == nil {
			detach = func() {}
		}
		o.attached[el] = detach
	}
}
