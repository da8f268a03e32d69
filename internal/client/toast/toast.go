// Package toast shows short notifications, one at a time, that dismiss
// themselves after a delay.
package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pritam6569/portfr/internal/client/clock"
)

// Variant selects the toast styling.
type Variant int

const (
	Default Variant = iota
	Destructive
)

func (v Variant) String() string {
	if v == Destructive {
		return "destructive"
	}
	return "default"
}

// Toast is one notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Variant     Variant
}

// Renderer draws toasts. Calls are made with the toaster's lock held.
type Renderer interface {
	Show(t Toast)
	Dismiss(id string)
}

const (
	DefaultLimit    = 1
	DefaultDuration = 5 * time.Second
)

type entry struct {
	toast Toast
	timer clock.Timer
}

// Toaster owns the visible toasts. Construct one per page and pass it to
// the components that notify.
type Toaster struct {
	r        Renderer
	clock    clock.Clock
	limit    int
	duration time.Duration
	newID    func() string

	mu     sync.Mutex
	active []entry
	closed bool
}

// Option customises a Toaster.
type Option func(*Toaster)

// WithLimit sets how many toasts may be visible at once.
func WithLimit(n int) Option {
	return func(t *Toaster) {
		if n > 0 {
			t.limit = n
		}
	}
}

// WithDuration sets the auto-dismiss delay.
func WithDuration(d time.Duration) Option {
	return func(t *Toaster) {
		if d > 0 {
			t.duration = d
		}
	}
}

// WithIDs sets the toast ID generator.
func WithIDs(next func() string) Option {
	return func(t *Toaster) { t.newID = next }
}

// New creates a Toaster drawing through r.
func New(r Renderer, c clock.Clock, opts ...Option) *Toaster {
	t := &Toaster{
		r:        r,
		clock:    c,
		limit:    DefaultLimit,
		duration: DefaultDuration,
		newID:    func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Show displays a toast, evicting the oldest when over the limit, and
// returns its id.
func (t *Toaster) Show(title, description string, v Variant) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ""
	}

	for len(t.active) >= t.limit {
		t.dismissLocked(t.active[0].toast.ID)
	}

	toast := Toast{ID: t.newID(), Title: title, Description: description, Variant: v}
	id := toast.ID
	t.active = append(t.active, entry{
		toast: toast,
		timer: t.clock.AfterFunc(t.duration, func() { t.Dismiss(id) }),
	})
	t.r.Show(toast)
	return id
}

// Dismiss hides a toast. Unknown ids are ignored.
func (t *Toaster) Dismiss(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dismissLocked(id)
}

func (t *Toaster) dismissLocked(id string) {
	for i, e := range t.active {
		if e.toast.ID != id {
			continue
		}
		e.timer.Stop()
		t.active = append(t.active[:i], t.active[i+1:]...)
		t.r.Dismiss(id)
		return
	}
}

// Active returns the visible toasts, oldest first.
func (t *Toaster) Active() []Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Toast, len(t.active))
	for i, e := range t.active {
		out[i] = e.toast
	}
	return out
}

// Close dismisses everything and rejects further toasts.
func (t *Toaster) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for len(t.active) > 0 {
		t.dismissLocked(t.active[0].toast.ID)
	}
	t.closed = true
}
