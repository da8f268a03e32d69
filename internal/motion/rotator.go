package motion

import (
	"sync"
	"time"

	"github.com/Pritam6569/portfr/internal/client/clock"
)

// Rotator cycles through phrases on a fixed interval.
type Rotator struct {
	phrases  []string
	interval time.Duration
	clock    clock.Clock
	onChange func(string)

	mu    sync.Mutex
	index int
	timer clock.Timer
}

// NewRotator returns a stopped rotator showing the first phrase.
func NewRotator(phrases []string, interval time.Duration, c clock.Clock, onChange func(string)) *Rotator {
	return &Rotator{phrases: phrases, interval: interval, clock: c, onChange: onChange}
}

// Start begins rotating. Fewer than two phrases never rotate.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil || len(r.phrases) < 2 || r.interval <= 0 {
		return
	}
	r.scheduleLocked()
}

func (r *Rotator) scheduleLocked() {
	r.timer = r.clock.AfterFunc(r.interval, r.tick)
}

func (r *Rotator) tick() {
	r.mu.Lock()
	if r.timer == nil {
		r.mu.Unlock()
		return
	}
	r.index = (r.index + 1) % len(r.phrases)
	phrase := r.phrases[r.index]
	r.scheduleLocked()
	r.mu.Unlock()

	if r.onChange != nil {
		r.onChange(phrase)
	}
}

// Stop halts rotation, keeping the current phrase.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Current is the phrase being shown.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.phrases) == 0 {
		return ""
	}
	return r.phrases[r.index]
}
