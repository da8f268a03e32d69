// Package reveal gates section entrance animations on viewport intersection.
package reveal

import "sync"

// DefaultThreshold is the visible fraction that counts as in view.
const DefaultThreshold = 0.3

// Gate turns intersection ratios into a visible flag. The flag is not
// latched: leaving the viewport hides the section again so re-entering
// replays its animation.
type Gate struct {
	Threshold float64
	visible   bool
}

// Observe feeds the latest intersection ratio and reports the resulting
// state and whether it changed.
func (g *Gate) Observe(ratio float64) (visible, changed bool) {
	threshold := g.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	next := ratio >= threshold
	changed = next != g.visible
	g.visible = next
	return next, changed
}

// Visible is the current state.
func (g *Gate) Visible() bool { return g.visible }

// Sections tracks one Gate per section id.
type Sections struct {
	// Threshold applies to sections registered after it is set.
	Threshold float64
	// OnChange runs on every visibility flip.
	OnChange func(id string, visible bool)

	mu    sync.Mutex
	gates map[string]*Gate
}

// Register adds a section. Registering twice keeps the existing state.
func (s *Sections) Register(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gates == nil {
		s.gates = make(map[string]*Gate)
	}
	if _, ok := s.gates[id]; !ok {
		s.gates[id] = &Gate{Threshold: s.Threshold}
	}
}

// Unregister forgets a section.
func (s *Sections) Unregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.gates, id)
}

// Observe routes an intersection ratio to the section's gate. Unknown ids
// are ignored.
func (s *Sections) Observe(id string, ratio float64) {
	s.mu.Lock()
	g, ok := s.gates[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	visible, changed := g.Observe(ratio)
	s.mu.Unlock()

	if changed && s.OnChange != nil {
		s.OnChange(id, visible)
	}
}

// Visible reports whether the section is currently in view.
func (s *Sections) Visible(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gates[id]
	return ok && g.Visible()
}
