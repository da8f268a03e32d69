package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate_IsNotLatched(t *testing.T) {
	g := &Gate{Threshold: 0.25}

	steps := []struct {
		ratio       float64
		wantVisible bool
		wantChanged bool
	}{
		{0, false, false},
		{0.1, false, false},
		{0.25, true, true},
		{0.9, true, false},
		{0.2, false, true},
		{0, false, false},
		{0.5, true, true},
	}
	for i, s := range steps {
		visible, changed := g.Observe(s.ratio)
		assert.Equal(t, s.wantVisible, visible, "step %d", i)
		assert.Equal(t, s.wantChanged, changed, "step %d", i)
	}
}

func TestGate_DefaultThreshold(t *testing.T) {
	g := &Gate{}
	visible, _ := g.Observe(0.05)
	assert.False(t, visible)
	visible, _ = g.Observe(DefaultThreshold)
	assert.True(t, visible)
}

func TestSections_DispatchesFlips(t *testing.T) {
	type flip struct {
		id      string
		visible bool
	}
	var flips []flip
	s := &Sections{
		Threshold: 0.2,
		OnChange:  func(id string, visible bool) { flips = append(flips, flip{id, visible}) },
	}
	s.Register("about")
	s.Register("projects")
	s.Register("about")

	s.Observe("about", 0.5)
	s.Observe("about", 0.6)
	s.Observe("projects", 0.1)
	s.Observe("unknown", 1)
	s.Observe("about", 0)
	s.Observe("about", 0.3)

	assert.Equal(t, []flip{
		{"about", true},
		{"about", false},
		{"about", true},
	}, flips)
	assert.True(t, s.Visible("about"))
	assert.False(t, s.Visible("projects"))

	s.Unregister("about")
	assert.False(t, s.Visible("about"))
}
