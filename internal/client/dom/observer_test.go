package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type element struct {
	tag  string
	role string
}

type harness struct {
	obs      *Observer[*element]
	attaches map[*element]int
	detaches map[*element]int
}

func newHarness() *harness {
	h := &harness{attaches: map[*element]int{}, detaches: map[*element]int{}}
	h.obs = &Observer[*element]{
		Match: func(el *element) bool { return IsInteractive(el.tag, el.role) },
		Attach: func(el *element) func() {
			h.attaches[el]++
			return func() { h.detaches[el]++ }
		},
	}
	return h
}

func TestObserver_AttachesToInitialMatches(t *testing.T) {
	h := newHarness()
	link := &element{tag: "a"}
	div := &element{tag: "div"}
	fakeButton := &element{tag: "div", role: "button"}

	h.obs.Observe(link, div, fakeButton)

	assert.Equal(t, 2, h.obs.Attached())
	assert.True(t, h.obs.IsAttached(link))
	assert.True(t, h.obs.IsAttached(fakeButton))
	assert.False(t, h.obs.IsAttached(div))
}

func TestObserver_AttachesToInsertedElements(t *testing.T) {
	h := newHarness()
	h.obs.Observe()

	late := &element{tag: "BUTTON"}
	h.obs.Inserted(late, &element{tag: "p"})

	assert.True(t, h.obs.IsAttached(late))
	assert.Equal(t, 1, h.obs.Attached())
}

func TestObserver_AttachIsIdempotent(t *testing.T) {
	h := newHarness()
	input := &element{tag: "input"}

	h.obs.Observe(input)
	h.obs.Inserted(input)
	h.obs.Inserted(input)

	assert.Equal(t, 1, h.attaches[input])
}

func TestObserver_RemovedDetachesOnce(t *testing.T) {
	h := newHarness()
	a := &element{tag: "a"}
	h.obs.Observe(a)

	h.obs.Removed(a)
	h.obs.Removed(a)

	assert.Equal(t, 1, h.detaches[a])
	assert.Zero(t, h.obs.Attached())

	// Re-inserting attaches again.
	h.obs.Inserted(a)
	assert.Equal(t, 2, h.attaches[a])
}

func TestObserver_DisconnectDetachesEverything(t *testing.T) {
	h := newHarness()
	a, b := &element{tag: "a"}, &element{tag: "textarea"}
	h.obs.Observe(a)
	h.obs.Inserted(b)

	h.obs.Disconnect()
	h.obs.Disconnect()

	assert.Equal(t, 1, h.detaches[a])
	assert.Equal(t, 1, h.detaches[b])
	assert.Zero(t, h.obs.Attached())

	// Nothing attaches after disconnect.
	h.obs.Inserted(&element{tag: "a"})
	h.obs.Observe(&element{tag: "a"})
	assert.Zero(t, h.obs.Attached())
}

func TestObserver_InsertedBeforeObserveIsIgnored(t *testing.T) {
	h := newHarness()
	h.obs.Inserted(&element{tag: "a"})
	assert.Zero(t, h.obs.Attached())
}

func TestIsInteractive(t *testing.T) {
	tests := []struct {
		tag, role string
		want      bool
	}{
		{"a", "", true},
		{"BUTTON", "", true},
		{"input", "", true},
		{"textarea", "", true},
		{"select", "", true},
		{"span", "button", true},
		{"span", "link", false},
		{"div", "", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInteractive(tt.tag, tt.role), "%s[role=%q]", tt.tag, tt.role)
	}
}
