package cursor

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pritam6569/portfr/internal/client/clock"
	"github.com/Pritam6569/portfr/internal/client/dom"
)

type fakeRenderer struct {
	pos     Point
	size    Size
	visible bool
	trails  map[string]Trail
	bursts  map[string]Burst
	added   []Trail
	removed []string
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{trails: map[string]Trail{}, bursts: map[string]Burst{}}
}

func (r *fakeRenderer) MoveIndicator(p Point) { r.pos = p }
func (r *fakeRenderer) SetSize(s Size)        { r.size = s }
func (r *fakeRenderer) SetVisible(v bool)     { r.visible = v }
func (r *fakeRenderer) AddTrail(t Trail) {
	r.trails[t.ID] = t
	r.added = append(r.added, t)
}
func (r *fakeRenderer) RemoveTrail(id string) {
	delete(r.trails, id)
	r.removed = append(r.removed, id)
}
func (r *fakeRenderer) AddBurst(b Burst)      { r.bursts[b.ID] = b }
func (r *fakeRenderer) RemoveBurst(id string) { delete(r.bursts, id) }

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func sequentialIDs() Option {
	n := 0
	return WithIDs(func() string {
		n++
		return fmt.Sprintf("el-%d", n)
	})
}

func newTestTracker(t *testing.T, cfg Config) (*Tracker, *fakeRenderer, *clock.Fake) {
	t.Helper()
	r := newFakeRenderer()
	c := clock.NewFake(epoch)
	tr := New(cfg, r, c, sequentialIDs(), WithRand(rand.New(rand.NewPCG(1, 2))))
	return tr, r, c
}

// moveEvery moves right by one pixel per step, advancing the clock between moves.
func moveEvery(tr *Tracker, c *clock.Fake, steps int, gap time.Duration) {
	for i := 0; i < steps; i++ {
		tr.Move(Point{X: float64(i), Y: 0}, c.Now())
		c.Advance(gap)
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(Environment{Browser: true}))
	assert.False(t, Supported(Environment{Browser: true, CoarsePointer: true}))
	assert.False(t, Supported(Environment{}))
}

func TestTracker_TrailNeverExceedsCapacity(t *testing.T) {
	cfg := Config{TrailCapacity: 5, TrailInterval: time.Millisecond, TrailLifetime: time.Hour}
	tr, r, c := newTestTracker(t, cfg)

	for i := 0; i < 20; i++ {
		tr.Move(Point{X: float64(i)}, c.Now())
		c.Advance(20 * time.Millisecond)

		trail := tr.Trail()
		require.LessOrEqual(t, len(trail), 5)
		assert.Len(t, r.trails, len(trail))
		assert.Equal(t, len(trail), c.Pending(), "one removal timer per live element")
	}

	// The 6th insertion evicted exactly the first element, and so on.
	assert.Equal(t, []string{"el-1", "el-2", "el-3", "el-4", "el-5",
		"el-6", "el-7", "el-8", "el-9", "el-10",
		"el-11", "el-12", "el-13", "el-14", "el-15"}, r.removed)

	want := []Trail{}
	for i := 15; i < 20; i++ {
		want = append(want, Trail{
			ID:    fmt.Sprintf("el-%d", i+1),
			Point: Point{X: float64(i)},
			At:    epoch.Add(time.Duration(i) * 20 * time.Millisecond),
		})
	}
	ignoreSpeed := cmp.FilterPath(func(p cmp.Path) bool { return p.Last().String() == ".Speed" }, cmp.Ignore())
	if diff := cmp.Diff(want, tr.Trail(), ignoreSpeed); diff != "" {
		t.Errorf("trail mismatch (-want +got):\n%s", diff)
	}
}

func TestTracker_TrailInsertionIsThrottled(t *testing.T) {
	cfg := Config{TrailCapacity: 50, TrailInterval: 30 * time.Millisecond, TrailLifetime: time.Hour}
	tr, r, c := newTestTracker(t, cfg)

	moveEvery(tr, c, 300, time.Millisecond)

	assert.GreaterOrEqual(t, len(r.added), 9)
	assert.LessOrEqual(t, len(r.added), 11)
	for i := 1; i < len(r.added); i++ {
		gap := r.added[i].At.Sub(r.added[i-1].At)
		assert.GreaterOrEqual(t, gap, 29*time.Millisecond)
	}
	// The indicator itself follows every event.
	assert.Equal(t, Point{X: 299}, r.pos)
}

func TestTracker_TrailDecaysWithoutFurtherInput(t *testing.T) {
	cfg := DefaultConfig()
	tr, r, c := newTestTracker(t, cfg)

	moveEvery(tr, c, 10, 40*time.Millisecond)
	require.NotEmpty(t, tr.Trail())

	// No more pointer events; timers alone must clear everything.
	c.Advance(cfg.TrailLifetime)

	assert.Empty(t, tr.Trail())
	assert.Empty(t, r.trails)
	assert.Zero(t, c.Pending())
}

func TestTracker_EachElementExpiresWithinLifetime(t *testing.T) {
	cfg := Config{TrailCapacity: 12, TrailInterval: 10 * time.Millisecond, TrailLifetime: 200 * time.Millisecond}
	tr, r, c := newTestTracker(t, cfg)

	for i := 0; i < 100; i++ {
		if i < 50 {
			tr.Move(Point{X: float64(i)}, c.Now())
		}
		c.Advance(5 * time.Millisecond)

		now := c.Now()
		for _, el := range r.trails {
			assert.LessOrEqual(t, now.Sub(el.At), cfg.TrailLifetime, "element %s outlived its lifetime", el.ID)
		}
	}
	assert.Empty(t, r.trails)
}

func TestTracker_VelocityIsSmoothed(t *testing.T) {
	tr, _, _ := newTestTracker(t, DefaultConfig())

	tr.Move(Point{X: 0}, epoch)
	assert.Equal(t, Point{}, tr.Velocity())

	tr.Move(Point{X: 10}, epoch.Add(10*time.Millisecond))
	assert.InDelta(t, 200.0, tr.Velocity().X, 1e-9)

	tr.Move(Point{X: 20}, epoch.Add(20*time.Millisecond))
	assert.InDelta(t, 360.0, tr.Velocity().X, 1e-9)

	// Zero elapsed time keeps the previous estimate.
	tr.Move(Point{X: 500}, epoch.Add(20*time.Millisecond))
	assert.InDelta(t, 360.0, tr.Velocity().X, 1e-9)
	assert.Zero(t, tr.Velocity().Y)
}

func TestTracker_HoverSizing(t *testing.T) {
	tr, r, _ := newTestTracker(t, DefaultConfig())
	assert.Equal(t, Normal, tr.Size())

	tr.Enter()
	assert.Equal(t, Large, tr.Size())
	assert.Equal(t, Large, r.size)

	// Overlapping interactive elements.
	tr.Enter()
	tr.Leave()
	assert.Equal(t, Large, tr.Size())

	tr.Leave()
	assert.Equal(t, Normal, tr.Size())
	assert.Equal(t, Normal, r.size)

	// Stray leave events never push the count negative.
	tr.Leave()
	tr.Enter()
	assert.Equal(t, Large, tr.Size())
}

// fakeElement records the listeners BindHover installs.
type fakeElement struct {
	tag      string
	handlers map[string]func()
}

func newElement(tag string) *fakeElement {
	return &fakeElement{tag: tag, handlers: map[string]func(){}}
}

func (e *fakeElement) on(event string, fn func()) func() {
	e.handlers[event] = fn
	return func() { delete(e.handlers, event) }
}

func (e *fakeElement) fire(event string) {
	if fn, ok := e.handlers[event]; ok {
		fn()
	}
}

func hoverObserver(tr *Tracker) *dom.Observer[*fakeElement] {
	return &dom.Observer[*fakeElement]{
		Match: func(e *fakeElement) bool { return dom.IsInteractive(e.tag, "") },
		Attach: func(e *fakeElement) func() {
			return tr.BindHover(e.on)
		},
	}
}

func TestBindHover_InsertedElementTogglesSize(t *testing.T) {
	tr, r, _ := newTestTracker(t, DefaultConfig())
	obs := hoverObserver(tr)
	obs.Observe(newElement("main"))

	late := newElement("BUTTON")
	plain := newElement("div")
	obs.Inserted(late, plain)
	require.Equal(t, 1, obs.Attached())
	assert.Empty(t, plain.handlers)

	late.fire(EventEnter)
	assert.Equal(t, Large, tr.Size())
	assert.Equal(t, Large, r.size)

	late.fire(EventLeave)
	assert.Equal(t, Normal, tr.Size())
	assert.Equal(t, Normal, r.size)
}

func TestBindHover_RepeatedEventsCountOnce(t *testing.T) {
	tr, _, _ := newTestTracker(t, DefaultConfig())
	a, b := newElement("a"), newElement("button")
	tr.BindHover(a.on)
	tr.BindHover(b.on)

	a.fire(EventEnter)
	a.fire(EventEnter)
	b.fire(EventEnter)
	a.fire(EventLeave)
	a.fire(EventLeave)
	assert.Equal(t, Large, tr.Size())

	b.fire(EventLeave)
	assert.Equal(t, Normal, tr.Size())
}

func TestBindHover_RemovingHoveredElementRestoresSize(t *testing.T) {
	tr, _, _ := newTestTracker(t, DefaultConfig())
	obs := hoverObserver(tr)
	obs.Observe()

	link := newElement("a")
	obs.Inserted(link)
	link.fire(EventEnter)
	require.Equal(t, Large, tr.Size())

	obs.Removed(link)
	assert.Equal(t, Normal, tr.Size())
	assert.Empty(t, link.handlers)
	assert.Zero(t, obs.Attached())

	// Events from a detached element have nowhere to go.
	link.fire(EventEnter)
	assert.Equal(t, Normal, tr.Size())
}

func TestBindHover_DisconnectReleasesHover(t *testing.T) {
	tr, _, _ := newTestTracker(t, DefaultConfig())
	obs := hoverObserver(tr)
	btn := newElement("button")
	obs.Observe(btn)

	btn.fire(EventEnter)
	obs.Disconnect()
	assert.Equal(t, Normal, tr.Size())
	assert.Empty(t, btn.handlers)
}

func TestSize(t *testing.T) {
	assert.Equal(t, "normal", Normal.String())
	assert.Equal(t, "large", Large.String())
	assert.Equal(t, 30.0, Normal.Diameter())
	assert.Equal(t, 60.0, Large.Diameter())
	assert.Greater(t, Large.Opacity(), Normal.Opacity())
}

func TestTracker_BurstIsRemovedAfterDuration(t *testing.T) {
	cfg := DefaultConfig()
	tr, r, c := newTestTracker(t, cfg)

	tr.Down(Point{X: 100, Y: 100}, c.Now())
	c.Advance(100 * time.Millisecond)
	tr.Down(Point{X: 200, Y: 50}, c.Now())

	require.Len(t, r.bursts, 2)
	for _, b := range r.bursts {
		require.Len(t, b.Glyphs, cfg.BurstGlyphs)
		for _, g := range b.Glyphs {
			assert.GreaterOrEqual(t, g.Distance, cfg.BurstDistance*0.6)
			assert.LessOrEqual(t, g.Distance, cfg.BurstDistance)
			assert.NotEmpty(t, g.Char)
		}
	}

	c.Advance(cfg.BurstDuration - 100*time.Millisecond)
	assert.Len(t, r.bursts, 1)
	assert.Equal(t, 1, tr.Bursts())

	c.Advance(100 * time.Millisecond)
	assert.Empty(t, r.bursts)
	assert.Zero(t, tr.Bursts())
}

func TestTracker_BurstGlyphsSpreadAroundTheCircle(t *testing.T) {
	tr, r, c := newTestTracker(t, Config{BurstGlyphs: 4})
	tr.Down(Point{}, c.Now())

	var b Burst
	for _, v := range r.bursts {
		b = v
	}
	step := 2 * 3.141592653589793 / 4
	for i, g := range b.Glyphs {
		assert.InDelta(t, float64(i)*step, g.Angle, step/4+1e-9)
	}
}

func TestTracker_VisibilityFollowsDocument(t *testing.T) {
	tr, r, _ := newTestTracker(t, DefaultConfig())

	tr.Show()
	assert.True(t, r.visible)
	tr.Hide()
	assert.False(t, r.visible)
}

func TestTracker_UnmountClearsEverything(t *testing.T) {
	tr, r, c := newTestTracker(t, DefaultConfig())

	tr.Show()
	tr.Enter()
	moveEvery(tr, c, 5, 40*time.Millisecond)
	tr.Down(Point{X: 1, Y: 1}, c.Now())
	require.NotZero(t, c.Pending())

	tr.Unmount()

	assert.Zero(t, c.Pending(), "no timers may survive unmount")
	assert.Empty(t, r.trails)
	assert.Empty(t, r.bursts)
	assert.False(t, r.visible)
	assert.Empty(t, tr.Trail())

	// Input after unmount is ignored.
	tr.Move(Point{X: 9}, c.Now())
	tr.Down(Point{X: 9}, c.Now())
	tr.Show()
	assert.Empty(t, r.trails)
	assert.Empty(t, r.bursts)
	assert.False(t, r.visible)

	tr.Unmount()
	c.Advance(time.Minute)
}

func TestConfig_WithDefaults(t *testing.T) {
	got := Config{TrailCapacity: 12, Smoothing: 1.5}.withDefaults()
	want := DefaultConfig()
	want.TrailCapacity = 12
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
