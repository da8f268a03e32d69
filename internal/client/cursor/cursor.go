// Package cursor tracks the pointer for the decorative custom cursor: an
// indicator that follows the pointer, a decaying trail, hover sizing and
// click bursts. Drawing is delegated to a Renderer.
package cursor

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Pritam6569/portfr/internal/client/clock"
)

// Point is a viewport position in CSS pixels.
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point     { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }
func (p Point) Add(q Point) Point     { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Len() float64          { return math.Hypot(p.X, p.Y) }

// Size is the indicator size mode.
type Size int

const (
	Normal Size = iota
	Large
)

func (s Size) String() string {
	if s == Large {
		return "large"
	}
	return "normal"
}

// Diameter is the indicator diameter in pixels.
func (s Size) Diameter() float64 {
	if s == Large {
		return 60
	}
	return 30
}

// Opacity is the indicator opacity.
func (s Size) Opacity() float64 {
	if s == Large {
		return 0.9
	}
	return 0.6
}

// Trail is one decaying trail element.
type Trail struct {
	ID    string
	Point Point
	At    time.Time
	// Speed is the smoothed pointer speed in px/s when the element was placed.
	Speed float64
}

// Glyph is one burst particle.
type Glyph struct {
	Char     string
	Angle    float64 // radians
	Distance float64 // px travelled before fading out
}

// Burst is the radial group of glyphs spawned by a click.
type Burst struct {
	ID     string
	Origin Point
	Glyphs []Glyph
}

// Environment describes where the tracker would run.
type Environment struct {
	Browser       bool
	CoarsePointer bool
}

// Supported reports whether the custom cursor should be mounted at all.
// Touch-primary devices have no hover and keep the native pointer.
func Supported(env Environment) bool {
	return env.Browser && !env.CoarsePointer
}

// Renderer draws the cursor. Calls are made with the tracker's lock held and
// must not call back into the Tracker.
type Renderer interface {
	MoveIndicator(p Point)
	SetSize(s Size)
	SetVisible(v bool)
	AddTrail(t Trail)
	RemoveTrail(id string)
	AddBurst(b Burst)
	RemoveBurst(id string)
}

// Config tunes the tracker. Zero fields take DefaultConfig values.
type Config struct {
	TrailCapacity int
	TrailInterval time.Duration
	TrailLifetime time.Duration
	BurstGlyphs   int
	BurstDuration time.Duration
	BurstDistance float64
	// Smoothing is the weight of the previous velocity in the moving average.
	Smoothing float64
}

// DefaultConfig returns the standard cursor tuning.
func DefaultConfig() Config {
	return Config{
		TrailCapacity: 8,
		TrailInterval: 30 * time.Millisecond,
		TrailLifetime: 600 * time.Millisecond,
		BurstGlyphs:   8,
		BurstDuration: 700 * time.Millisecond,
		BurstDistance: 60,
		Smoothing:     0.8,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.TrailCapacity <= 0 {
		c.TrailCapacity = d.TrailCapacity
	}
	if c.TrailInterval <= 0 {
		c.TrailInterval = d.TrailInterval
	}
	if c.TrailLifetime <= 0 {
		c.TrailLifetime = d.TrailLifetime
	}
	if c.BurstGlyphs <= 0 {
		c.BurstGlyphs = d.BurstGlyphs
	}
	if c.BurstDuration <= 0 {
		c.BurstDuration = d.BurstDuration
	}
	if c.BurstDistance <= 0 {
		c.BurstDistance = d.BurstDistance
	}
	if c.Smoothing <= 0 || c.Smoothing >= 1 {
		c.Smoothing = d.Smoothing
	}
	return c
}

var burstChars = []string{"✦", "✧", "•", "✶", "·", "✺"}

// Option customises a Tracker.
type Option func(*Tracker)

// WithRand sets the jitter source for bursts.
func WithRand(r *rand.Rand) Option {
	return func(t *Tracker) { t.rnd = r }
}

// WithIDs sets the element ID generator.
func WithIDs(next func() string) Option {
	return func(t *Tracker) { t.newID = next }
}

// Tracker owns the cursor state between mount and Unmount.
type Tracker struct {
	cfg   Config
	r     Renderer
	clock clock.Clock
	rnd   *rand.Rand
	newID func() string

	mu        sync.Mutex
	last      Point
	lastAt    time.Time
	hasLast   bool
	velocity  Point
	limiter   *rate.Limiter
	trail     *Ring[Trail]
	trailTTL  map[string]clock.Timer
	bursts    map[string]clock.Timer
	depth     int
	size      Size
	visible   bool
	unmounted bool
}

// New mounts a tracker drawing through r.
func New(cfg Config, r Renderer, c clock.Clock, opts ...Option) *Tracker {
	cfg = cfg.withDefaults()
	t := &Tracker{
		cfg:      cfg,
		r:        r,
		clock:    c,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID:    func() string { return uuid.NewString() },
		limiter:  rate.NewLimiter(rate.Every(cfg.TrailInterval), 1),
		trail:    NewRing[Trail](cfg.TrailCapacity),
		trailTTL: make(map[string]clock.Timer),
		bursts:   make(map[string]clock.Timer),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Move records a pointer position observed at time at.
func (t *Tracker) Move(p Point, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted {
		return
	}

	if t.hasLast {
		if dt := at.Sub(t.lastAt).Seconds(); dt > 0 {
			instant := p.Sub(t.last).Scale(1 / dt)
			t.velocity = t.velocity.Scale(t.cfg.Smoothing).Add(instant.Scale(1 - t.cfg.Smoothing))
		}
	}
	t.last, t.lastAt, t.hasLast = p, at, true
	t.r.MoveIndicator(p)

	if t.limiter.AllowN(at, 1) {
		t.addTrail(Trail{ID: t.newID(), Point: p, At: at, Speed: t.velocity.Len()})
	}
}

func (t *Tracker) addTrail(tr Trail) {
	if evicted, ok := t.trail.Push(tr); ok {
		t.dropTrail(evicted.ID)
	}
	t.r.AddTrail(tr)
	id := tr.ID
	t.trailTTL[id] = t.clock.AfterFunc(t.cfg.TrailLifetime, func() { t.expireTrail(id) })
}

// dropTrail cancels the removal timer of an evicted element and erases it.
func (t *Tracker) dropTrail(id string) {
	if timer, ok := t.trailTTL[id]; ok {
		timer.Stop()
		delete(t.trailTTL, id)
	}
	t.r.RemoveTrail(id)
}

func (t *Tracker) expireTrail(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.trailTTL[id]; !ok {
		return
	}
	delete(t.trailTTL, id)
	t.trail.RemoveFunc(func(tr Trail) bool { return tr.ID == id })
	t.r.RemoveTrail(id)
}

// Down spawns a click burst at p.
func (t *Tracker) Down(p Point, at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted {
		return
	}

	n := t.cfg.BurstGlyphs
	step := 2 * math.Pi / float64(n)
	b := Burst{ID: t.newID(), Origin: p, Glyphs: make([]Glyph, n)}
	for i := range b.Glyphs {
		b.Glyphs[i] = Glyph{
			Char:     burstChars[t.rnd.IntN(len(burstChars))],
			Angle:    float64(i)*step + (t.rnd.Float64()-0.5)*step*0.5,
			Distance: t.cfg.BurstDistance * (0.6 + 0.4*t.rnd.Float64()),
		}
	}
	t.r.AddBurst(b)
	id := b.ID
	t.bursts[id] = t.clock.AfterFunc(t.cfg.BurstDuration, func() { t.expireBurst(id) })
}

func (t *Tracker) expireBurst(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.bursts[id]; !ok {
		return
	}
	delete(t.bursts, id)
	t.r.RemoveBurst(id)
}

// Enter records the pointer entering an interactive element. Nested or
// overlapping elements are counted so leaving one keeps the large size.
func (t *Tracker) Enter() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted {
		return
	}
	t.depth++
	t.setSize(Large)
}

// Leave records the pointer leaving an interactive element.
func (t *Tracker) Leave() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted {
		return
	}
	if t.depth > 0 {
		t.depth--
	}
	if t.depth == 0 {
		t.setSize(Normal)
	}
}

// Events an interactive element reports to BindHover.
const (
	EventEnter = "mouseenter"
	EventLeave = "mouseleave"
)

// BindHover ties one element's enter and leave events to the hover depth.
// on registers fn for an event and returns its removal. Repeated enters or
// leaves from the same element count once. The returned detach removes both
// listeners and releases the hover if the element was still under the
// pointer.
func (t *Tracker) BindHover(on func(event string, fn func()) (off func())) (detach func()) {
	hovered := false
	offEnter := on(EventEnter, func() {
		if !hovered {
			hovered = true
			t.Enter()
		}
	})
	offLeave := on(EventLeave, func() {
		if hovered {
			hovered = false
			t.Leave()
		}
	})
	return func() {
		offEnter()
		offLeave()
		if hovered {
			hovered = false
			t.Leave()
		}
	}
}

func (t *Tracker) setSize(s Size) {
	if t.size == s {
		return
	}
	t.size = s
	t.r.SetSize(s)
}

// Show makes the indicator visible, typically when the pointer enters the document.
func (t *Tracker) Show() { t.setVisible(true) }

// Hide hides the indicator when the pointer leaves the document.
func (t *Tracker) Hide() { t.setVisible(false) }

func (t *Tracker) setVisible(v bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted || t.visible == v {
		return
	}
	t.visible = v
	t.r.SetVisible(v)
}

// Velocity is the smoothed pointer velocity in px/s.
func (t *Tracker) Velocity() Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.velocity
}

// Size is the current indicator size.
func (t *Tracker) Size() Size {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Trail returns the live trail elements, oldest first.
func (t *Tracker) Trail() []Trail {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.trail.Items()
}

// Bursts is the number of bursts still on screen.
func (t *Tracker) Bursts() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.bursts)
}

// Unmount cancels every timer and removes every element. The tracker ignores
// all input afterwards. Calling it again is a no-op.
func (t *Tracker) Unmount() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.unmounted {
		return
	}
	t.unmounted = true

	for _, tr := range t.trail.Items() {
		t.dropTrail(tr.ID)
	}
	t.trail.Clear()
	for id, timer := range t.bursts {
		timer.Stop()
		delete(t.bursts, id)
		t.r.RemoveBurst(id)
	}
	if t.visible {
		t.visible = false
		t.r.SetVisible(false)
	}
	t.depth = 0
}
