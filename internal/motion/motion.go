// Package motion describes the page's animations as data. Presets are
// rendered once into a stylesheet and referenced from markup by name.
package motion

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Trigger decides when an animation plays.
type Trigger int

const (
	// OnView plays whenever the enclosing section enters the viewport.
	OnView Trigger = iota
	// OnLoad plays once when the page loads.
	OnLoad
	// Always runs continuously.
	Always
)

func (t Trigger) String() string {
	switch t {
	case OnLoad:
		return "load"
	case Always:
		return "always"
	default:
		return "view"
	}
}

// Repeat is the repeat policy of a timeline.
type Repeat int

const (
	Once Repeat = iota
	Loop
	Mirror
)

// Easing is a CSS timing function.
type Easing string

const (
	EaseOut       Easing = "cubic-bezier(0.16, 1, 0.3, 1)"
	EaseInOut     Easing = "ease-in-out"
	EaseOvershoot Easing = "cubic-bezier(0.34, 1.56, 0.64, 1)"
	Linear        Easing = "linear"
)

// Transition is one animation timeline.
type Transition struct {
	Trigger  Trigger
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing
	Repeat   Repeat
	// Stagger is added to Delay per child index.
	Stagger time.Duration
}

// Spring approximates a unit-mass spring with a CSS timeline. The duration
// is the time for the envelope to settle within 2%, 8/damping seconds.
// Underdamped springs (ratio below 0.5) overshoot.
func Spring(stiffness, damping float64) Transition {
	tr := Transition{Trigger: OnView, Easing: EaseOut}
	if stiffness <= 0 || damping <= 0 {
		tr.Duration = 500 * time.Millisecond
		return tr
	}
	settle := 8 / damping
	tr.Duration = time.Duration(math.Round(settle*1000)) * time.Millisecond
	if ratio := damping / (2 * math.Sqrt(stiffness)); ratio < 0.5 {
		tr.Easing = EaseOvershoot
	}
	return tr
}

// Keyframe is one visual state.
type Keyframe struct {
	Opacity float64
	X, Y    float64 // px
	Scale   float64
	Rotate  float64 // degrees
}

// Transform renders the CSS transform of k.
func (k Keyframe) Transform() string {
	scale := k.Scale
	if scale == 0 {
		scale = 1
	}
	parts := []string{fmt.Sprintf("translate(%spx, %spx)", num(k.X), num(k.Y))}
	if scale != 1 {
		parts = append(parts, "scale("+num(scale)+")")
	}
	if k.Rotate != 0 {
		parts = append(parts, "rotate("+num(k.Rotate)+"deg)")
	}
	return strings.Join(parts, " ")
}

// Preset is a named animation. Entrance presets move from Hidden to Visible;
// looping presets cycle through Frames.
type Preset struct {
	Name       string
	Hidden     Keyframe
	Visible    Keyframe
	Frames     []Keyframe
	Transition Transition
}

// Looping reports whether the preset is a continuous keyframe animation.
func (p Preset) Looping() bool {
	return len(p.Frames) > 0
}

func num(f float64) string {
	s := fmt.Sprintf("%.3f", f)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
