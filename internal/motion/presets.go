package motion

import (
	"time"
)

var visible = Keyframe{Opacity: 1, Scale: 1}

func staggered(t Transition) Transition {
	t.Stagger = 100 * time.Millisecond
	return t
}

var (
	FadeUp = Preset{
		Name:       "fade-up",
		Hidden:     Keyframe{Opacity: 0, Y: 20, Scale: 1},
		Visible:    visible,
		Transition: staggered(Spring(100, 15)),
	}
	SlideLeft = Preset{
		Name:       "slide-left",
		Hidden:     Keyframe{Opacity: 0, X: -50, Scale: 1},
		Visible:    visible,
		Transition: Spring(100, 15),
	}
	SlideRight = Preset{
		Name:       "slide-right",
		Hidden:     Keyframe{Opacity: 0, X: 50, Scale: 1},
		Visible:    visible,
		Transition: Spring(100, 15),
	}
	ScaleIn = Preset{
		Name:       "scale-in",
		Hidden:     Keyframe{Opacity: 0, Scale: 0.8},
		Visible:    visible,
		Transition: Spring(100, 15),
	}
	Bounce = Preset{
		Name:       "bounce",
		Hidden:     Keyframe{Opacity: 0, Y: 50, Scale: 1},
		Visible:    visible,
		Transition: Spring(300, 15),
	}
	PageIn = Preset{
		Name:    "page-in",
		Hidden:  Keyframe{Opacity: 0, Scale: 1},
		Visible: visible,
		Transition: Transition{
			Trigger:  OnLoad,
			Duration: 800 * time.Millisecond,
			Easing:   EaseOut,
		},
	}
	Float = Preset{
		Name: "float",
		Frames: []Keyframe{
			{Opacity: 1, Scale: 1},
			{Opacity: 1, Y: -20, Scale: 1},
			{Opacity: 1, Scale: 1},
		},
		Transition: Transition{Trigger: Always, Duration: 6 * time.Second, Easing: EaseInOut, Repeat: Loop},
	}
	Blob = Preset{
		Name: "blob",
		Frames: []Keyframe{
			{Opacity: 0.6, Scale: 1},
			{Opacity: 0.8, X: 30, Y: -40, Scale: 1.1},
			{Opacity: 0.5, X: -20, Y: 20, Scale: 0.9},
			{Opacity: 0.6, Scale: 1},
		},
		Transition: Transition{Trigger: Always, Duration: 12 * time.Second, Easing: EaseInOut, Repeat: Loop},
	}
	Twinkle = Preset{
		Name: "twinkle",
		Frames: []Keyframe{
			{Opacity: 0.2, Scale: 1},
			{Opacity: 0.8, Y: -30, Scale: 1.2},
		},
		Transition: Transition{Trigger: Always, Duration: 8 * time.Second, Easing: EaseInOut, Repeat: Mirror},
	}
)

// Presets lists every preset in stylesheet order.
var Presets = []Preset{FadeUp, SlideLeft, SlideRight, ScaleIn, Bounce, PageIn, Float, Blob, Twinkle}

// Lookup returns the preset with the given name.
func Lookup(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
