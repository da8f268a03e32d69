package motion

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
)

// Attribute names used in markup and by the browser runtime.
const (
	// AttrMotion names the preset an element animates with.
	AttrMotion = "data-motion"
	// AttrVisible is toggled on a section when it enters or leaves the viewport.
	AttrVisible = "data-visible"
	// AttrReveal marks a section whose visibility gates its children.
	AttrReveal = "data-reveal"
	// IndexVar is the CSS variable holding a child's stagger index.
	IndexVar = "--motion-index"
)

// Stylesheet renders CSS for the given presets, or for all Presets.
func Stylesheet(presets ...Preset) string {
	if len(presets) == 0 {
		presets = Presets
	}
	var b strings.Builder
	for _, p := range presets {
		if p.Looping() {
			writeLoop(&b, p)
		} else {
			writeEntrance(&b, p)
		}
	}
	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "  [%s] { animation: none !important; transition: none !important; opacity: 1 !important; transform: none !important; }\n", AttrMotion)
	b.WriteString("}\n")
	return b.String()
}

func writeEntrance(b *strings.Builder, p Preset) {
	t := p.Transition
	sel := fmt.Sprintf("[%s=%q]", AttrMotion, p.Name)
	delay := ms(t.Delay)
	if t.Stagger > 0 {
		delay = fmt.Sprintf("calc(%s + var(%s, 0) * %s)", ms(t.Delay), IndexVar, ms(t.Stagger))
	}

	fmt.Fprintf(b, "%s {\n", sel)
	fmt.Fprintf(b, "  opacity: %s;\n", num(p.Hidden.Opacity))
	fmt.Fprintf(b, "  transform: %s;\n", p.Hidden.Transform())
	fmt.Fprintf(b, "  transition: opacity %s %s %s, transform %s %s %s;\n",
		ms(t.Duration), t.Easing, delay, ms(t.Duration), t.Easing, delay)
	b.WriteString("}\n")

	var shown string
	switch t.Trigger {
	case OnLoad:
		shown = fmt.Sprintf("body[%s=\"true\"] %s", AttrVisible, sel)
	default:
		shown = fmt.Sprintf("[%s=\"true\"] %s, %s[%s=\"true\"]", AttrVisible, sel, sel, AttrVisible)
	}
	fmt.Fprintf(b, "%s {\n", shown)
	fmt.Fprintf(b, "  opacity: %s;\n", num(p.Visible.Opacity))
	fmt.Fprintf(b, "  transform: %s;\n", p.Visible.Transform())
	b.WriteString("}\n")
}

func writeLoop(b *strings.Builder, p Preset) {
	t := p.Transition
	name := "motion-" + p.Name
	fmt.Fprintf(b, "@keyframes %s {\n", name)
	last := len(p.Frames) - 1
	for i, f := range p.Frames {
		pct := 0.0
		if last > 0 {
			pct = float64(i) / float64(last) * 100
		}
		fmt.Fprintf(b, "  %s%% { opacity: %s; transform: %s; }\n", num(pct), num(f.Opacity), f.Transform())
	}
	b.WriteString("}\n")

	iterations := "1"
	direction := "normal"
	switch t.Repeat {
	case Loop:
		iterations = "infinite"
	case Mirror:
		iterations = "infinite"
		direction = "alternate"
	}
	fmt.Fprintf(b, "[%s=%q] {\n", AttrMotion, p.Name)
	fmt.Fprintf(b, "  animation: %s %s %s %s %s %s;\n", name, ms(t.Duration), t.Easing, ms(t.Delay), iterations, direction)
	b.WriteString("}\n")
}

// Attrs returns the markup attributes that bind an element to a preset.
// index feeds the stagger delay and is ignored when negative.
func Attrs(p Preset, index int) g.Node {
	nodes := []g.Node{g.Attr(AttrMotion, p.Name)}
	if index >= 0 && p.Transition.Stagger > 0 {
		nodes = append(nodes, g.Attr("style", fmt.Sprintf("%s: %d", IndexVar, index)))
	}
	return g.Group(nodes)
}
