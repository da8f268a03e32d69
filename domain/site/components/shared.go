package components

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/motion"
)

func convertIconName(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return ""
	}
	return strings.Replace(parts[0], "--", ":", 1)
}

func extractSizeClasses(iconClass string) string {
	parts := strings.Fields(iconClass)
	if len(parts) > 1 {
		return strings.Join(parts[1:], " ")
	}
	return ""
}

// Icon renders an iconify icon. iconClass is "set--name [size classes]".
func Icon(iconClass, ariaLabel string) g.Node {
	classes := "iconify inline-block"
	if size := extractSizeClasses(iconClass); size != "" {
		classes = fmt.Sprintf("iconify inline-block %s", size)
	}

	if ariaLabel != "" {
		return Span(
			Class(classes),
			g.Attr("data-icon", convertIconName(iconClass)),
			Role("img"),
			g.Attr("aria-label", ariaLabel),
		)
	}
	return Span(
		Class(classes),
		g.Attr("data-icon", convertIconName(iconClass)),
		g.Attr("aria-hidden", "true"),
	)
}

// socialIcon maps a content icon key to an iconify name.
func socialIcon(key string) string {
	switch key {
	case "github":
		return "fa-brands--github"
	case "instagram":
		return "fa-brands--instagram"
	case "discord":
		return "fa-brands--discord"
	case "twitter", "x":
		return "fa-brands--x-twitter"
	case "linkedin":
		return "fa-brands--linkedin-in"
	default:
		return "fa-solid--link"
	}
}

// SectionHeading renders a section title with its underline accent.
func SectionHeading(text, accent string, extra ...g.Node) g.Node {
	return H2(
		Class("section-heading"),
		motion.Attrs(motion.FadeUp, 0),
		Span(
			Class("relative"),
			g.Group(extra),
			g.Text(text),
			Span(Class("heading-underline bg-"+accent)),
		),
	)
}

// revealSection wraps a page section whose entrance animations are gated by
// viewport visibility.
func revealSection(id string, children ...g.Node) g.Node {
	return Section(
		ID(id),
		Class("section"),
		g.Attr(motion.AttrReveal, ""),
		g.Group(children),
	)
}
