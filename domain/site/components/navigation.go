package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/client/dom"
)

// NavItems are the in-page anchors shown in the navigation bar.
var NavItems = []string{"home", "about", "projects", "contact"}

func navLabel(item string) string {
	return strings.ToUpper(item[:1]) + item[1:]
}

func Navigation(brand string) g.Node {
	return Nav(
		ID("top-nav"),
		Class("top-nav"),
		Div(
			Class("container nav-inner"),
			A(Href("#home"), Class("brand gradient-text"), g.Text(brand)),

			Div(
				Class("nav-links"),
				g.Map(NavItems, func(item string) g.Node {
					return A(Href("#"+item), Class("nav-link"), g.Text(navLabel(item)))
				}),
			),

			Button(
				ID(dom.MenuToggleID),
				Class("menu-toggle"),
				Type("button"),
				g.Attr("aria-controls", dom.MobileMenuID),
				g.Attr("aria-expanded", "false"),
				Icon("fa-solid--bars", "Toggle menu"),
			),
		),

		Div(
			ID(dom.MobileMenuID),
			Class("mobile-menu"),
			g.Attr("hidden", ""),
			g.Map(NavItems, func(item string) g.Node {
				return A(Href("#"+item), Class("mobile-link"), g.Text(navLabel(item)))
			}),
		),
	)
}
