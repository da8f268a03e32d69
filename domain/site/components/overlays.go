package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/client/dom"
)

// CursorMount renders the empty cursor layer. It stays hidden until the
// runtime decides the device has a fine pointer.
func CursorMount() g.Node {
	return Div(
		Class("cursor-layer"),
		g.Attr("aria-hidden", "true"),
		Div(ID(dom.TrailID)),
		Div(ID(dom.BurstsID)),
		Div(ID(dom.CursorID), Class("cursor"), g.Attr("hidden", "")),
	)
}

func Toaster() g.Node {
	return Ol(
		ID(dom.ToasterID),
		Class("toaster"),
		g.Attr("aria-live", "polite"),
		g.Attr("role", "status"),
	)
}
