package components

import (
	"fmt"
	"html"
	"net/url"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/client/dom"
)

// PlaceholderImage is an inline SVG card showing alt, used when an image
// fails to load.
func PlaceholderImage(alt string) string {
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1200 630">`+
		`<rect width="100%%" height="100%%" fill="#111827"/>`+
		`<text x="50%%" y="50%%" text-anchor="middle" dominant-baseline="middle" `+
		`font-family="system-ui" font-size="32" fill="#4B5563">%s</text></svg>`,
		html.EscapeString(alt))
	return "data:image/svg+xml," + url.PathEscape(svg)
}

// ImageWithFallback renders a lazy image whose frame switches to a
// placeholder and an error overlay when the source fails.
func ImageWithFallback(src, alt string) g.Node {
	return Div(
		Class("img-frame"),
		Img(
			Src(src),
			Alt(alt),
			g.Attr("loading", "lazy"),
			g.Attr(dom.AttrFallback, PlaceholderImage(alt)),
		),
		Div(
			Class("img-error"),
			Aria("hidden", "true"),
			Div(Class("img-error-icon"), g.Text("🖼️")),
			Div(Class("img-error-title"), g.Text("Failed to load image")),
			Div(Class("img-error-alt"), g.Text(alt)),
		),
	)
}
