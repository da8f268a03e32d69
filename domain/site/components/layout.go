package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/internal/motion"
)

type PageConfig struct {
	Title       string
	Description string
	// Runtime enables the browser runtime that drives the cursor, reveal
	// gating, the contact form and the hero phrase rotation.
	Runtime bool
}

// revealFallback shows every animated element when scripts are unavailable.
const revealFallback = `[data-motion]{opacity:1!important;transform:none!important}`

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Pritam - Portfolio"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
				Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&family=Montserrat:wght@600;700;800&family=Fira+Code&display=swap")),
				Link(Rel("stylesheet"), Href("/static/css/site.css")),
				Link(Rel("stylesheet"), Href("/static/motion.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
				NoScript(StyleEl(g.Raw(revealFallback))),
			),
			Body(
				Class("bg-dark text-light font-inter"),
				// Without the runtime nothing flips visibility, so the page
				// starts revealed.
				g.If(!config.Runtime, g.Attr(motion.AttrVisible, "true")),
				Div(
					Class("page"),
					motion.Attrs(motion.PageIn, -1),
					g.Group(content),
				),

				g.If(config.Runtime, g.Group([]g.Node{
					Script(Src("/static/js/wasm_exec.js"), Defer()),
					Script(Src("/static/js/boot.js"), Defer()),
				})),
			),
		),
	})
}
