package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/client/dom"
	"github.com/Pritam6569/portfr/internal/motion"
)

func Discord(d content.Discord) g.Node {
	return revealSection("discord",
		Div(
			Class("container"),
			Div(
				Class("section-intro"),
				H2(
					Class("section-heading"),
					motion.Attrs(motion.FadeUp, 0),
					g.Text("Let's Connect on "),
					Span(Class("gradient-discord"), g.Text("Discord")),
				),
				P(motion.Attrs(motion.FadeUp, 1), g.Text(d.Intro)),
			),

			Div(
				Class("discord-grid"),

				Div(
					Class("discord-card"),
					motion.Attrs(motion.SlideLeft, -1),
					Div(Class("discord-avatar"), Icon("fa-brands--discord", "")),
					H3(g.Text(d.Username)),
					Button(
						ID(dom.DiscordCopyID),
						Type("button"),
						Class("btn btn-discord"),
						g.Attr(dom.AttrUsername, d.Username),
						Icon("fa-solid--copy", ""),
						g.Text(" Copy Username"),
					),
					P(Class("muted"), g.Text("My Discord username: "), Span(Class("text-white"), g.Text(d.Username))),
				),

				Div(
					Class("discord-card"),
					motion.Attrs(motion.SlideRight, -1),
					Div(Class("discord-avatar"), Icon("fa-solid--users", "")),
					H3(g.Text(d.ServerName)),
					A(
						Href(d.InviteURL),
						Target("_blank"),
						Rel("noopener noreferrer"),
						Class("btn btn-discord"),
						Icon("fa-brands--discord", ""),
						g.Text(" Join Server"),
					),
					P(Class("muted"), g.Text("Server invite: "), Span(Class("text-white"), g.Text(d.InviteLabel()))),
				),
			),
		),
	)
}
