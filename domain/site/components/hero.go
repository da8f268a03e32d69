package components

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/client/dom"
	"github.com/Pritam6569/portfr/internal/motion"
)

func Hero(p content.Profile, h content.Hero) g.Node {
	phrases, _ := json.Marshal(h.Phrases)

	return Section(
		ID("home"),
		Class("hero"),
		g.Attr(motion.AttrReveal, ""),

		Div(Class("blob blob-primary"), motion.Attrs(motion.Blob, -1)),
		Div(Class("blob blob-secondary"), motion.Attrs(motion.Blob, -1)),

		Div(
			Class("container hero-inner"),
			Div(
				Class("hero-copy"),
				H2(Class("hero-greeting"), motion.Attrs(motion.FadeUp, 0), g.Text(h.Greeting)),
				H1(Class("hero-name gradient-text"), motion.Attrs(motion.FadeUp, 1), g.Text(p.Name)),
				H3(
					Class("hero-rotator"),
					motion.Attrs(motion.FadeUp, 2),
					g.Text(h.Lead+" "),
					Span(
						ID(dom.HeroPhraseID),
						Class("text-accent"),
						g.Attr(dom.AttrPhrases, string(phrases)),
						g.Attr(dom.AttrPhraseMillis, strconv.FormatInt(h.PhraseInterval.Milliseconds(), 10)),
						g.Attr("aria-live", "polite"),
						g.Text(firstPhrase(h.Phrases)),
					),
				),
				P(Class("hero-tagline"), motion.Attrs(motion.FadeUp, 3), g.Text(h.Tagline)),
				Div(
					Class("hero-actions"),
					motion.Attrs(motion.FadeUp, 4),
					g.If(h.Primary.Href != "", A(Href(h.Primary.Href), Class("btn btn-primary"), g.Text(h.Primary.Label))),
					g.If(h.Secondary.Href != "", A(Href(h.Secondary.Href), Class("btn btn-outline"), g.Text(h.Secondary.Label))),
				),
			),

			g.If(len(h.Code) > 0, Div(
				Class("hero-code"),
				motion.Attrs(motion.SlideRight, -1),
				Div(
					Class("code-window"),
					Div(Class("code-dots"), Span(), Span(), Span()),
					Pre(Code(g.Map(h.Code, func(line string) g.Node {
						return Div(Class("code-line"), g.Text(line))
					}))),
				),
				Div(Class("code-orb code-orb-accent"), motion.Attrs(motion.Float, -1)),
				Div(Class("code-orb code-orb-energy"), motion.Attrs(motion.Float, -1)),
			)),
		),

		A(
			Href("#about"),
			Class("scroll-hint"),
			motion.Attrs(motion.Float, -1),
			g.Text("Scroll to explore"),
			Icon("fa-solid--chevron-down", ""),
		),
	)
}

func firstPhrase(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[0]
}
