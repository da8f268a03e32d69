package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/motion"
)

func About(name string, a content.About) g.Node {
	return revealSection("about",
		Div(
			Class("container about-inner"),

			Div(
				Class("about-image"),
				motion.Attrs(motion.SlideLeft, -1),
				g.If(a.Image != "", Div(
					Class("blob-frame"),
					motion.Attrs(motion.Blob, -1),
					ImageWithFallback(a.Image, name),
				)),
				Div(Class("tech-orb border-accent"), motion.Attrs(motion.Float, -1), Icon("fa-brands--react text-accent", "")),
				Div(Class("tech-orb border-highlight"), motion.Attrs(motion.Float, -1), Icon("fa-brands--js text-highlight", "")),
				Div(Class("tech-orb border-energy"), motion.Attrs(motion.Float, -1), Icon("fa-brands--node-js text-energy", "")),
			),

			Div(
				Class("about-copy"),
				motion.Attrs(motion.SlideRight, -1),
				SectionHeading(a.Heading, content.ColorAccent),
				Div(Class("prose"), g.Raw(string(a.HTML))),
				Div(
					Class("skills"),
					g.Group(skillBadges(a.Skills)),
				),
			),
		),
	)
}

func skillBadges(skills []content.Skill) []g.Node {
	nodes := make([]g.Node, 0, len(skills))
	for i, s := range skills {
		nodes = append(nodes, Span(
			Class("skill bg-"+s.Color),
			motion.Attrs(motion.ScaleIn, i),
			g.Text(s.Name),
		))
	}
	return nodes
}
