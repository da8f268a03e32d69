package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/motion"
)

// ComingSoonText is shown while the project list is empty.
const ComingSoonText = "Projects coming soon. Check back later!"

func Projects(p content.Projects, skills []content.Skill) g.Node {
	colors := make(map[string]string, len(skills))
	for _, s := range skills {
		colors[s.Name] = s.Color
	}

	var body g.Node
	if len(p.Items) == 0 {
		body = Div(
			Class("coming-soon"),
			motion.Attrs(motion.ScaleIn, 0),
			Icon("fa-solid--code text-primary", ""),
			P(g.Text(ComingSoonText)),
		)
	} else {
		cards := make([]g.Node, 0, len(p.Items))
		for i, item := range p.Items {
			cards = append(cards, ProjectCard(item, colors, i))
		}
		body = Div(Class("project-grid"), g.Group(cards))
	}

	return revealSection("projects",
		Div(
			Class("container"),
			Div(
				Class("section-intro"),
				SectionHeading(p.Heading, content.ColorPrimary),
				P(motion.Attrs(motion.FadeUp, 1), g.Text(p.Intro)),
			),
			body,
		),
	)
}

func ProjectCard(p content.Project, colors map[string]string, index int) g.Node {
	class := "project-card"
	if p.Featured {
		class += " featured"
	}

	return Article(
		Class(class),
		motion.Attrs(motion.FadeUp, index),

		Div(
			Class("project-media"),
			g.If(p.Image != "", ImageWithFallback(p.Image, p.Title)),
			Div(
				Class("project-tech"),
				g.Map(p.Tech, func(tech string) g.Node {
					color := colors[tech]
					if color == "" {
						color = content.ColorPrimary
					}
					return Span(Class("tech-tag bg-"+color), g.Text(tech))
				}),
			),
		),

		Div(
			Class("project-body"),
			H3(g.Text(p.Title)),
			P(g.Text(p.Description)),
			Div(
				Class("project-links"),
				g.If(p.DemoURL != "", A(
					Href(p.DemoURL), Class("project-link"),
					g.Text("View Project "), Icon("fa-solid--arrow-right", ""),
				)),
				g.If(p.GithubURL != "", A(
					Href(p.GithubURL), Target("_blank"), Rel("noopener noreferrer"), Class("project-source"),
					Icon("fa-brands--github", "Source on GitHub"),
				)),
			),
		),
	)
}
