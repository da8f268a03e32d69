// Package components renders the portfolio landing page with gomponents.
package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
)

// PageOptions are the per-request inputs to Page.
type PageOptions struct {
	Particles []Particle
	Year      int
	Runtime   bool
}

// Page renders the whole landing page.
func Page(c *content.Content, opts PageOptions) g.Node {
	return Layout(
		PageConfig{
			Title:       c.Profile.Title,
			Description: c.Profile.Description,
			Runtime:     opts.Runtime,
		},
		CursorMount(),
		ParticleBackground(opts.Particles),
		Navigation(c.Profile.Brand),
		Main(
			Hero(c.Profile, c.Hero),
			About(c.Profile.Name, c.About),
			Projects(c.Projects, c.About.Skills),
			Contact(c.Contact, c.Socials),
			Discord(c.Discord),
		),
		PageFooter(c.Profile, c.Socials, opts.Year),
		Toaster(),
	)
}
