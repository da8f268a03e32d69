package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
	"github.com/Pritam6569/portfr/internal/client/contact"
	"github.com/Pritam6569/portfr/internal/client/dom"
	"github.com/Pritam6569/portfr/internal/motion"
)

func Contact(c content.Contact, socials []content.Social) g.Node {
	return revealSection("contact",
		Div(
			Class("container"),
			Div(
				Class("section-intro"),
				SectionHeading(c.Heading, content.ColorEnergy),
				P(motion.Attrs(motion.FadeUp, 1), g.Text(c.Intro)),
			),

			Div(
				Class("contact-grid"),
				Div(
					Class("contact-info"),
					motion.Attrs(motion.SlideLeft, -1),
					H3(g.Text("Follow Me")),
					Div(
						Class("socials"),
						g.Map(socials, socialLink),
					),
				),

				Div(
					Class("contact-card"),
					motion.Attrs(motion.SlideRight, -1),
					H3(g.Text(c.FormHeading)),
					Form(
						ID(dom.ContactFormID),
						// Completeness is checked by the runtime.
						g.Attr("novalidate", ""),
						field(contact.FieldName, "Your Name", Input(
							Type("text"), ID(contact.FieldName), Name(contact.FieldName),
							Required(), Placeholder("Your name"),
						)),
						field(contact.FieldEmail, "Your Email", Input(
							Type("email"), ID(contact.FieldEmail), Name(contact.FieldEmail),
							Required(), Placeholder("your@email.com"),
						)),
						field(contact.FieldMessage, "Your Message", Textarea(
							ID(contact.FieldMessage), Name(contact.FieldMessage),
							Rows("4"), Required(), Placeholder("What would you like to discuss?"),
						)),
						Button(Type("submit"), Class("btn btn-primary btn-block"), g.Text(c.SubmitLabel)),
					),
				),
			),
		),
	)
}

func field(name, label string, input g.Node) g.Node {
	return Div(
		Class("field"),
		Label(For(name), g.Text(label)),
		input,
	)
}

func socialLink(s content.Social) g.Node {
	return A(
		Href(s.URL),
		Target("_blank"),
		Rel("noopener noreferrer"),
		Class("social-icon"),
		Icon(socialIcon(s.Icon), s.Name),
	)
}
