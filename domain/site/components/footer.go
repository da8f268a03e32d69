package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Pritam6569/portfr/domain/site/content"
)

type footerLink struct {
	Name string
	Icon string
	Href string
}

var footerLinks = []footerLink{
	{"Portfolio", "fa-solid--code", "#"},
	{"About", "fa-solid--user", "#about"},
	{"Projects", "fa-solid--laptop-code", "#projects"},
	{"Contact", "fa-solid--envelope", "#contact"},
}

func PageFooter(p content.Profile, socials []content.Social, year int) g.Node {
	return Footer(
		Class("page-footer"),
		Div(
			Class("container footer-inner"),
			A(Href("#home"), Class("brand gradient-text"), g.Text(p.Brand)),

			Div(
				Class("footer-links"),
				g.Map(footerLinks, func(l footerLink) g.Node {
					return A(Href(l.Href), Class("footer-link"), Icon(l.Icon, ""), g.Text(" "+l.Name))
				}),
			),

			Div(
				Class("socials"),
				g.Map(socials, socialLink),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(Class("muted"), g.Text("© "+strconv.Itoa(year)+" "+p.Name+". All rights reserved.")),
		),
	)
}
