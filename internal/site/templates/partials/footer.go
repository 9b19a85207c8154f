package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/nav"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

// Footer renders social links and the copyright line.
func Footer(p platform.SitePlatform, social []nav.Item, owner string) g.Node {
	return h.Footer(h.Class("footer"), g.Attr("data-footer", ""),
		g.If(len(social) > 0,
			h.Ul(h.Class("footer-links"),
				g.Map(social, func(item nav.Item) g.Node {
					return h.Li(p.Link(item.Href, h.Class("footer-link"), g.Text(item.Label)))
				}),
			),
		),
		g.If(owner != "", h.P(h.Class("footer-copy"), g.Textf("© %s", owner))),
	)
}
