package partials

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/nav"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/helpers"
)

// Navbar renders the site header with the brand link and primary navigation.
func Navbar(p platform.SitePlatform, items []nav.RenderedItem) g.Node {
	id := p.Identity()
	return h.Header(h.Class("navbar"), g.Attr("data-navbar", ""),
		h.Nav(h.Class("navbar-inner"), h.Aria("label", "Main"),
			p.Link("/", h.Class("navbar-brand"), g.Text(id.Title)),
			h.Ul(h.Class("navbar-items"),
				g.Map(items, func(item nav.RenderedItem) g.Node {
					return h.Li(
						p.Link(item.Href,
							h.Class(helpers.NavClass(item.Active)),
							g.If(item.Active, h.Aria("current", "page")),
							g.Text(item.Label),
						),
					)
				}),
			),
		),
	)
}
