package home

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

// Section renders the content map: cards in insertion order, the recommended entry
// point and the latest rows.
func Section(p platform.SitePlatform, m ContentMap) g.Node {
	return h.Section(h.Class("why"), h.ID("content-map"), h.Aria("labelledby", "content-map-title"),
		h.H2(h.Class("why-title"), h.ID("content-map-title"), g.Text(m.Title)),
		h.Ol(h.Class("cards"), g.Attr("data-content-map", "cards"),
			g.Map(m.Cards, func(card NavCard) g.Node {
				return h.Li(h.Class("cards-item"), Card(p, card))
			}),
		),
		g.Iff(m.Recommended.Href != "", func() g.Node {
			return h.Div(h.Class("recommended"), g.Attr("data-content-map", "recommended"),
				g.If(m.RecommendedNote != "", h.Span(h.Class("recommended-note"), g.Text(m.RecommendedNote))),
				p.Link(m.Recommended.Href, h.Class("recommended-link"), g.Text(m.Recommended.Label)),
			)
		}),
		g.If(len(m.Latest) > 0,
			h.Div(h.Class("latest"), g.Attr("data-content-map", "latest"),
				g.If(m.LatestTitle != "", h.H3(h.Class("latest-title"), g.Text(m.LatestTitle))),
				h.Ul(h.Class("latest-rows"),
					g.Map(m.Latest, func(row NavRow) g.Node {
						return h.Li(
							p.Link(row.Href, h.Class("latest-row"),
								h.Span(h.Class("latest-label"), g.Text(row.Label)),
								g.If(row.Meta != "", h.Span(h.Class("latest-meta"), g.Text(row.Meta))),
								h.Span(h.Class("latest-arrow"), h.Aria("hidden", "true"), g.Text("→")),
							),
						)
					}),
				),
			),
		),
	)
}
