package home

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/helpers"
)

// Card renders a NavCard as a single link built by the platform navigation primitive.
// Empty fields render as empty text.
func Card(p platform.SitePlatform, card NavCard) g.Node {
	cta := card.CTA
	if cta == "" {
		cta = defaultCTA
	}
	return p.Link(card.Href,
		h.Class("card"),
		h.Aria("label", cardLabel(card)),
		h.Div(h.Class("card-top"),
			h.Span(h.Class("card-title"), g.Text(card.Title)),
			g.If(card.Meta != "", h.Span(h.Class("card-meta"), g.Text(card.Meta))),
		),
		h.Div(h.Class("card-desc"), helpers.Phrase(card.Description)),
		h.Div(h.Class("card-cta"), h.Aria("hidden", "true"), g.Text(cta)),
	)
}

func cardLabel(card NavCard) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{card.Title, helpers.PlainText(card.Description)} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ": ")
}
