package home

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/helpers"
)

// Hero renders the above-the-fold introduction. The portrait is the only image and is
// always loaded eagerly.
func Hero(p platform.SitePlatform, hc HeroContent) g.Node {
	return h.Section(h.Class("hero"), h.ID("hero"), h.Aria("labelledby", "hero-title"),
		h.Div(h.Class("hero-left"),
			g.If(hc.Kicker != "", h.Div(h.Class("kicker"), g.Text(hc.Kicker))),
			h.H1(h.Class("title"), h.ID("hero-title"), g.Text(hc.DisplayName)),
			g.If(hc.Lead != "", h.Div(h.Class("lead"), helpers.Inline(hc.Lead))),
			heroActions(p, hc.Primary, hc.Secondary),
			g.If(len(hc.FocusTags) > 0,
				h.Ul(h.Class("signals"), h.Aria("label", "Focus areas"),
					g.Map(hc.FocusTags, func(tag string) g.Node {
						return h.Li(h.Class("signal"), g.Text(tag))
					}),
				),
			),
		),
		h.Div(h.Class("hero-right"),
			h.Div(h.Class("portrait-wrap"),
				h.Div(h.Class("portrait-halo"), h.Aria("hidden", "true")),
				portrait(p, hc.Portrait),
				h.Div(h.Class("portrait-frame"), h.Aria("hidden", "true")),
			),
			h.Div(h.Class("signature"),
				h.Div(h.Class("signature-line"), h.Aria("hidden", "true")),
				h.Div(h.Class("signature-text"),
					h.Div(h.Class("signature-name"), g.Text(hc.DisplayName)),
					g.If(hc.Role != "", h.Div(h.Class("signature-role"), g.Text(hc.Role))),
				),
			),
		),
	)
}

func heroActions(p platform.SitePlatform, primary Action, secondary *Action) g.Node {
	hasPrimary := primary.Href != ""
	hasSecondary := secondary != nil && secondary.Href != ""
	if !hasPrimary && !hasSecondary {
		return nil
	}
	return h.Div(h.Class("actions"),
		g.Iff(hasPrimary, func() g.Node {
			return p.Link(primary.Href, h.Class("primary"), g.Text(primary.Label))
		}),
		g.Iff(hasSecondary, func() g.Node {
			return p.Link(secondary.Href, h.Class("secondary"), g.Text(secondary.Label))
		}),
	)
}

func portrait(p platform.SitePlatform, img Portrait) g.Node {
	width, height := img.size()
	return h.Img(
		h.Src(p.AssetURL(img.Src)),
		h.Alt(img.Alt),
		h.Class("portrait"),
		h.Width(strconv.Itoa(width)),
		h.Height(strconv.Itoa(height)),
		h.Loading("eager"),
		g.Attr("fetchpriority", "high"),
	)
}
