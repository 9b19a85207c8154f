package home

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

// Route is the path the landing page is mounted at.
const Route = "/"

// Index composes the landing page inside the platform shell. The document title is the
// site title; the description falls back to DefaultDescription.
func Index(p platform.SitePlatform, data PageData) g.Node {
	id := p.Identity()
	hero := data.Hero.WithIdentity(id)

	description := data.Description
	if description == "" {
		description = DefaultDescription
	}

	return p.Shell(platform.PageMeta{
		Title:       id.Title,
		Description: description,
		Path:        Route,
		Image:       hero.Portrait.Src,
	},
		background(),
		Hero(p, hero),
		Section(p, data.ContentMap),
	)
}

func background() g.Node {
	return h.Div(h.Class("bg"), h.Aria("hidden", "true"),
		h.Div(h.Class("glow-a")),
		h.Div(h.Class("glow-b")),
		h.Div(h.Class("grid")),
		h.Div(h.Class("noise")),
		h.Div(h.Class("vignette")),
	)
}
