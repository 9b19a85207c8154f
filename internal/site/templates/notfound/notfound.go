package notfound

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

const (
	// Path is the export location of the not-found document.
	Path  = "/404.html"
	title = "Page not found"
)

// Page renders the not-found document inside the site shell.
func Page(p platform.SitePlatform) g.Node {
	return p.Shell(platform.PageMeta{
		Title:       title,
		Description: "The page you are looking for does not exist.",
		Path:        Path,
		NoIndex:     true,
	},
		h.Section(h.Class("notfound"), h.ID("not-found"),
			h.H1(h.Class("title"), g.Text(title)),
			h.P(g.Text("The page you are looking for does not exist or has moved.")),
			p.Link("/", h.Class("button button--primary"), g.Text("Back to home")),
		),
	)
}
