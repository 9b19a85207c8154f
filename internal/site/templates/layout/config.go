package layout

import (
	"github.com/hugodevelopr/hugodeveloper/internal/site/config"
	"github.com/hugodevelopr/hugodeveloper/internal/site/nav"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

// FromConfig builds the platform described by the site identity document.
func FromConfig(site config.SiteConfig, environment string) *Platform {
	return New(Options{
		Identity: platform.SiteIdentity{
			Title:   site.Title,
			Tagline: site.Tagline,
			URL:     site.URL,
			BaseURL: site.BaseURL,
		},
		AuthorName:  site.Author.Name,
		AuthorRole:  site.Author.Role,
		Navbar:      navItems(site.Navbar),
		Social:      navItems(site.Social),
		Routes:      platform.NewRoutes(site.Routes...),
		Environment: environment,
	})
}

func navItems(links []config.LinkItem) []nav.Item {
	items := make([]nav.Item, 0, len(links))
	for _, link := range links {
		items = append(items, nav.Item{Label: link.Label, Href: link.Href})
	}
	return items
}
