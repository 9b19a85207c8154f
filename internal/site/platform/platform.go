// Package platform describes the collaborators a page consumes from the hosting site:
// the identity document, the navigation primitive and the page shell.
package platform

import (
	g "maragu.dev/gomponents"
)

// SiteIdentity is the read-only site configuration exposed to pages.
type SiteIdentity struct {
	Title   string
	Tagline string
	URL     string
	BaseURL string
}

// PageMeta is the metadata a page hands to the shell for the document head.
type PageMeta struct {
	Title       string
	Description string
	// Path is the route the page is mounted at, used for canonical URLs and nav state.
	Path    string
	Image   string
	NoIndex bool
}

// SitePlatform is the capability set a page renders against.
type SitePlatform interface {
	// Identity returns the site identity. It never blocks.
	Identity() SiteIdentity
	// Link renders a navigational element pointing at href. Children may mix
	// attributes and content nodes.
	Link(href string, children ...g.Node) g.Node
	// Shell wraps page content with the site chrome and document head.
	Shell(meta PageMeta, children ...g.Node) g.Node
	// AssetURL resolves a static asset path against the deployed bundle.
	AssetURL(path string) string
}

// Resolver reports whether a destination is served by the site router.
type Resolver interface {
	Resolves(path string) bool
}
