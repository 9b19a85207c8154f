package testutil

import (
	"sync"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
)

// FakePlatform records navigation and shell calls. Links render as plain anchors with the
// href untouched and the shell renders a minimal document.
type FakePlatform struct {
	ID platform.SiteIdentity

	mu     sync.Mutex
	links  []string
	shells []platform.PageMeta
}

var _ platform.SitePlatform = (*FakePlatform)(nil)

// NewFakePlatform returns a platform with the given identity.
func NewFakePlatform(title, tagline string) *FakePlatform {
	return &FakePlatform{ID: platform.SiteIdentity{Title: title, Tagline: tagline, BaseURL: "/"}}
}

// Identity returns the configured identity.
func (f *FakePlatform) Identity() platform.SiteIdentity {
	return f.ID
}

// Link records href and renders an anchor. A call is recorded when the link node is
// built, not when it is activated, so a component that builds each link once records
// one navigation call per destination.
func (f *FakePlatform) Link(href string, children ...g.Node) g.Node {
	f.mu.Lock()
	f.links = append(f.links, href)
	f.mu.Unlock()
	return h.A(h.Href(href), g.Attr("data-fake-link", ""), g.Group(children))
}

// Shell records meta and renders a minimal document.
func (f *FakePlatform) Shell(meta platform.PageMeta, children ...g.Node) g.Node {
	f.mu.Lock()
	f.shells = append(f.shells, meta)
	f.mu.Unlock()
	return h.Doctype(
		h.HTML(
			h.Head(h.TitleEl(g.Text(meta.Title))),
			h.Body(h.Main(h.ID("main"), g.Group(children))),
		),
	)
}

// AssetURL returns path unchanged.
func (f *FakePlatform) AssetURL(path string) string {
	return path
}

// Links returns the hrefs passed to Link, in call order.
func (f *FakePlatform) Links() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.links...)
}

// Shells returns the metadata passed to Shell, in call order.
func (f *FakePlatform) Shells() []platform.PageMeta {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]platform.PageMeta(nil), f.shells...)
}
