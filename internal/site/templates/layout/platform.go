package layout

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/nav"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/seo"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/partials"
)

const (
	htmxSrc    = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	stylesheet = "/css/site.css"
)

// Options configures the default site platform.
type Options struct {
	Identity    platform.SiteIdentity
	AuthorName  string
	AuthorRole  string
	Navbar      []nav.Item
	Social      []nav.Item
	Routes      platform.Routes
	Environment string
}

// Platform is the production SitePlatform: plain anchors boosted by htmx for client-side
// navigation, and an HTML document shell with SEO metadata.
type Platform struct {
	opts Options
}

var _ platform.SitePlatform = (*Platform)(nil)

// New builds the default platform.
func New(opts Options) *Platform {
	if opts.Identity.BaseURL == "" {
		opts.Identity.BaseURL = "/"
	}
	if opts.AuthorName == "" {
		opts.AuthorName = opts.Identity.Title
	}
	return &Platform{opts: opts}
}

// Identity returns the configured site identity.
func (p *Platform) Identity() platform.SiteIdentity {
	return p.opts.Identity
}

// Routes returns the router's known routes.
func (p *Platform) Routes() platform.Routes {
	return p.opts.Routes
}

// Resolves reports whether href is served by the site router.
func (p *Platform) Resolves(href string) bool {
	return p.opts.Routes.Resolves(href)
}

// Link renders an anchor. Internal paths are prefixed with the base URL; external links
// open in a new tab and are excluded from htmx boosting.
func (p *Platform) Link(href string, children ...g.Node) g.Node {
	if platform.IsExternal(href) {
		return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Attr("hx-boost", "false"), g.Group(children))
	}
	return h.A(h.Href(p.resolve(href)), g.Group(children))
}

// AssetURL resolves a static asset path against the base URL.
func (p *Platform) AssetURL(path string) string {
	if path == "" || platform.IsExternal(path) {
		return path
	}
	return seo.JoinBase(p.opts.Identity.BaseURL, path)
}

// Shell renders the full HTML document around children.
func (p *Platform) Shell(meta platform.PageMeta, children ...g.Node) g.Node {
	id := p.opts.Identity
	m := seo.Build(seo.Input{
		SiteTitle:   id.Title,
		SiteURL:     id.URL,
		BaseURL:     id.BaseURL,
		PageTitle:   meta.Title,
		Description: meta.Description,
		Path:        meta.Path,
		Image:       meta.Image,
		NoIndex:     meta.NoIndex,
	})
	m.JSONLD = p.structuredData(m)

	return h.Doctype(
		h.HTML(h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(m.Title)),
				head(m),
				h.Link(h.Rel("stylesheet"), h.Href(p.AssetURL(stylesheet))),
				h.Script(h.Src(htmxSrc), h.Defer()),
			),
			h.Body(g.Attr("hx-boost", "true"), g.Attr("data-environment", p.opts.Environment),
				h.A(h.Class("skip-link"), h.Href("#main"), g.Text("Skip to main content")),
				partials.Navbar(p, nav.Build(p.opts.Navbar, meta.Path)),
				h.Main(h.ID("main"), h.Class("page"), g.Group(children)),
				partials.Footer(p, p.opts.Social, p.opts.AuthorName),
			),
		),
	)
}

func (p *Platform) resolve(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return href
	}
	return seo.JoinBase(p.opts.Identity.BaseURL, href)
}

func (p *Platform) structuredData(m seo.Meta) []string {
	id := p.opts.Identity
	siteURL := seo.AbsoluteURL(id.URL, id.BaseURL, "/")
	sameAs := make([]string, 0, len(p.opts.Social))
	for _, item := range p.opts.Social {
		if platform.IsExternal(item.Href) {
			sameAs = append(sameAs, item.Href)
		}
	}
	return []string{
		seo.JSON(seo.WebSite(id.Title, siteURL, id.Tagline)),
		seo.JSON(seo.Person(p.opts.AuthorName, p.opts.AuthorRole, siteURL, m.OG.Image, sameAs)),
	}
}

func head(m seo.Meta) g.Node {
	return g.Group{
		g.If(m.Description != "", h.Meta(h.Name("description"), h.Content(m.Description))),
		h.Meta(h.Name("robots"), h.Content(m.Robots)),
		g.If(m.Canonical != "", h.Link(h.Rel("canonical"), h.Href(m.Canonical))),
		property("og:title", m.OG.Title),
		property("og:description", m.OG.Description),
		property("og:type", m.OG.Type),
		property("og:url", m.OG.URL),
		property("og:site_name", m.OG.SiteName),
		property("og:image", m.OG.Image),
		h.Meta(h.Name("twitter:card"), h.Content(m.Twitter.Card)),
		g.If(m.Twitter.Image != "", h.Meta(h.Name("twitter:image"), h.Content(m.Twitter.Image))),
		g.Map(m.JSONLD, func(doc string) g.Node {
			return h.Script(h.Type("application/ld+json"), g.Raw(doc))
		}),
	}
}

func property(name, value string) g.Node {
	if value == "" {
		return nil
	}
	return h.Meta(g.Attr("property", name), h.Content(value))
}
