package layout_test

import (
	"encoding/json"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/hugodevelopr/hugodeveloper/internal/site/config"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/layout"
	"github.com/hugodevelopr/hugodeveloper/internal/site/testutil"
)

func TestLinkJoinsBaseURL(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/portfolio/")

	cases := map[string]string{
		"/docs/01-guides": "/portfolio/docs/01-guides",
		"/":               "/portfolio/",
		"#main":           "#main",
	}
	for href, want := range cases {
		doc := testutil.RenderDOM(t, p.Link(href, g.Text("x")))
		got, _ := doc.Find("a").Attr("href")
		require.Equal(t, want, got, href)
	}
}

func TestLinkExternalOpensNewTab(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/")
	doc := testutil.RenderDOM(t, p.Link("https://github.com/hugodevelopr", h.Class("social"), g.Text("GitHub")))

	a := doc.Find("a.social")
	require.Equal(t, "https://github.com/hugodevelopr", a.AttrOr("href", ""))
	require.Equal(t, "_blank", a.AttrOr("target", ""))
	require.Equal(t, "noopener noreferrer", a.AttrOr("rel", ""))
	require.Equal(t, "false", a.AttrOr("hx-boost", ""))
	require.Equal(t, "GitHub", a.Text())
}

func TestShellRendersDocumentHead(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/")
	doc := testutil.RenderDOM(t, p.Shell(platform.PageMeta{
		Title:       "Hugo Moura",
		Description: "Hands-on architecture.",
		Path:        "/",
		Image:       "/img/avatar.png",
	}, h.P(h.ID("content"), g.Text("hello"))))

	head := doc.Find("head")
	require.Equal(t, "Hugo Moura", head.Find("title").Text())
	require.Equal(t, "Hands-on architecture.", head.Find(`meta[name="description"]`).AttrOr("content", ""))
	require.Equal(t, "index, follow", head.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Equal(t, "https://hugomoura.dev/", head.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	require.Equal(t, "https://hugomoura.dev/img/avatar.png", head.Find(`meta[property="og:image"]`).AttrOr("content", ""))
	require.Equal(t, "summary_large_image", head.Find(`meta[name="twitter:card"]`).AttrOr("content", ""))
	require.Equal(t, "/css/site.css", head.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	require.Equal(t, 1, head.Find(`script[src*="htmx"]`).Length())

	var types []string
	head.Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(s.Text()), &doc))
		types = append(types, doc["@type"].(string))
	})
	require.Equal(t, []string{"WebSite", "Person"}, types)

	body := doc.Find("body")
	require.Equal(t, "true", body.AttrOr("hx-boost", ""))
	require.Equal(t, "test", body.AttrOr("data-environment", ""))
	require.Equal(t, "hello", body.Find("main#main #content").Text())
	require.Equal(t, 1, body.Find("header.navbar").Length())
	require.Equal(t, 1, body.Find("footer.footer").Length())
}

func TestShellComposesPageAndSiteTitles(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/")
	doc := testutil.RenderDOM(t, p.Shell(platform.PageMeta{Title: "Page not found", Path: "/404.html", NoIndex: true}))

	require.Equal(t, "Page not found | Hugo Moura", doc.Find("title").Text())
	require.Equal(t, "noindex, nofollow", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	require.Zero(t, doc.Find(`meta[name="description"]`).Length())
}

func TestShellHighlightsActiveNavItem(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/")
	doc := testutil.RenderDOM(t, p.Shell(platform.PageMeta{Title: "Blog", Path: "/blog/tags"}))

	active := doc.Find(".navbar-link--active")
	require.Equal(t, 1, active.Length())
	require.Equal(t, "Blog", active.Text())
	require.Equal(t, "page", active.AttrOr("aria-current", ""))
}

func TestAssetURL(t *testing.T) {
	t.Parallel()

	p := testutil.DefaultPlatform("/portfolio/")
	require.Equal(t, "/portfolio/img/avatar.png", p.AssetURL("/img/avatar.png"))
	require.Equal(t, "https://cdn.example.com/a.png", p.AssetURL("https://cdn.example.com/a.png"))
	require.Empty(t, p.AssetURL(""))
}

func TestFromConfigUsesSiteDocument(t *testing.T) {
	t.Parallel()

	site, err := config.ParseSite([]byte(`
title: Hugo Moura
tagline: Principal Software Engineer
url: https://hugomoura.dev
baseUrl: /
author:
  name: Hugo Moura
  role: Principal Software Engineer
navbar:
  - label: Blog
    href: /blog
routes:
  - /blog
`))
	require.NoError(t, err)

	p := layout.FromConfig(site, "production")
	require.Equal(t, "Principal Software Engineer", p.Identity().Tagline)
	require.True(t, p.Resolves("/blog"))
	require.False(t, p.Resolves("/docs/99-missing"))

	doc := testutil.RenderDOM(t, p.Shell(platform.PageMeta{Title: "Hugo Moura", Path: "/"}))
	require.Equal(t, "production", doc.Find("body").AttrOr("data-environment", ""))
	require.Equal(t, "Blog", doc.Find(".navbar-items a").Text())
}
