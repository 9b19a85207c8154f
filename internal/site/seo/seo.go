package seo

import (
	"strings"
)

// OpenGraph carries og:* tags.
type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
}

// Twitter carries twitter:* card tags.
type Twitter struct {
	Card  string
	Image string
}

// Meta is the resolved head metadata for one document.
type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []string
}

// Input is what a page knows about itself plus the site identity.
type Input struct {
	SiteTitle   string
	SiteURL     string
	BaseURL     string
	PageTitle   string
	Description string
	Path        string
	Image       string
	NoIndex     bool
}

// Build resolves document metadata. The document title is the page title followed by the
// site title, collapsed to one when they are the same.
func Build(in Input) Meta {
	title := DocumentTitle(in.PageTitle, in.SiteTitle)
	canonical := AbsoluteURL(in.SiteURL, in.BaseURL, in.Path)
	image := ""
	if in.Image != "" {
		image = AbsoluteURL(in.SiteURL, in.BaseURL, in.Image)
	}

	robots := "index, follow"
	if in.NoIndex {
		robots = "noindex, nofollow"
	}

	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}

	return Meta{
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Canonical:   canonical,
		Robots:      robots,
		OG: OpenGraph{
			Title:       title,
			Description: strings.TrimSpace(in.Description),
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    in.SiteTitle,
		},
		Twitter: Twitter{
			Card:  card,
			Image: image,
		},
	}
}

// DocumentTitle joins page and site titles with a pipe.
func DocumentTitle(pageTitle, siteTitle string) string {
	pageTitle = strings.TrimSpace(pageTitle)
	siteTitle = strings.TrimSpace(siteTitle)
	switch {
	case pageTitle == "":
		return siteTitle
	case siteTitle == "" || pageTitle == siteTitle:
		return pageTitle
	default:
		return pageTitle + " | " + siteTitle
	}
}

// AbsoluteURL joins a site origin, base path and route. Without an origin the result is
// a root-relative path. Absolute inputs are returned unchanged.
func AbsoluteURL(siteURL, baseURL, route string) string {
	route = strings.TrimSpace(route)
	if strings.HasPrefix(route, "http://") || strings.HasPrefix(route, "https://") {
		return route
	}
	p := JoinBase(baseURL, route)
	siteURL = strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if siteURL == "" {
		return p
	}
	return siteURL + p
}

// JoinBase prefixes an internal route with the site base path.
func JoinBase(baseURL, route string) string {
	base := strings.Trim(strings.TrimSpace(baseURL), "/")
	route = strings.TrimLeft(strings.TrimSpace(route), "/")
	switch {
	case base == "" && route == "":
		return "/"
	case base == "":
		return "/" + route
	case route == "":
		return "/" + base + "/"
	default:
		return "/" + base + "/" + route
	}
}
