// Package pages lists the documents the site serves and exports.
package pages

import (
	"net/http"

	g "maragu.dev/gomponents"

	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/notfound"
)

// Page is one renderable document.
type Page struct {
	// Name labels metrics and logs.
	Name   string
	Route  string
	File   string
	Status int
	Render func(p platform.SitePlatform) g.Node
}

// Home is the landing page.
func Home(data home.PageData) Page {
	return Page{
		Name:   "home",
		Route:  home.Route,
		File:   "index.html",
		Status: http.StatusOK,
		Render: func(p platform.SitePlatform) g.Node { return home.Index(p, data) },
	}
}

// NotFound is the fallback document for unknown routes.
func NotFound() Page {
	return Page{
		Name:   "not_found",
		Route:  notfound.Path,
		File:   "404.html",
		Status: http.StatusNotFound,
		Render: notfound.Page,
	}
}

// All returns every page in export order.
func All(data home.PageData) []Page {
	return []Page{Home(data), NotFound()}
}
