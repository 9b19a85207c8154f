package testutil

import (
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hugodevelopr/hugodeveloper/internal/site/content"
	"github.com/hugodevelopr/hugodeveloper/internal/site/httpserver"
	"github.com/hugodevelopr/hugodeveloper/internal/site/nav"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/layout"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithBasePath sets the mount path; the platform base URL follows it unless overridden.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithPlatform overrides the site platform.
func WithPlatform(p platform.SitePlatform) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Platform = p
	}
}

// WithContent overrides the landing page data.
func WithContent(data home.PageData) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Content = data
	}
}

// WithRegistry wires a Prometheus registry so tests can gather render metrics.
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Registry = reg
	}
}

// WithLogger overrides the request logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// DefaultPlatform returns the production platform with the test site identity.
func DefaultPlatform(baseURL string) *layout.Platform {
	return layout.New(layout.Options{
		Identity: platform.SiteIdentity{
			Title:   "Hugo Moura",
			Tagline: "Principal Software Engineer",
			URL:     "https://hugomoura.dev",
			BaseURL: baseURL,
		},
		AuthorRole: "Principal Software Engineer",
		Navbar:     []nav.Item{{Label: "Docs", Href: "/docs/00-start-here"}, {Label: "Blog", Href: "/blog"}},
		Social:     []nav.Item{{Label: "GitHub", Href: "https://github.com/hugodevelopr"}},
		Routes: platform.NewRoutes(
			"/docs/00-start-here", "/docs/01-guides", "/docs/02-deep-dives",
			"/docs/05-reference", "/docs/06-decisions", "/blog", "/blog/archive", "/blog/tags",
		),
		Environment: "test",
	})
}

// Assets is a minimal public bundle.
func Assets() fstest.MapFS {
	return fstest.MapFS{
		"img/avatar.png": &fstest.MapFile{Data: []byte("\x89PNG fake")},
		"css/site.css":   &fstest.MapFile{Data: []byte("body{margin:0}")},
	}
}

// NewServer constructs an httptest server running the site HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:     ":0",
		BasePath:    "/",
		Environment: "test",
		Content:     content.MustHome(),
		Assets:      Assets(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Platform == nil {
		cfg.Platform = DefaultPlatform(cfg.BasePath)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
