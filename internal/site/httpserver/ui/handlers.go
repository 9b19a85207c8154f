package ui

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	custommw "github.com/hugodevelopr/hugodeveloper/internal/site/httpserver/middleware"
	"github.com/hugodevelopr/hugodeveloper/internal/site/metrics"
	"github.com/hugodevelopr/hugodeveloper/internal/site/pages"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/requestctx"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/helpers"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
)

// Dependencies collects what the UI handlers render against.
type Dependencies struct {
	Platform platform.SitePlatform
	Content  home.PageData
	Metrics  *metrics.Metrics
}

// Handlers exposes HTTP handlers for the site pages.
type Handlers struct {
	platform platform.SitePlatform
	metrics  *metrics.Metrics
	home     pages.Page
	notFound pages.Page
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	return &Handlers{
		platform: deps.Platform,
		metrics:  deps.Metrics,
		home:     pages.Home(deps.Content),
		notFound: pages.NotFound(),
	}
}

// Home renders the landing page.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.home)
}

// NotFound renders the not-found page with a 404 status.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.notFound)
}

func (h *Handlers) serve(w http.ResponseWriter, r *http.Request, page pages.Page) {
	ctx := r.Context()
	htmx := custommw.HTMXInfoFromContext(ctx)
	requestctx.Logger(ctx).Debug("render page",
		zap.String("page", page.Name),
		zap.String("site_path", custommw.RequestPathFromContext(ctx)),
		zap.String("base_path", custommw.BasePathFromContext(ctx)),
		zap.Bool("boosted", htmx.IsBoosted),
		zap.Bool("history_restore", htmx.HistoryRestore),
	)

	component := h.timed(page, helpers.Component(page.Render(h.platform)))

	opts := []func(*templ.ComponentHandler){
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			requestctx.Logger(r.Context()).Error("render page failed",
				zap.String("page", page.Name),
				zap.Error(err),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	}
	if page.Status != 0 && page.Status != http.StatusOK {
		opts = append(opts, templ.WithStatus(page.Status))
	}
	templ.Handler(component, opts...).ServeHTTP(w, r)
}

func (h *Handlers) timed(page pages.Page, c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		start := time.Now()
		err := c.Render(ctx, w)
		h.metrics.ObserveRender(page.Name, time.Since(start), err)
		return err
	})
}
