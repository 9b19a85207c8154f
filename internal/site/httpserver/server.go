package httpserver

import (
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	custommw "github.com/hugodevelopr/hugodeveloper/internal/site/httpserver/middleware"
	"github.com/hugodevelopr/hugodeveloper/internal/site/httpserver/ui"
	"github.com/hugodevelopr/hugodeveloper/internal/site/metrics"
	"github.com/hugodevelopr/hugodeveloper/internal/site/observability"
	"github.com/hugodevelopr/hugodeveloper/internal/site/platform"
	"github.com/hugodevelopr/hugodeveloper/internal/site/templates/home"
)

const (
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultHandlerTimeout = 15 * time.Second
)

// assetDirs are the top-level directories of the public bundle served as static files.
var assetDirs = []string{"img", "css"}

// Config holds runtime options for the site HTTP server.
type Config struct {
	Address     string
	BasePath    string
	Environment string
	Logger      *zap.Logger
	Platform    platform.SitePlatform
	Content     home.PageData
	Assets      fs.FS
	// Registry receives the render metrics and backs /metrics. A fresh registry is used when nil.
	Registry     *prometheus.Registry
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	basePath := normalizeBasePath(cfg.BasePath)

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.Environment(cfg.Environment))
	router.Use(observability.InjectLoggerMiddleware(logger))
	router.Use(observability.RequestLoggerMiddleware())
	router.Use(observability.RecoveryMiddleware(logger))
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(defaultHandlerTimeout))
	router.Use(custommw.RequestInfoMiddleware(basePath))
	router.Use(custommw.HTMX())

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	handlers := ui.NewHandlers(ui.Dependencies{
		Platform: cfg.Platform,
		Content:  cfg.Content,
		Metrics:  metrics.New(registry),
	})
	mountSiteRoutes(router, basePath, handlers, cfg.Assets)
	router.NotFound(handlers.NotFound)

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: defaultReadTimeout,
		ReadTimeout:       durationOr(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout:      durationOr(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:       durationOr(cfg.IdleTimeout, defaultIdleTimeout),
	}
}

func mountSiteRoutes(router chi.Router, base string, handlers *ui.Handlers, assets fs.FS) {
	site := chi.NewRouter()
	site.Get("/", handlers.Home)
	if assets != nil {
		static := custommw.AssetsWithCache(assets, base)
		for _, dir := range assetDirs {
			site.Handle("/"+dir+"/*", static)
		}
	}
	site.NotFound(handlers.NotFound)

	if base == "/" {
		router.Mount("/", site)
		return
	}
	router.Mount(base, site)
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
