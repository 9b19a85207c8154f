package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for page rendering.
type Metrics struct {
	PageRenders      *prometheus.CounterVec
	PageRenderErrors *prometheus.CounterVec
	RenderDuration   *prometheus.HistogramVec
}

// New creates and registers the collectors on reg. A nil registerer uses the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_page_renders_total",
			Help: "Total number of rendered pages by page name",
		}, []string{"page"}),
		PageRenderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "site_page_render_errors_total",
			Help: "Total number of page renders that returned an error",
		}, []string{"page"}),
		RenderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "site_page_render_seconds",
			Help:    "Time spent rendering a page",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"page"}),
	}
}

// ObserveRender records one render of page. Safe on a nil receiver.
func (m *Metrics) ObserveRender(page string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.PageRenders.WithLabelValues(page).Inc()
	m.RenderDuration.WithLabelValues(page).Observe(elapsed.Seconds())
	if err != nil {
		m.PageRenderErrors.WithLabelValues(page).Inc()
	}
}
