package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics holds all Prometheus metrics for a scrape run. They live on a
// private registry so a push delivers exactly this job's series.
type Metrics struct {
	registry *prometheus.Registry

	PagesFetched     prometheus.Counter
	ChampionsScraped prometheus.Counter
	ErrorsTotal      *prometheus.CounterVec
	RunDuration      prometheus.Gauge
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		PagesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "scraper_pages_fetched_total",
			Help: "The total number of wiki pages fetched",
		}),
		ChampionsScraped: factory.NewCounter(prometheus.CounterOpts{
			Name: "scraper_champions_scraped_total",
			Help: "The total number of champions successfully scraped",
		}),
		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scraper_errors_total",
			Help: "The total number of errors encountered",
		}, []string{"type"}), // e.g. 'roster_fetch', 'stats_extract', 'upload_failed'
		RunDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "scraper_run_duration_seconds",
			Help: "Wall-clock duration of the scrape run",
		}),
	}
}

func (m *Metrics) IncPagesFetched() {
	m.PagesFetched.Inc()
}

func (m *Metrics) IncChampionsScraped() {
	m.ChampionsScraped.Inc()
}

func (m *Metrics) IncErrorsTotal(errorType string) {
	m.ErrorsTotal.WithLabelValues(errorType).Inc()
}

func (m *Metrics) ObserveRunDuration(d time.Duration) {
	m.RunDuration.Set(d.Seconds())
}

// Push delivers the run's metrics to a Pushgateway. A one-shot job has no
// endpoint to scrape, so pushing is the only delivery path.
func (m *Metrics) Push(url, job string) error {
	return push.New(url, job).Gatherer(m.registry).Push()
}
