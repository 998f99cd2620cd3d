package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcome label values
const (
	SearchFound    = "found"
	SearchNotFound = "not_found"
	SearchEmpty    = "empty"
)

// Metrics holds all prometheus metrics of the board
type Metrics struct {
	registry *prometheus.Registry

	RotationTicks   prometheus.Counter
	DatasetSwitches prometheus.Counter
	Searches        *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	LoadFailures    prometheus.Counter
	AdventureClicks prometheus.Counter
}

// NewMetrics creates the board metrics on a private registry
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RotationTicks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rotation_ticks_total",
			Help:      "The total number of automatic page advances",
		}),
		DatasetSwitches: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_switches_total",
			Help:      "The total number of today/tomorrow swaps",
		}),
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of booking searches",
		}, []string{"outcome"}),
		LoadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "load_duration_seconds",
			Help:      "Time taken to load both datasets",
			Buckets:   prometheus.DefBuckets,
		}),
		LoadFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "load_failures_total",
			Help:      "The total number of failed dataset loads",
		}),
		AdventureClicks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adventure_clicks_total",
			Help:      "The total number of adventure button clicks",
		}),
	}
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
