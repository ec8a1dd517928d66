// Package observability provides Prometheus metrics for the selection engine.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ads-campaigns/internal/core/domain"
)

// Metrics holds the service collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	SelectionsTotal   *prometheus.CounterVec
	SelectionDuration prometheus.Histogram
	BannersReturned   prometheus.Histogram
	StorageErrors     *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on a dedicated
// registry together with the Go and process collectors.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "ads_campaigns"
	}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		SelectionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "requests_total",
			Help:      "Total number of campaign selections by tier",
		}, []string{"tier"}),
		SelectionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "duration_seconds",
			Help:      "Latency of campaign banner selection",
			Buckets:   prometheus.DefBuckets,
		}),
		BannersReturned: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "selection",
			Name:      "banners_returned",
			Help:      "Number of banners returned per selection",
			Buckets:   []float64{0, 1, 2, 3, 4, 5, 7, 10},
		}),
		StorageErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "errors_total",
			Help:      "Total number of failed storage operations",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.SelectionsTotal,
		m.SelectionDuration,
		m.BannersReturned,
		m.StorageErrors,
	)
	return m
}

// ObserveSelection records a finished selection.
func (m *Metrics) ObserveSelection(tier domain.Tier, banners int, took time.Duration) {
	if m == nil {
		return
	}
	m.SelectionsTotal.WithLabelValues(string(tier)).Inc()
	m.SelectionDuration.Observe(took.Seconds())
	m.BannersReturned.Observe(float64(banners))
}

// ObserveStorageError counts a failed storage operation.
func (m *Metrics) ObserveStorageError(operation string) {
	if m == nil {
		return
	}
	m.StorageErrors.WithLabelValues(operation).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
