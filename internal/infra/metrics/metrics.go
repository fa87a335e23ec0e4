// Package metrics exposes Prometheus collectors for actions, HTTP traffic and live clients.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"menuboard/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "menuboard"

// Metrics owns a private registry so tests and multiple apps never collide.
type Metrics struct {
	enabled         bool
	registry        *prometheus.Registry
	actions         *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	realtimeClients prometheus.Gauge
}

// New registers the collectors under the configured namespace.
func New(cfg *config.Config) *Metrics {
	namespace := defaultNamespace
	enabled := true
	if cfg.Metrics != nil {
		enabled = cfg.Metrics.Enabled
		if ns := strings.TrimSpace(cfg.Metrics.Namespace); ns != "" {
			namespace = ns
		}
	}

	m := &Metrics{
		enabled:  enabled,
		registry: prometheus.NewRegistry(),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "actions_total",
				Help:      "Menu actions by outcome.",
			},
			[]string{"action", "outcome"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests.",
				Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
			},
			[]string{"method", "route", "status"},
		),
		realtimeClients: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "realtime_clients",
				Help:      "Connected live menu websocket clients.",
			},
		),
	}

	m.registry.MustRegister(
		m.actions,
		m.httpDuration,
		m.realtimeClients,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return m
}

// Enabled reports whether /metrics should be served.
func (m *Metrics) Enabled() bool {
	return m.enabled
}

// RecordAction counts one action outcome.
func (m *Metrics) RecordAction(action, outcome string) {
	m.actions.WithLabelValues(action, outcome).Inc()
}

// SetRealtimeClients sets the live client gauge.
func (m *Metrics) SetRealtimeClients(n int) {
	m.realtimeClients.Set(float64(n))
}

// ObserveHTTP records a finished request against its route template.
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.httpDuration.WithLabelValues(strings.ToUpper(method), route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler returns an HTTP handler exposing the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
