// Package metrics expone las métricas Prometheus del servidor.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "personal_site"

// Metrics agrupa los collectors sobre un registry propio.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	messagesSaved       prometheus.Counter
	requestErrors       *prometheus.CounterVec
}

// Option personaliza Metrics al construirlo.
type Option func(*options)

type options struct {
	namespace     string
	goCollectors  bool
	latencyBucket []float64
}

// WithNamespace cambia el prefijo de las métricas.
func WithNamespace(ns string) Option {
	return func(o *options) {
		if ns != "" {
			o.namespace = ns
		}
	}
}

// WithRuntimeCollectors registra también las métricas de proceso y del runtime de Go.
func WithRuntimeCollectors() Option {
	return func(o *options) { o.goCollectors = true }
}

func New(opts ...Option) *Metrics {
	o := options{
		namespace:     defaultNamespace,
		latencyBucket: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(&o)
	}

	reg := prometheus.NewRegistry()
	if o.goCollectors {
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   o.latencyBucket,
		}, []string{"method", "route"}),
		messagesSaved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: "messages",
			Name:      "saved_total",
			Help:      "Messages persisted through the save endpoint.",
		}),
		requestErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Subsystem: "http",
			Name:      "errors_total",
			Help:      "Failed requests by error kind.",
		}, []string{"kind"}),
	}
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveRequest registra una request terminada.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) MessageSaved() {
	if m == nil {
		return
	}
	m.messagesSaved.Inc()
}

func (m *Metrics) RequestFailed(kind string) {
	if m == nil {
		return
	}
	m.requestErrors.WithLabelValues(kind).Inc()
}

// Handler sirve el registry en formato de exposición de Prometheus.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
