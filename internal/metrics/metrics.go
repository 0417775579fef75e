package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "restaurant_api"

// Mutation outcomes recorded by the handlers.
const (
	OutcomeAdd    = "add"
	OutcomeRemove = "remove"
	OutcomeNoop   = "noop"
)

// Metrics holds the service collectors on a dedicated registry.
type Metrics struct {
	Registry *prometheus.Registry

	TotalRequests  *prometheus.CounterVec
	HTTPDuration   *prometheus.HistogramVec
	StoreMutations *prometheus.CounterVec
}

// New builds and registers the request, store and runtime collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		TotalRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Number of HTTP requests.",
			},
			[]string{"path", "code", "method"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets: []float64{
					0.001,
					0.005,
					0.01,
					0.05,
					0.1, // 100 ms
					0.5,
					1,
				},
			},
			[]string{"path", "code", "method"},
		),
		StoreMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "store_mutations_total",
				Help:      "POST outcomes per store.",
			},
			[]string{"store", "action"},
		),
	}
	m.Registry.MustRegister(
		m.TotalRequests,
		m.HTTPDuration,
		m.StoreMutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// WatchUsers exposes the number of users holding an entry in the named store.
func (m *Metrics) WatchUsers(store string, count func() int) {
	if m == nil {
		return
	}
	m.Registry.MustRegister(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "store_users",
			Help:        "Users with an entry in the store.",
			ConstLabels: prometheus.Labels{"store": store},
		},
		func() float64 { return float64(count()) },
	))
}

// ObserveMutation is safe to call on a nil *Metrics.
func (m *Metrics) ObserveMutation(store, outcome string) {
	if m == nil {
		return
	}
	m.StoreMutations.WithLabelValues(store, outcome).Inc()
}

// ObserveRequest is safe to call on a nil *Metrics.
func (m *Metrics) ObserveRequest(path, code, method string, seconds float64) {
	if m == nil {
		return
	}
	m.TotalRequests.WithLabelValues(path, code, method).Inc()
	m.HTTPDuration.WithLabelValues(path, code, method).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
