package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the API. A nil *Metrics is
// valid and records nothing, which keeps tests free of registry setup.
type Metrics struct {
	registry *prometheus.Registry

	SessionsActive  prometheus.Gauge
	SessionsCreated prometheus.Counter
	SessionsEvicted *prometheus.CounterVec

	ErrorResponses *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,

		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "projectboard_sessions_active",
			Help: "Number of sessions currently held in the registry, expired or not",
		}),
		SessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "projectboard_sessions_created_total",
			Help: "Total number of sessions minted",
		}),
		SessionsEvicted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projectboard_sessions_evicted_total",
				Help: "Total number of sessions removed from the registry",
			},
			[]string{"reason"},
		),
		ErrorResponses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "projectboard_error_responses_total",
				Help: "Error responses by entity and error kind",
			},
			[]string{"entity", "kind"},
		),
	}

	registry.MustRegister(
		m.SessionsActive,
		m.SessionsCreated,
		m.SessionsEvicted,
		m.ErrorResponses,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) SessionCreated(active int) {
	if m == nil {
		return
	}
	m.SessionsCreated.Inc()
	m.SessionsActive.Set(float64(active))
}

// SessionsRemoved records removals; reason is one of logout, expired or sweep.
func (m *Metrics) SessionsRemoved(reason string, count, active int) {
	if m == nil {
		return
	}
	if count > 0 {
		m.SessionsEvicted.WithLabelValues(reason).Add(float64(count))
	}
	m.SessionsActive.Set(float64(active))
}

func (m *Metrics) ErrorResponse(entity, kind string) {
	if m == nil {
		return
	}
	m.ErrorResponses.WithLabelValues(entity, kind).Inc()
}
