// Package metrics defines the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

type Metrics struct {
	registry *prometheus.Registry

	ContactTransitions *prometheus.CounterVec
	ThemeToggles       *prometheus.CounterVec
	ProjectQueries     *prometheus.CounterVec
	CarouselMoves      *prometheus.CounterVec
	ActiveSessions     prometheus.Gauge
	Visits             prometheus.Counter
}

// New registers every collector on a fresh registry, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		ContactTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_transitions_total",
			Help:      "Contact form state transitions by target state.",
		}, []string{"state"}),
		ThemeToggles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Theme toggles by resulting theme.",
		}, []string{"theme"}),
		ProjectQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "project_queries_total",
			Help:      "Project filter evaluations by whether they matched anything.",
		}, []string{"result"}),
		CarouselMoves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "carousel_moves_total",
			Help:      "Carousel navigation by direction.",
		}, []string{"direction"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Visitor sessions currently held in memory.",
		}),
		Visits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracked_visits_total",
			Help:      "Page views recorded by visit tracking.",
		}),
	}
	reg.MustRegister(
		m.ContactTransitions,
		m.ThemeToggles,
		m.ProjectQueries,
		m.CarouselMoves,
		m.ActiveSessions,
		m.Visits,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
