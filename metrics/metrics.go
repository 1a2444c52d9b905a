// Package metrics provides Prometheus collectors for sweep construction.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Extrusion kinds used as the "kind" label.
const (
	KindPath = "path"
	KindTime = "time"
)

// Metrics provides observability for extrusions and the transform stack.
type Metrics struct {
	// Completed top-level extrusions by kind
	Extrusions *prometheus.CounterVec

	// Boundaries in the solids produced, by kind
	BoundariesEmitted *prometheus.CounterVec

	// Pops that found the transform stack empty
	UnbalancedPops prometheus.Counter

	// Wall time of one top-level extrusion, by kind
	ExtrusionDuration *prometheus.HistogramVec
}

// New creates a Metrics instance with all collectors registered on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Extrusions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sweep_extrusions_total",
			Help: "Total completed extrusions by kind",
		}, []string{"kind"}), // kind: "path", "time"

		BoundariesEmitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sweep_boundaries_emitted_total",
			Help: "Total top-level boundaries produced by extrusions, by kind",
		}, []string{"kind"}),

		UnbalancedPops: factory.NewCounter(prometheus.CounterOpts{
			Name: "sweep_unbalanced_pops_total",
			Help: "Pops on an empty transform stack that reset the pose to identity",
		}),

		ExtrusionDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sweep_extrusion_duration_seconds",
			Help:    "Duration of one top-level extrusion by kind",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"kind"}),
	}
}

// ObserveExtrusion records one completed extrusion.
func (m *Metrics) ObserveExtrusion(kind string, boundaries int, d time.Duration) {
	if m != nil {
		m.Extrusions.WithLabelValues(kind).Inc()
		m.BoundariesEmitted.WithLabelValues(kind).Add(float64(boundaries))
		m.ExtrusionDuration.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// IncUnbalancedPop records a pop on an empty stack.
func (m *Metrics) IncUnbalancedPop() {
	if m != nil {
		m.UnbalancedPops.Inc()
	}
}
