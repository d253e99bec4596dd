package gridpath

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" metric label.
const (
	OutcomeFound       = "found"
	OutcomeTrivial     = "trivial"
	OutcomeUnreachable = "unreachable"
	OutcomeLimit       = "limit"
	OutcomeCanceled    = "canceled"
)

const metricsNamespace = "gridpath"

// Metrics holds the Prometheus collectors updated after every search. A nil
// *Metrics records nothing.
type Metrics struct {
	// SearchesTotal counts searches by strategy and outcome.
	SearchesTotal *prometheus.CounterVec

	// ExpandedNodes observes how many nodes each search closed.
	ExpandedNodes *prometheus.HistogramVec

	// DurationSeconds observes wall-clock time per search.
	DurationSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "searches_total",
			Help:      "Total number of path searches by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		ExpandedNodes: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "expanded_nodes",
			Help:      "Number of nodes expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		DurationSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "search_duration_seconds",
			Help:      "Duration of a path search",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"strategy"}),
	}
}

func (m *Metrics) observe(strategy, outcome string, expanded int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(strategy, outcome).Inc()
	m.ExpandedNodes.WithLabelValues(strategy).Observe(float64(expanded))
	m.DurationSeconds.WithLabelValues(strategy).Observe(elapsed.Seconds())
}
