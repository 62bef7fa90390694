package platform

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/farmsecure/farmsecure/pkg/scoring"
)

// Metrics counts evaluations on a private registry. Nothing is served; the
// registry is written to a text file on request.
type Metrics struct {
	registry    *prometheus.Registry
	assessments *prometheus.CounterVec
	rejected    prometheus.Counter
	scores      prometheus.Histogram
}

// NewMetrics registers the FarmSecure collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		assessments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "farmsecure_assessments_total",
			Help: "Completed risk assessments by level",
		}, []string{"level"}),
		rejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "farmsecure_assessments_rejected_total",
			Help: "Assessments rejected by input validation",
		}),
		scores: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "farmsecure_risk_score",
			Help:    "Distribution of clamped risk scores",
			Buckets: prometheus.LinearBuckets(25, 25, 4), // tier boundaries
		}),
	}
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveAssessment records one completed assessment.
func (m *Metrics) ObserveAssessment(a *scoring.Assessment) {
	m.assessments.WithLabelValues(string(a.Level)).Inc()
	m.scores.Observe(float64(a.Score))
}

// ObserveRejected records one assessment that failed validation.
func (m *Metrics) ObserveRejected() {
	m.rejected.Inc()
}

// WriteTextfile writes the registry in the Prometheus text format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
