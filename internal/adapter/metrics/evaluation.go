package metrics

import (
	"time"

	apperrors "github.com/linaank/web1/internal/platform/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// EvaluationMetrics holds Prometheus metrics for point submissions.
// It implements app.Observer.
type EvaluationMetrics struct {
	Evaluations *prometheus.CounterVec
	Duration    prometheus.Histogram
	Rejections  *prometheus.CounterVec
}

// NewEvaluationMetrics creates and registers evaluation metrics on the given registry.
func NewEvaluationMetrics(reg prometheus.Registerer) *EvaluationMetrics {
	m := &EvaluationMetrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of evaluated points, by outcome.",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of the region test in seconds.",
			Buckets:   []float64{1e-7, 5e-7, 1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 1e-3},
		}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_submissions_total",
			Help:      "Total number of submissions rejected before evaluation, by error type.",
		}, []string{"type"}),
	}

	reg.MustRegister(m.Evaluations, m.Duration, m.Rejections)
	return m
}

func (m *EvaluationMetrics) ObserveEvaluation(hit bool, elapsed time.Duration) {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.Evaluations.WithLabelValues(outcome).Inc()
	m.Duration.Observe(elapsed.Seconds())
}

func (m *EvaluationMetrics) ObserveRejection(errType apperrors.ErrorType) {
	m.Rejections.WithLabelValues(string(errType)).Inc()
}
