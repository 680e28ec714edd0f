package metrics

import "github.com/prometheus/client_golang/prometheus"

// SessionMetrics holds Prometheus metrics for the session store.
type SessionMetrics struct {
	ActiveSessions prometheus.GaugeFunc
	RowsEvicted    prometheus.Counter
}

// NewSessionMetrics creates and registers session metrics on the given registry.
// activeSessions is sampled on every scrape.
func NewSessionMetrics(reg prometheus.Registerer, activeSessions func() int) *SessionMetrics {
	m := &SessionMetrics{
		ActiveSessions: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "active",
			Help:      "Number of sessions currently held in memory.",
		}, func() float64 { return float64(activeSessions()) }),
		RowsEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sessions",
			Name:      "rows_evicted_total",
			Help:      "Total number of history rows dropped by the per-session cap.",
		}),
	}

	reg.MustRegister(m.ActiveSessions, m.RowsEvicted)
	return m
}

// OnEvict is suitable as a session store eviction hook.
func (m *SessionMetrics) OnEvict(n int) {
	m.RowsEvicted.Add(float64(n))
}
