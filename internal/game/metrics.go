package game

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Plan outcomes reported by Metrics.
const (
	outcomeOK         = "ok"
	outcomeInfeasible = "infeasible"
	outcomeError      = "error"
)

// Metrics tracks round planning.
type Metrics struct {
	plans    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers planning collectors on reg. A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		plans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "flagquiz",
			Name:      "plans_total",
			Help:      "Round plans requested, by mode family and outcome.",
		}, []string{"family", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "flagquiz",
			Name:      "plan_duration_seconds",
			Help:      "Time spent building a round plan.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"family"}),
	}
	if reg != nil {
		reg.MustRegister(m.plans, m.duration)
	}
	return m
}

func (m *Metrics) observe(family, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.plans.WithLabelValues(family, outcome).Inc()
	m.duration.WithLabelValues(family).Observe(seconds)
}
