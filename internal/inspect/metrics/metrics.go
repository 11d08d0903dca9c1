package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the inspection counters.
type Metrics struct {
	Accepted *prometheus.CounterVec
	Rejected *prometheus.CounterVec
}

// New creates the counters and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Accepted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtn_inspections_accepted_total",
			Help: "Total number of routing numbers that parsed successfully",
		}, []string{"form"}),
		Rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rtn_inspections_rejected_total",
			Help: "Total number of routing numbers rejected, by failure code",
		}, []string{"form", "code"}),
	}
}

// IncrementAccepted counts a successful parse.
func (m *Metrics) IncrementAccepted(form string) {
	m.Accepted.WithLabelValues(form).Inc()
}

// IncrementRejected counts a rejected input.
func (m *Metrics) IncrementRejected(form, code string) {
	m.Rejected.WithLabelValues(form, code).Inc()
}
