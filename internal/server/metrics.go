package server

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeAccepted       = "accepted"
	outcomeRejectedMethod = "rejected_method"
	outcomeError          = "error"
)

// Metrics counts submissions by outcome on a private registry.
type Metrics struct {
	reg         *prometheus.Registry
	submissions *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "formdraft",
		Name:      "submissions_total",
		Help:      "Requests to the submission endpoint, by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(submissions)

	return &Metrics{reg: reg, submissions: submissions}
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

func (m *Metrics) observe(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}
