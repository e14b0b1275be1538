package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the engagement engine.
type Metrics struct {
	GateDecisions        *prometheus.CounterVec
	PublishTotal         *prometheus.CounterVec
	PublishDuration      prometheus.Histogram
	CandidateTransitions *prometheus.CounterVec
	RefreshOutcomes      *prometheus.CounterVec
}

// New creates the collectors and registers them on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		GateDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_gate_decisions_total",
			Help: "Gate decisions by stage (admission, publish), outcome and reason.",
		}, []string{"stage", "outcome", "reason"}),
		PublishTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_publish_total",
			Help: "Publish attempts by outcome.",
		}, []string{"outcome"}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "engage_publish_duration_seconds",
			Help:    "Latency of publisher calls.",
			Buckets: prometheus.DefBuckets,
		}),
		CandidateTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_candidate_transitions_total",
			Help: "Candidate status transitions.",
		}, []string{"status"}),
		RefreshOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "engage_refresh_outcomes_total",
			Help: "Engagement refresh outcomes per record.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(
			m.GateDecisions,
			m.PublishTotal,
			m.PublishDuration,
			m.CandidateTransitions,
			m.RefreshOutcomes,
		)
	}
	return m
}

// ObserveGate records a gate decision.
func (m *Metrics) ObserveGate(stage, outcome, reason string) {
	if m == nil {
		return
	}
	m.GateDecisions.WithLabelValues(stage, outcome, reason).Inc()
}

// ObservePublish records a publish attempt outcome and its latency.
func (m *Metrics) ObservePublish(outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.PublishTotal.WithLabelValues(outcome).Inc()
	m.PublishDuration.Observe(d.Seconds())
}

// ObserveTransition records a candidate status transition.
func (m *Metrics) ObserveTransition(status string) {
	if m == nil {
		return
	}
	m.CandidateTransitions.WithLabelValues(status).Inc()
}

// ObserveRefresh records an engagement refresh outcome.
func (m *Metrics) ObserveRefresh(outcome string) {
	if m == nil {
		return
	}
	m.RefreshOutcomes.WithLabelValues(outcome).Inc()
}
