// Package metrics exposes prometheus counters for the simulator. No scrape
// endpoint runs here; callers register against their own registry and
// decide how to expose it.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for recorded actions.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeDenied  = "denied"

	// Text-generation outcomes.
	OutcomeGenerated    = "generated"
	OutcomeUnconfigured = "unconfigured"
	OutcomeFailed       = "failed"
)

// Metrics holds the simulator's counters.
type Metrics struct {
	Actions *prometheus.CounterVec
	TextGen *prometheus.CounterVec
}

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "neotube_actions_total",
			Help: "Session mutations by action and outcome.",
		}, []string{"action", "outcome"}),
		TextGen: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "neotube_textgen_requests_total",
			Help: "Text-generation requests by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.Actions, m.TextGen)
	return m
}

// Discard returns metrics backed by a private registry, for callers that do
// not care about observability.
func Discard() *Metrics {
	return New(prometheus.NewRegistry())
}

// RecordAction counts one mutation outcome. Nil-safe.
func (m *Metrics) RecordAction(action, outcome string) {
	if m == nil {
		return
	}
	m.Actions.WithLabelValues(action, outcome).Inc()
}

// RecordTextGen counts one text-generation outcome. Nil-safe.
func (m *Metrics) RecordTextGen(outcome string) {
	if m == nil {
		return
	}
	m.TextGen.WithLabelValues(outcome).Inc()
}
