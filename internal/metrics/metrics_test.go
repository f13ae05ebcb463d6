package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAction(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.RecordAction("like", OutcomeApplied)
	m.RecordAction("like", OutcomeApplied)
	m.RecordAction("like", OutcomeDenied)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Actions.WithLabelValues("like", OutcomeApplied)), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Actions.WithLabelValues("like", OutcomeDenied)), 1e-9)
	assert.Zero(t, testutil.ToFloat64(m.Actions.WithLabelValues("like", OutcomeNoop)))
}

func TestRecordTextGen(t *testing.T) {
	t.Parallel()

	m := New(prometheus.NewRegistry())
	m.RecordTextGen(OutcomeGenerated)
	m.RecordTextGen(OutcomeFailed)

	assert.InDelta(t, 1, testutil.ToFloat64(m.TextGen.WithLabelValues(OutcomeGenerated)), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TextGen.WithLabelValues(OutcomeFailed)), 1e-9)
}

func TestNilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.RecordAction("like", OutcomeApplied)
		m.RecordTextGen(OutcomeGenerated)
	})
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	m := Discard()
	require.NotNil(t, m)
	m.RecordAction("upload", OutcomeApplied)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Actions.WithLabelValues("upload", OutcomeApplied)), 1e-9)
}
