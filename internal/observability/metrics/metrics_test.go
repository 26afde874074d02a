package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestContactMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveSubmission("accepted")
	m.ObserveSubmission("accepted")
	m.ObserveSubmission("rate_limited")
	m.ObserveDelivery("sent")
	m.ObserveVerifyLatency(0.25)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.submissionsTotal.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.submissionsTotal.WithLabelValues("rate_limited")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.deliveriesTotal.WithLabelValues("sent")))
}

func TestContactMetrics_NilSafe(t *testing.T) {
	var m *ContactMetrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission("accepted")
		m.ObserveDelivery("sent")
		m.ObserveVerifyLatency(0.1)
	})
}
