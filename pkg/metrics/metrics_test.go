package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("slot-scheduler", reg)

	m.ObserveBooking("created")
	m.ObserveBooking("created")
	m.ObserveBooking("slot_taken")
	m.ObserveDecline("removed")
	m.ObserveStorageError("persist")
	m.SetBookingsStored(3)
	m.ObserveHTTPRequest("GET", "/api/v1/calendar", "200", 0.01)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("slot_taken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.declinesTotal.WithLabelValues("removed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.storageErrorsTotal.WithLabelValues("persist")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.bookingsStored))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/calendar", "200")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking("created")
		m.ObserveDecline("noop")
		m.ObserveStorageError("load")
		m.SetBookingsStored(1)
		m.ObserveHTTPRequest("GET", "/", "200", 0)
	})
}
