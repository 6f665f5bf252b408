package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Record(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)

	m.RecordDispatch("before")
	m.RecordDispatch("before")
	m.RecordHandler("before", StatusOK, time.Millisecond)
	m.RecordHandler("before", StatusPanic, time.Millisecond)
	m.RecordCount("arrivals", "after")
	m.RecordEvent()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.dispatches.WithLabelValues("before")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handlerCalls.WithLabelValues("before", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handlerCalls.WithLabelValues("before", StatusPanic)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counted.WithLabelValues("arrivals", "after")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.events))
	assert.Equal(t, 1, testutil.CollectAndCount(m.handlerDuration))
}

func TestMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestMetrics_WriteText(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	m.RecordDispatch("enable")

	var b strings.Builder
	require.NoError(t, m.WriteText(&b))
	assert.Contains(t, b.String(), `simevents_dispatch_dispatches_total{hook="enable"} 1`)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordDispatch("before")
		m.RecordHandler("before", StatusOK, 0)
		m.RecordCount("c", "before")
		m.RecordEvent()
	})
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteText(&strings.Builder{}))
}
