package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("doc-gate").(*Metrics)
	m.RegisterCounter("rate_limited_total", "help")
	m.RegisterCounterVec("requests_total", "help", []string{"route", "status"})

	m.IncCounter("rate_limited_total")
	m.IncCounter("rate_limited_total")
	m.IncCounter("unknown_total")
	m.IncCounterVec("requests_total", "/mongo", "200")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.counters["rate_limited_total"]))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.counterVecs["requests_total"].WithLabelValues("/mongo", "200")))
}

func TestMetrics_NamespaceIsSanitized(t *testing.T) {
	m := NewMetrics("doc-gate").(*Metrics)
	m.RegisterGauge("store_up", "help")
	m.SetGauge("store_up", 1)

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "doc_gate_store_up")
}

func TestMetrics_HistogramVec(t *testing.T) {
	m := NewMetrics("docgate").(*Metrics)
	m.RegisterHistogramVec("request_duration_seconds", "help", []float64{0.1, 1}, []string{"route"})

	m.ObserveHistogramVec("request_duration_seconds", 0.05, "/config")
	m.ObserveHistogramVec("missing", 0.05, "/config")

	assert.Equal(t, 1, testutil.CollectAndCount(m.histogramVecs["request_duration_seconds"]))
}
