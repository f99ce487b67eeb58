package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	coremetrics "github.com/kilianp07/evtrip/core/metrics"
)

func TestPromSink_RecordSweep(t *testing.T) {
	reg := prometheus.NewRegistry()
	sinkIf, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	sink, ok := sinkIf.(*PromSink)
	require.True(t, ok, "expected PromSink")

	ev := coremetrics.SweepEvent{Vehicle: "zoe", FastestSpeedKmh: 118, FastestTimeH: 4.25, Elapsed: 2 * time.Millisecond}
	require.NoError(t, sink.RecordSweep(ev))
	require.NoError(t, sink.RecordSweep(ev))

	expected := `
# HELP evtrip_sweeps_total Total number of completed speed sweeps
# TYPE evtrip_sweeps_total counter
evtrip_sweeps_total{vehicle="zoe"} 2
`
	if err := testutil.CollectAndCompare(sink.sweeps, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics: %v", err)
	}
	if got := testutil.ToFloat64(sink.fastestSpeed.WithLabelValues("zoe")); got != 118 {
		t.Errorf("fastest speed gauge = %v", got)
	}
	if got := testutil.ToFloat64(sink.fastestTime.WithLabelValues("zoe")); got != 4.25 {
		t.Errorf("fastest time gauge = %v", got)
	}
}

func TestPromSink_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	b, err := NewPromSinkWithRegistry(reg)
	require.NoError(t, err)
	require.Same(t, a.(*PromSink).sweeps, b.(*PromSink).sweeps)
}
