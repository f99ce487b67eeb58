package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evtrip/core/factory"
	coremetrics "github.com/kilianp07/evtrip/core/metrics"
)

func TestBuiltinSinks(t *testing.T) {
	assert.Equal(t, []string{"influx", "mqtt", "nop", "prometheus"}, coremetrics.SinkTypes())

	s, err := coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}})
	require.NoError(t, err)
	assert.IsType(t, coremetrics.NopSink{}, s)

	s, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "nop"}, {Type: "prometheus"}})
	require.NoError(t, err)
	m, ok := s.(*coremetrics.MultiSink)
	require.True(t, ok)
	assert.Len(t, m.Sinks, 2)

	_, err = coremetrics.NewMetricsSink([]factory.ModuleConfig{{Type: "mqtt"}})
	assert.ErrorContains(t, err, "broker is required")
}
