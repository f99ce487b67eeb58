package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evtrip/core/factory"
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/sweep"
)

type recordSink struct {
	sweeps  int
	samples int
	err     error
}

func (r *recordSink) RecordSweep(SweepEvent) error {
	r.sweeps++
	return r.err
}

func (r *recordSink) RecordSamples(_ SweepEvent, s []model.SpeedSample) error {
	r.samples += len(s)
	return nil
}

type sweepOnly struct{ n int }

func (s *sweepOnly) RecordSweep(SweepEvent) error {
	s.n++
	return nil
}

func testResult() sweep.Result {
	return sweep.Result{
		RunID:   "run-1",
		Vehicle: model.Vehicle{Name: "zoe"},
		Trip:    model.Trip{DistanceKm: 300},
		Samples: []model.SpeedSample{
			{SpeedKmh: 90, TotalTimeH: 4, ConsumptionKWhPer100Km: 14},
			{SpeedKmh: 100, TotalTimeH: 3.8, ConsumptionKWhPer100Km: 16},
		},
		Fastest:     model.SpeedSample{SpeedKmh: 100, TotalTimeH: 3.8, ConsumptionKWhPer100Km: 16},
		GeneratedAt: time.Unix(1700000000, 0).UTC(),
		Elapsed:     time.Millisecond,
	}
}

func TestEventFromResult(t *testing.T) {
	ev := EventFromResult(testResult())
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, "zoe", ev.Vehicle)
	assert.Equal(t, 300.0, ev.DistanceKm)
	assert.Equal(t, 2, ev.Samples)
	assert.Equal(t, 100.0, ev.FastestSpeedKmh)
	assert.Equal(t, 3.8, ev.FastestTimeH)
	assert.Equal(t, 16.0, ev.FastestConsumption)
}

func TestRecordForwardsSamples(t *testing.T) {
	s := &recordSink{}
	require.NoError(t, Record(s, testResult()))
	assert.Equal(t, 1, s.sweeps)
	assert.Equal(t, 2, s.samples)

	only := &sweepOnly{}
	require.NoError(t, Record(only, testResult()))
	assert.Equal(t, 1, only.n)
}

func TestMultiSink(t *testing.T) {
	failing := &recordSink{err: errors.New("boom")}
	ok := &recordSink{}
	only := &sweepOnly{}
	m := NewMultiSink(failing, ok, only)

	err := Record(m, testResult())
	assert.ErrorContains(t, err, "boom")
	assert.Equal(t, 1, ok.sweeps, "a failing sink must not block the others")
	assert.Equal(t, 1, only.n)
	assert.Equal(t, 2, ok.samples)
}

func TestNewMetricsSink(t *testing.T) {
	s, err := NewMetricsSink(nil)
	require.NoError(t, err)
	assert.IsType(t, NopSink{}, s)

	_, err = NewMetricsSink([]factory.ModuleConfig{{Type: "missing"}})
	assert.Error(t, err)
}
