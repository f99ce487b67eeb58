package app

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/evtrip/config"
	coremetrics "github.com/kilianp07/evtrip/core/metrics"
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/sweep"
)

type memSink struct {
	events  []coremetrics.SweepEvent
	samples int
	closed  bool
}

func (m *memSink) RecordSweep(ev coremetrics.SweepEvent) error {
	m.events = append(m.events, ev)
	return nil
}

func (m *memSink) RecordSamples(_ coremetrics.SweepEvent, s []model.SpeedSample) error {
	m.samples += len(s)
	return nil
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

func TestServiceSweepRecordsMetrics(t *testing.T) {
	cfg := config.Default()
	sink := &memSink{}
	svc, err := NewWithSink(cfg, sink)
	require.NoError(t, err)

	res, err := svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Len(t, res.Samples, 166)
	require.Len(t, sink.events, 1)
	assert.Equal(t, res.RunID, sink.events[0].RunID)
	assert.Equal(t, "cla250", sink.events[0].Vehicle)
	assert.Equal(t, 166, sink.samples)

	require.NoError(t, svc.Close())
	assert.True(t, sink.closed)
}

func TestServiceSweepScenarioInvalid(t *testing.T) {
	svc, err := NewWithSink(config.Default(), &memSink{})
	require.NoError(t, err)
	sc := svc.Scenario()
	sc.Range = sweep.Range{MinKmh: -5, MaxKmh: 10}
	_, err = svc.SweepScenario(context.Background(), sc)
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestServiceRunWritesCSV(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Format = "csv"
	cfg.Output.Path = filepath.Join(t.TempDir(), "sweep.csv")
	cfg.Sweep.MinKmh, cfg.Sweep.MaxKmh = 100, 110
	svc, err := NewWithSink(cfg, coremetrics.NopSink{})
	require.NoError(t, err)
	require.NoError(t, svc.Run(context.Background()))

	f, err := os.Open(cfg.Output.Path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 12)
	assert.Equal(t, "100", rows[1][0])
}

func TestNewWithMultiSinkClosesAll(t *testing.T) {
	a, b := &memSink{}, &memSink{}
	svc, err := NewWithSink(config.Default(), coremetrics.NewMultiSink(a, b))
	require.NoError(t, err)
	require.NoError(t, svc.Close())
	assert.True(t, a.closed && b.closed)
}
