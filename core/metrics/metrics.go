package metrics

import (
	"errors"
	"time"

	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/sweep"
)

// SweepEvent summarises one completed sweep.
type SweepEvent struct {
	RunID              string        `json:"run_id"`
	Vehicle            string        `json:"vehicle"`
	DistanceKm         float64       `json:"distance_km"`
	Samples            int           `json:"samples"`
	FastestSpeedKmh    float64       `json:"fastest_speed_kmh"`
	FastestTimeH       float64       `json:"fastest_time_h"`
	FastestConsumption float64       `json:"fastest_consumption_kwh_per_100km"`
	Elapsed            time.Duration `json:"elapsed"`
	Time               time.Time     `json:"time"`
}

// EventFromResult builds the event for res.
func EventFromResult(res sweep.Result) SweepEvent {
	return SweepEvent{
		RunID:              res.RunID,
		Vehicle:            res.Vehicle.Label(),
		DistanceKm:         res.Trip.DistanceKm,
		Samples:            len(res.Samples),
		FastestSpeedKmh:    res.Fastest.SpeedKmh,
		FastestTimeH:       res.Fastest.TotalTimeH,
		FastestConsumption: res.Fastest.ConsumptionKWhPer100Km,
		Elapsed:            res.Elapsed,
		Time:               res.GeneratedAt,
	}
}

// MetricsSink records completed sweeps.
type MetricsSink interface {
	RecordSweep(ev SweepEvent) error
}

// SampleRecorder is implemented by sinks able to store every sample of a sweep.
type SampleRecorder interface {
	RecordSamples(ev SweepEvent, samples []model.SpeedSample) error
}

// Record sends res to sink, including the samples when supported. Both
// calls are attempted even if the first fails.
func Record(sink MetricsSink, res sweep.Result) error {
	ev := EventFromResult(res)
	err := sink.RecordSweep(ev)
	if rec, ok := sink.(SampleRecorder); ok {
		err = errors.Join(err, rec.RecordSamples(ev, res.Samples))
	}
	return err
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordSweep(SweepEvent) error                        { return nil }
func (NopSink) RecordSamples(SweepEvent, []model.SpeedSample) error { return nil }
