package metrics

import (
	"errors"

	"github.com/kilianp07/evtrip/core/model"
)

// MultiSink fans out to several sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordSweep forwards ev to every sink. A failing sink does not prevent the
// others from recording; all errors are joined.
func (m *MultiSink) RecordSweep(ev SweepEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		if err := s.RecordSweep(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RecordSamples forwards samples to the sinks that support them.
func (m *MultiSink) RecordSamples(ev SweepEvent, samples []model.SpeedSample) error {
	var errs []error
	for _, s := range m.Sinks {
		if rec, ok := s.(SampleRecorder); ok {
			if err := rec.RecordSamples(ev, samples); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
