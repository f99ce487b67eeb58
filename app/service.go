package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kilianp07/evtrip/config"
	coremetrics "github.com/kilianp07/evtrip/core/metrics"
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/sweep"
	"github.com/kilianp07/evtrip/infra/logger"
	"github.com/kilianp07/evtrip/pkg/export"

	// register built-in metrics sinks
	_ "github.com/kilianp07/evtrip/infra/metrics"
)

// Scenario is a fully resolved set of sweep inputs.
type Scenario struct {
	Vehicle model.Vehicle
	Trip    model.Trip
	Range   sweep.Range
}

// Service wires the evaluator, the metrics sinks and the exporters around a
// configured scenario.
type Service struct {
	cfg       *config.Config
	scenario  Scenario
	evaluator *sweep.Evaluator
	sink      coremetrics.MetricsSink
	log       logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	return NewWithSink(cfg, sink)
}

// NewWithSink creates a Service recording to the given sink.
func NewWithSink(cfg *config.Config, sink coremetrics.MetricsSink) (*Service, error) {
	v, err := cfg.Vehicle.Resolve()
	if err != nil {
		return nil, fmt.Errorf("vehicle: %w", err)
	}
	log := logger.New("service")
	return &Service{
		cfg:       cfg,
		scenario:  Scenario{Vehicle: v, Trip: cfg.Trip.Model(), Range: cfg.Sweep.Range()},
		evaluator: sweep.NewEvaluator(sweep.WithWorkers(cfg.Sweep.Workers), sweep.WithLogger(logger.New("sweep"))),
		sink:      sink,
		log:       log,
	}, nil
}

// Scenario returns the configured scenario.
func (s *Service) Scenario() Scenario { return s.scenario }

// Sweep evaluates the configured scenario.
func (s *Service) Sweep(ctx context.Context) (sweep.Result, error) {
	return s.SweepScenario(ctx, s.scenario)
}

// SweepScenario evaluates sc and records the result. Metrics failures are
// logged but do not fail the sweep.
func (s *Service) SweepScenario(ctx context.Context, sc Scenario) (sweep.Result, error) {
	res, err := s.evaluator.Run(ctx, sc.Vehicle, sc.Trip, sc.Range)
	if err != nil {
		return sweep.Result{}, err
	}
	s.log.Infof("sweep %s: %d samples for %s over %g km, fastest %g km/h in %.2f h",
		res.RunID, len(res.Samples), res.Vehicle.Label(), res.Trip.DistanceKm, res.Fastest.SpeedKmh, res.Fastest.TotalTimeH)
	if err := coremetrics.Record(s.sink, res); err != nil {
		s.log.Warnf("record sweep %s: %v", res.RunID, err)
	}
	return res, nil
}

// Run performs one sweep and writes it to the configured output.
func (s *Service) Run(ctx context.Context) error {
	res, err := s.Sweep(ctx)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(s.cfg.Output.Format)
	if err != nil {
		return err
	}
	if s.cfg.Output.Path == "-" {
		return export.Write(os.Stdout, format, res)
	}
	f, err := os.Create(s.cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(f, format, res); err != nil {
		_ = f.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.log.Infof("wrote %s output to %s", format, s.cfg.Output.Path)
	return nil
}

// Close releases the sinks that hold connections.
func (s *Service) Close() error {
	return closeSink(s.sink)
}

func closeSink(sink coremetrics.MetricsSink) error {
	switch c := sink.(type) {
	case *coremetrics.MultiSink:
		var errs []error
		for _, sub := range c.Sinks {
			errs = append(errs, closeSink(sub))
		}
		return errors.Join(errs...)
	case io.Closer:
		return c.Close()
	case interface{ Close() }:
		c.Close()
	}
	return nil
}
