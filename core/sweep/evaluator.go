package sweep

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/kilianp07/evtrip/core/logger"
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/physics"
)

// Evaluate computes one sample per speed of r, sequentially. Vehicle, trip
// and range are validated before any sample is produced.
func Evaluate(v model.Vehicle, t model.Trip, r Range) ([]model.SpeedSample, error) {
	return NewEvaluator().Evaluate(context.Background(), v, t, r)
}

// Evaluator runs sweeps, optionally spreading the speeds over several
// goroutines.
type Evaluator struct {
	workers int
	log     logger.Logger
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithWorkers sets the number of goroutines used per sweep. Values below 2
// evaluate sequentially.
func WithWorkers(n int) Option {
	return func(e *Evaluator) { e.workers = n }
}

// WithLogger attaches a logger for debug output.
func WithLogger(l logger.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// NewEvaluator returns a sequential evaluator unless configured otherwise.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{workers: 1, log: logger.NopLogger{}}
	for _, o := range opts {
		o(e)
	}
	return e
}

func validate(v model.Vehicle, t model.Trip, r Range) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("vehicle: %w", err)
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("trip: %w", err)
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("speed range: %w", err)
	}
	return nil
}

// Evaluate validates its inputs, then evaluates every speed of r. Samples are
// written to their index so the output order never depends on scheduling.
func (e *Evaluator) Evaluate(ctx context.Context, v model.Vehicle, t model.Trip, r Range) ([]model.SpeedSample, error) {
	if err := validate(v, t, r); err != nil {
		return nil, err
	}
	speeds := r.Speeds()
	samples := make([]model.SpeedSample, len(speeds))

	if e.workers < 2 {
		for i, s := range speeds {
			smp, err := physics.Sample(v, t, s)
			if err != nil {
				return nil, err
			}
			samples[i] = smp
		}
		e.log.Debugw("sweep evaluated", map[string]any{"vehicle": v.Label(), "samples": len(samples), "workers": 1})
		return samples, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, s := range speeds {
		i, s := i, s
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			smp, err := physics.Sample(v, t, s)
			if err != nil {
				return err
			}
			samples[i] = smp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	e.log.Debugw("sweep evaluated", map[string]any{"vehicle": v.Label(), "samples": len(samples), "workers": e.workers})
	return samples, nil
}
