package sweep

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/evtrip/core/model"
)

// Result bundles a sweep with the inputs that produced it.
type Result struct {
	RunID       string              `json:"run_id"`
	Vehicle     model.Vehicle       `json:"vehicle"`
	Trip        model.Trip          `json:"trip"`
	Range       Range               `json:"range"`
	Samples     []model.SpeedSample `json:"samples"`
	Fastest     model.SpeedSample   `json:"fastest"`
	GeneratedAt time.Time           `json:"generated_at"`
	Elapsed     time.Duration       `json:"elapsed"`
}

// ErrEmptySweep is returned by Fastest for an empty sample set.
var ErrEmptySweep = errors.New("empty sweep")

// Fastest returns the sample with the lowest total trip time. On ties the
// lowest speed wins.
func Fastest(samples []model.SpeedSample) (model.SpeedSample, error) {
	if len(samples) == 0 {
		return model.SpeedSample{}, ErrEmptySweep
	}
	times := make([]float64, len(samples))
	for i, s := range samples {
		times[i] = s.TotalTimeH
	}
	return samples[floats.MinIdx(times)], nil
}

// Run evaluates the sweep and wraps it into a Result.
func (e *Evaluator) Run(ctx context.Context, v model.Vehicle, t model.Trip, r Range) (Result, error) {
	start := time.Now()
	samples, err := e.Evaluate(ctx, v, t, r)
	if err != nil {
		return Result{}, err
	}
	fastest, err := Fastest(samples)
	if err != nil {
		return Result{}, err
	}
	return Result{
		RunID:       uuid.NewString(),
		Vehicle:     v,
		Trip:        t,
		Range:       r,
		Samples:     samples,
		Fastest:     fastest,
		GeneratedAt: start.UTC(),
		Elapsed:     time.Since(start),
	}, nil
}
