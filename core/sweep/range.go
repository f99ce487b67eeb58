package sweep

import (
	"fmt"

	"github.com/kilianp07/evtrip/core/model"
)

// MaxSupportedKmh bounds the upper end of a sweep.
const MaxSupportedKmh = 500

// Range is a closed interval of integer speeds in km/h.
type Range struct {
	MinKmh  int `json:"min_kmh"`
	MaxKmh  int `json:"max_kmh"`
	StepKmh int `json:"step_kmh"`
}

// DefaultRange covers 45 to 210 km/h in 1 km/h steps.
func DefaultRange() Range {
	return Range{MinKmh: 45, MaxKmh: 210, StepKmh: 1}
}

func (r Range) step() int {
	if r.StepKmh <= 0 {
		return 1
	}
	return r.StepKmh
}

// Validate rejects ranges that would include non-positive speeds.
func (r Range) Validate() error {
	if r.MinKmh <= 0 {
		return &model.InvalidInputError{Field: "min_kmh", Value: float64(r.MinKmh), Reason: "must be positive"}
	}
	if r.MaxKmh < r.MinKmh {
		return &model.InvalidInputError{Field: "max_kmh", Value: float64(r.MaxKmh), Reason: fmt.Sprintf("must be >= min_kmh %d", r.MinKmh)}
	}
	if r.MaxKmh > MaxSupportedKmh {
		return &model.InvalidInputError{Field: "max_kmh", Value: float64(r.MaxKmh), Reason: fmt.Sprintf("must be <= %d", MaxSupportedKmh)}
	}
	if r.StepKmh < 0 {
		return &model.InvalidInputError{Field: "step_kmh", Value: float64(r.StepKmh), Reason: "must not be negative"}
	}
	if r.StepKmh > MaxSupportedKmh {
		return &model.InvalidInputError{Field: "step_kmh", Value: float64(r.StepKmh), Reason: fmt.Sprintf("must be <= %d", MaxSupportedKmh)}
	}
	return nil
}

// Speeds lists the speeds of the range in ascending order. An inverted
// range yields nothing.
func (r Range) Speeds() []float64 {
	if r.MaxKmh < r.MinKmh {
		return nil
	}
	step := r.step()
	out := make([]float64, 0, (r.MaxKmh-r.MinKmh)/step+1)
	for s := r.MinKmh; ; s += step {
		out = append(out, float64(s))
		// stop before s+step could overflow
		if r.MaxKmh-s < step {
			break
		}
	}
	return out
}
