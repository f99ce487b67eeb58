package config

import (
	"github.com/kilianp07/evtrip/core/model"
	"github.com/kilianp07/evtrip/core/sweep"
)

// TripConfig describes the journey. Pointer fields distinguish an explicit
// zero from an absent value.
type TripConfig struct {
	DistanceKm       float64  `json:"distance_km"`
	ChargingPenaltyH *float64 `json:"charging_penalty_h"`
	SoCStart         *float64 `json:"soc_start"`
	SoCEnd           *float64 `json:"soc_end"`
}

// SetDefaults fills absent values from model.DefaultTrip.
func (c *TripConfig) SetDefaults() {
	d := model.DefaultTrip()
	if c.DistanceKm == 0 {
		c.DistanceKm = d.DistanceKm
	}
	if c.ChargingPenaltyH == nil {
		c.ChargingPenaltyH = &d.ChargingPenaltyH
	}
	if c.SoCStart == nil {
		c.SoCStart = &d.SoCStart
	}
	if c.SoCEnd == nil {
		c.SoCEnd = &d.SoCEnd
	}
}

// Model converts the section into a model.Trip. Absent values are zero.
func (c TripConfig) Model() model.Trip {
	t := model.Trip{DistanceKm: c.DistanceKm}
	if c.ChargingPenaltyH != nil {
		t.ChargingPenaltyH = *c.ChargingPenaltyH
	}
	if c.SoCStart != nil {
		t.SoCStart = *c.SoCStart
	}
	if c.SoCEnd != nil {
		t.SoCEnd = *c.SoCEnd
	}
	return t
}

// SweepConfig defines the speed range and the worker count.
type SweepConfig struct {
	MinKmh  int `json:"min_kmh"`
	MaxKmh  int `json:"max_kmh"`
	StepKmh int `json:"step_kmh"`
	Workers int `json:"workers"`
}

// SetDefaults applies the default 45-210 km/h range, sequentially evaluated.
func (c *SweepConfig) SetDefaults() {
	d := sweep.DefaultRange()
	if c.MinKmh == 0 {
		c.MinKmh = d.MinKmh
	}
	if c.MaxKmh == 0 {
		c.MaxKmh = d.MaxKmh
	}
	if c.StepKmh == 0 {
		c.StepKmh = d.StepKmh
	}
	if c.Workers == 0 {
		c.Workers = 1
	}
}

// Range returns the configured speed range.
func (c SweepConfig) Range() sweep.Range {
	return sweep.Range{MinKmh: c.MinKmh, MaxKmh: c.MaxKmh, StepKmh: c.StepKmh}
}
