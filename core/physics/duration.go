package physics

import (
	"math"

	"github.com/kilianp07/evtrip/core/model"
)

// TripBreakdown exposes the intermediate values of a trip duration
// evaluation. Times are in hours, energies in kWh.
type TripBreakdown struct {
	SpeedKmh               float64 `json:"speed_kmh"`
	ConsumptionKWhPer100Km float64 `json:"consumption_kwh_per_100km"`
	DrivingTimeH           float64 `json:"driving_time_h"`
	EnergyNeededKWh        float64 `json:"energy_needed_kwh"`
	EnergyToChargeKWh      float64 `json:"energy_to_charge_kwh"`
	ChargingStops          int     `json:"charging_stops"`
	PenaltyH               float64 `json:"penalty_h"`
	ChargingTimeH          float64 `json:"charging_time_h"`
	TotalH                 float64 `json:"total_h"`
}

// TripDuration returns the total trip time in hours (driving plus charging)
// when cruising at speedKmh.
func TripDuration(v model.Vehicle, t model.Trip, speedKmh float64) (float64, error) {
	b, err := Breakdown(v, t, speedKmh)
	if err != nil {
		return 0, err
	}
	return b.TotalH, nil
}

// Breakdown evaluates the trip at speedKmh and returns every intermediate
// value. Each stop replenishes at most one full battery, so the number of
// stops is the energy deficit over the capacity rounded up, and every stop
// costs the trip's fixed charging penalty.
func Breakdown(v model.Vehicle, t model.Trip, speedKmh float64) (TripBreakdown, error) {
	if err := v.Validate(); err != nil {
		return TripBreakdown{}, err
	}
	if err := t.Validate(); err != nil {
		return TripBreakdown{}, err
	}
	if err := model.RequirePositive("speed_kmh", speedKmh); err != nil {
		return TripBreakdown{}, err
	}
	return breakdown(v, t, speedKmh), nil
}

// breakdown assumes validated inputs.
func breakdown(v model.Vehicle, t model.Trip, speedKmh float64) TripBreakdown {
	b := TripBreakdown{SpeedKmh: speedKmh}
	b.DrivingTimeH = t.DistanceKm / speedKmh
	b.ConsumptionKWhPer100Km = consumption(v, KmhToMs(speedKmh))
	b.EnergyNeededKWh = b.ConsumptionKWhPer100Km * t.DistanceKm / 100

	available := t.SoCStart * v.BatteryKWh
	reserve := t.SoCEnd * v.BatteryKWh
	b.EnergyToChargeKWh = math.Max(0, b.EnergyNeededKWh+reserve-available)

	if b.EnergyToChargeKWh > 0 {
		b.ChargingStops = int(math.Ceil(b.EnergyToChargeKWh / v.BatteryKWh))
		b.PenaltyH = t.ChargingPenaltyH * float64(b.ChargingStops)
		b.ChargingTimeH = b.EnergyToChargeKWh/v.ChargingPowerKW + b.PenaltyH
	}
	b.TotalH = mustFinite("trip duration", b.DrivingTimeH+b.ChargingTimeH)
	return b
}

// Sample evaluates a single speed into a SpeedSample.
func Sample(v model.Vehicle, t model.Trip, speedKmh float64) (model.SpeedSample, error) {
	b, err := Breakdown(v, t, speedKmh)
	if err != nil {
		return model.SpeedSample{}, err
	}
	return b.Sample(), nil
}

// Sample projects the breakdown onto the presentation triple.
func (b TripBreakdown) Sample() model.SpeedSample {
	return model.SpeedSample{
		SpeedKmh:               b.SpeedKmh,
		TotalTimeH:             b.TotalH,
		ConsumptionKWhPer100Km: b.ConsumptionKWhPer100Km,
	}
}
