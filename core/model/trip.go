package model

// Trip describes one point-to-point journey driven at a single constant
// cruising speed.
type Trip struct {
	DistanceKm       float64 `json:"distance_km"`
	ChargingPenaltyH float64 `json:"charging_penalty_h"` // fixed overhead per charging stop
	SoCStart         float64 `json:"soc_start"`          // state of charge at departure [0,1]
	SoCEnd           float64 `json:"soc_end"`            // required state of charge on arrival [0,1]
}

// Validate checks the trip bounds. A zero SoCEnd means no arrival reserve.
func (t Trip) Validate() error {
	if err := RequirePositive("distance_km", t.DistanceKm); err != nil {
		return err
	}
	if err := RequireNonNegative("charging_penalty_h", t.ChargingPenaltyH); err != nil {
		return err
	}
	if err := RequireFraction("soc_start", t.SoCStart); err != nil {
		return err
	}
	return RequireFraction("soc_end", t.SoCEnd)
}
