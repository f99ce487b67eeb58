package model

// SpeedSample is the evaluation of one cruising speed.
type SpeedSample struct {
	SpeedKmh               float64 `json:"speed_kmh"`
	TotalTimeH             float64 `json:"total_time_h"`
	ConsumptionKWhPer100Km float64 `json:"consumption_kwh_per_100km"`
}
