package model

// Vehicle holds the physical parameters of an electric vehicle used by the
// consumption and trip duration models. Values are treated as immutable once
// a scenario is built.
type Vehicle struct {
	Name                 string  `json:"name,omitempty"`
	WeightKg             float64 `json:"weight_kg"`             // empty weight including one driver
	FrontalAreaM2        float64 `json:"frontal_area_m2"`       // frontal area
	DrivetrainEfficiency float64 `json:"drivetrain_efficiency"` // in (0,1]
	BatteryKWh           float64 `json:"battery_kwh"`           // usable battery capacity
	AuxiliaryPowerW      float64 `json:"auxiliary_power_w"`     // constant auxiliary draw
	DragCoefficient      float64 `json:"drag_coefficient"`      // cw
	RollingResistance    float64 `json:"rolling_resistance"`    // cr
	ChargingPowerKW      float64 `json:"charging_power_kw"`     // average DC charging power
}

// Validate checks that every physical parameter lies in its valid domain.
// All fields must be positive and the drivetrain efficiency may not exceed 1.
func (v Vehicle) Validate() error {
	checks := []struct {
		field string
		value float64
	}{
		{"weight_kg", v.WeightKg},
		{"frontal_area_m2", v.FrontalAreaM2},
		{"drivetrain_efficiency", v.DrivetrainEfficiency},
		{"battery_kwh", v.BatteryKWh},
		{"auxiliary_power_w", v.AuxiliaryPowerW},
		{"drag_coefficient", v.DragCoefficient},
		{"rolling_resistance", v.RollingResistance},
		{"charging_power_kw", v.ChargingPowerKW},
	}
	for _, c := range checks {
		if err := RequirePositive(c.field, c.value); err != nil {
			return err
		}
	}
	if v.DrivetrainEfficiency > 1 {
		return invalid("drivetrain_efficiency", v.DrivetrainEfficiency, "must not exceed 1")
	}
	return nil
}

// Label returns the vehicle name or a generic placeholder.
func (v Vehicle) Label() string {
	if v.Name == "" {
		return "vehicle"
	}
	return v.Name
}
