package config

import "github.com/kilianp07/evtrip/core/model"

// VehicleConfig selects a built-in vehicle and optionally overrides any of
// its parameters. Zero values keep the preset value.
type VehicleConfig struct {
	Preset               string  `json:"preset"`
	Name                 string  `json:"name"`
	WeightKg             float64 `json:"weight_kg"`
	FrontalAreaM2        float64 `json:"frontal_area_m2"`
	DrivetrainEfficiency float64 `json:"drivetrain_efficiency"`
	BatteryKWh           float64 `json:"battery_kwh"`
	AuxiliaryPowerW      float64 `json:"auxiliary_power_w"`
	DragCoefficient      float64 `json:"drag_coefficient"`
	RollingResistance    float64 `json:"rolling_resistance"`
	ChargingPowerKW      float64 `json:"charging_power_kw"`
}

// SetDefaults selects the default preset when none is given.
func (c *VehicleConfig) SetDefaults() {
	if c.Preset == "" {
		c.Preset = model.DefaultPreset
	}
}

// Resolve merges the overrides onto the preset and validates the result.
func (c VehicleConfig) Resolve() (model.Vehicle, error) {
	v, err := model.Preset(c.Preset)
	if err != nil {
		return model.Vehicle{}, err
	}
	override := func(dst *float64, val float64) {
		if val != 0 {
			*dst = val
		}
	}
	if c.Name != "" {
		v.Name = c.Name
	}
	override(&v.WeightKg, c.WeightKg)
	override(&v.FrontalAreaM2, c.FrontalAreaM2)
	override(&v.DrivetrainEfficiency, c.DrivetrainEfficiency)
	override(&v.BatteryKWh, c.BatteryKWh)
	override(&v.AuxiliaryPowerW, c.AuxiliaryPowerW)
	override(&v.DragCoefficient, c.DragCoefficient)
	override(&v.RollingResistance, c.RollingResistance)
	override(&v.ChargingPowerKW, c.ChargingPowerKW)
	if err := v.Validate(); err != nil {
		return model.Vehicle{}, err
	}
	return v, nil
}
