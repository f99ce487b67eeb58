package model

import (
	"fmt"
	"sort"
)

var presets = map[string]Vehicle{
	"cla250": {
		Name:                 "cla250",
		WeightKg:             2055,
		FrontalAreaM2:        2.28,
		DrivetrainEfficiency: 0.93,
		BatteryKWh:           85,
		AuxiliaryPowerW:      1300,
		DragCoefficient:      0.21,
		RollingResistance:    0.006,
		ChargingPowerKW:      220,
	},
	"zoe": {
		Name:                 "zoe",
		WeightKg:             1577,
		FrontalAreaM2:        2.27,
		DrivetrainEfficiency: 0.85,
		BatteryKWh:           41,
		AuxiliaryPowerW:      1300,
		DragCoefficient:      0.33,
		RollingResistance:    0.012,
		ChargingPowerKW:      22,
	},
}

// DefaultPreset is used when no vehicle is configured.
const DefaultPreset = "cla250"

// Preset returns a copy of the named built-in vehicle.
func Preset(name string) (Vehicle, error) {
	v, ok := presets[name]
	if !ok {
		return Vehicle{}, fmt.Errorf("unknown vehicle preset %q", name)
	}
	return v, nil
}

// PresetNames lists the built-in vehicles in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultTrip is the reference long-distance scenario: 1000 km, full battery
// on departure, 5% reserve on arrival and 12 minutes lost per stop.
func DefaultTrip() Trip {
	return Trip{DistanceKm: 1000, ChargingPenaltyH: 0.2, SoCStart: 1, SoCEnd: 0.05}
}
