package physics

import (
	"fmt"
	"math"

	"github.com/kilianp07/evtrip/core/model"
)

const (
	// AirDensity at sea level in kg/m³.
	AirDensity = 1.204
	// Gravity is the gravitational acceleration in m/s².
	Gravity = 9.81

	referenceDistanceM = 100_000
	secondsPerHour     = 3600
)

// KmhToMs converts km/h to m/s.
func KmhToMs(kmh float64) float64 { return kmh / 3.6 }

// Consumption returns the constant speed energy consumption of v in kWh per
// 100 km at speedMs (m/s). The result is not rounded.
func Consumption(v model.Vehicle, speedMs float64) (float64, error) {
	if err := v.Validate(); err != nil {
		return 0, err
	}
	if err := model.RequirePositive("speed_ms", speedMs); err != nil {
		return 0, err
	}
	return consumption(v, speedMs), nil
}

// consumption assumes validated inputs.
func consumption(v model.Vehicle, speedMs float64) float64 {
	rollingPower := v.RollingResistance * Gravity * v.WeightKg * speedMs
	dragForce := 0.5 * AirDensity * speedMs * speedMs * v.DragCoefficient * v.FrontalAreaM2
	aeroPower := dragForce * speedMs

	durationH := (referenceDistanceM / speedMs) / secondsPerHour
	drivingWh := (rollingPower + aeroPower) * durationH / v.DrivetrainEfficiency
	totalWh := drivingWh + v.AuxiliaryPowerW*durationH
	return mustFinite("consumption", totalWh/1000)
}

// mustFinite panics when validated arithmetic still produced NaN or Inf.
// Reaching it means a caller bypassed validation.
func mustFinite(what string, x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		panic(fmt.Sprintf("physics: degenerate %s result %v", what, x))
	}
	return x
}
