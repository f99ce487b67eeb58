// Package physics implements the energy consumption and trip duration models
// of an electric vehicle cruising at constant speed. All functions are pure
// and safe for concurrent use.
package physics
