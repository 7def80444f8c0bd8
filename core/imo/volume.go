package imo

import "github.com/jorundf/cetus/core/model"

// CalculateFuelVolume converts a fuel mass in kg to liters using the
// density of the given fuel.
func CalculateFuelVolume(massKg float64, fuel model.FuelType) (float64, error) {
	density, err := densityFor(fuel)
	if err != nil {
		return 0, err
	}
	return massKg / density * 1000, nil
}

// CalculateFuelMass converts a fuel volume in liters to kg. It is the
// exact inverse of CalculateFuelVolume up to floating-point rounding.
func CalculateFuelMass(volumeL float64, fuel model.FuelType) (float64, error) {
	density, err := densityFor(fuel)
	if err != nil {
		return 0, err
	}
	return volumeL / 1000 * density, nil
}

// KnotsToMs converts a speed in knots to m/s.
func KnotsToMs(speed float64) float64 { return speed * 1852 / 3600 }

// MsToKnots converts a speed in m/s to knots.
func MsToKnots(speed float64) float64 { return speed * 3600 / 1852 }
