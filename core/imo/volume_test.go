package imo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorundf/cetus/core/model"
)

func TestFuelVolumeMassRoundTrip(t *testing.T) {
	for _, fuel := range model.FuelTypes {
		for _, mass := range []float64{0, 1, 123.456, 50_000} {
			volume, err := CalculateFuelVolume(mass, fuel)
			require.NoError(t, err, "%s", fuel)
			back, err := CalculateFuelMass(volume, fuel)
			require.NoError(t, err, "%s", fuel)
			assert.InDelta(t, mass, back, 1e-9, "%s mass %g", fuel, mass)
		}
	}
}

func TestCalculateFuelVolume_KnownDensity(t *testing.T) {
	// 890 kg of MDO at 890 kg/m3 is exactly one cubic meter.
	liters, err := CalculateFuelVolume(890, model.MDO)
	require.NoError(t, err)
	assert.InDelta(t, 1000, liters, 1e-9)

	// LNG is far lighter than the oils.
	lng, err := CalculateFuelVolume(890, model.LNG)
	require.NoError(t, err)
	assert.Greater(t, lng, liters)
}

func TestKnotsConversionRoundTrip(t *testing.T) {
	assert.InDelta(t, 10.0, MsToKnots(KnotsToMs(10)), 1e-12)
	assert.InDelta(t, 5.144444, KnotsToMs(10), 1e-5)
}
