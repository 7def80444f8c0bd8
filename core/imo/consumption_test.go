package imo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorundf/cetus/core/model"
)

func ferryVoyage() model.VoyageProfile {
	return model.VoyageProfile{
		TimeAnchored: 10,
		TimeAtBerth:  10,
		LegsManoeuvring: []model.VoyageLeg{
			{Distance: 10, Speed: 10, Draft: 6},
		},
		LegsAtSea: []model.VoyageLeg{
			{Distance: 30, Speed: 10, Draft: 6},
			{Distance: 30, Speed: 10, Draft: 6},
		},
	}
}

// Pinned reference scenario: 39.8 m ferry-pax, 4x330 kW MSD after-2000 on
// MDO, 686 GT. Values were computed once with the reference tables and
// are held to a tight relative tolerance.
func TestEstimateFuelConsumption_PinnedFerryScenario(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	res, err := EstimateFuelConsumption(vessel, ferryVoyage())
	require.NoError(t, err)

	const eps = 1e-6
	assert.InEpsilon(t, 2195.317687143974, res.TotalKg, eps)

	assert.InEpsilon(t, 332.5, res.AtBerth.SubtotalKg, eps)
	assert.InEpsilon(t, 332.5, res.Anchored.SubtotalKg, eps)
	assert.InEpsilon(t, 220.11681244913913, res.Manoeuvring.SubtotalKg, eps)
	assert.InEpsilon(t, 1310.200874694835, res.AtSea.SubtotalKg, eps)

	assert.InEpsilon(t, 185.11681244913913, res.Manoeuvring.PropulsionEnginesKg, eps)
	assert.InEpsilon(t, 35.0, res.Manoeuvring.AuxiliaryEnginesKg, eps)
	assert.InEpsilon(t, 1110.700874694835, res.AtSea.PropulsionEnginesKg, eps)
	assert.InEpsilon(t, 199.5, res.AtSea.AuxiliaryEnginesKg, eps)

	require.NotNil(t, res.Manoeuvring.AverageFuelConsumptionLPerNm)
	assert.InEpsilon(t, 24.732226117880803, *res.Manoeuvring.AverageFuelConsumptionLPerNm, eps)
	require.NotNil(t, res.AtSea.AverageFuelConsumptionLPerNm)
	assert.InEpsilon(t, 24.535596904397657, *res.AtSea.AverageFuelConsumptionLPerNm, eps)

	// Ferry-pax below 1000 GT carries no modeled boilers.
	require.NotNil(t, res.AtBerth.SteamBoilersKg)
	assert.Zero(t, *res.AtBerth.SteamBoilersKg)
}

func TestEstimateFuelConsumption_ZeroVoyage(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	res, err := EstimateFuelConsumption(vessel, model.VoyageProfile{})
	require.NoError(t, err)

	assert.Zero(t, res.TotalKg)
	for _, b := range []model.FuelConsumptionBreakdown{res.AtBerth, res.Anchored, res.Manoeuvring, res.AtSea} {
		assert.Zero(t, b.SubtotalKg)
		assert.Nil(t, b.AverageFuelConsumptionLPerNm, "efficiency is undefined without distance")
	}
}

func TestEstimateFuelConsumption_AtSeaOnly(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	voyage := model.VoyageProfile{
		LegsAtSea: []model.VoyageLeg{{Distance: 30, Speed: 10, Draft: 6}},
	}
	res, err := EstimateFuelConsumption(vessel, voyage)
	require.NoError(t, err)

	assert.Zero(t, res.AtBerth.SubtotalKg)
	assert.Zero(t, res.Anchored.SubtotalKg)
	assert.Zero(t, res.Manoeuvring.SubtotalKg)
	assert.Equal(t, res.AtSea.SubtotalKg, res.TotalKg)
	assert.Greater(t, res.TotalKg, 0.0)
}

func TestEstimateFuelConsumption_MonotonicInDistance(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	short := model.VoyageProfile{
		LegsAtSea: []model.VoyageLeg{{Distance: 30, Speed: 10, Draft: 6}},
	}
	long := model.VoyageProfile{
		LegsAtSea: []model.VoyageLeg{{Distance: 45, Speed: 10, Draft: 6}},
	}
	shortRes, err := EstimateFuelConsumption(vessel, short)
	require.NoError(t, err)
	longRes, err := EstimateFuelConsumption(vessel, long)
	require.NoError(t, err)
	assert.Greater(t, longRes.AtSea.SubtotalKg, shortRes.AtSea.SubtotalKg)
}

func TestEstimateFuelConsumption_WithoutSteamBoilers(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	res, err := EstimateFuelConsumption(vessel, ferryVoyage(), WithoutSteamBoilers())
	require.NoError(t, err)

	assert.Nil(t, res.AtBerth.SteamBoilersKg)
	assert.Nil(t, res.AtSea.SteamBoilersKg)
	assert.Greater(t, res.TotalKg, 0.0)
}

func TestEstimateFuelConsumption_BoilersContributeForTankers(t *testing.T) {
	size := 50_000.0
	tanker, err := model.NewVesselData(model.VesselData{
		Length:                    200,
		Beam:                      30,
		DesignSpeed:               15,
		DesignDraft:               12,
		NumberOfPropulsionEngines: 1,
		PropulsionEnginePower:     8000,
		PropulsionEngineType:      model.SSD,
		PropulsionEngineAge:       model.After2000,
		PropulsionEngineFuelType:  model.HFO,
		Type:                      model.OilTanker,
		Size:                      &size,
	})
	require.NoError(t, err)

	voyage := model.VoyageProfile{TimeAtBerth: 24}
	withBoilers, err := EstimateFuelConsumption(tanker, voyage)
	require.NoError(t, err)
	withoutBoilers, err := EstimateFuelConsumption(tanker, voyage, WithoutSteamBoilers())
	require.NoError(t, err)

	require.NotNil(t, withBoilers.AtBerth.SteamBoilersKg)
	assert.Greater(t, *withBoilers.AtBerth.SteamBoilersKg, 0.0)
	assert.Greater(t, withBoilers.TotalKg, withoutBoilers.TotalKg)
}

func TestEstimateFuelConsumption_OverloadedLegSurfacesDomainError(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	voyage := model.VoyageProfile{
		LegsAtSea: []model.VoyageLeg{{Distance: 10, Speed: 27, Draft: 2.84}},
	}
	_, err := EstimateFuelConsumption(vessel, voyage)
	var derr *model.DomainComputationError
	require.ErrorAs(t, err, &derr)
}

func TestEstimateFuelConsumption_ReusableInputs(t *testing.T) {
	vessel := vesselWithPower(t, 4, 330)
	voyage := ferryVoyage()
	first, err := EstimateFuelConsumption(vessel, voyage)
	require.NoError(t, err)
	second, err := EstimateFuelConsumption(vessel, voyage)
	require.NoError(t, err)
	assert.Equal(t, first.TotalKg, second.TotalKg, "estimation must be deterministic")
}
