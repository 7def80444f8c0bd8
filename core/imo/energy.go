package imo

import (
	"gonum.org/v1/gonum/floats"

	"github.com/jorundf/cetus/core/model"
)

// EstimateEnergyConsumption mirrors EstimateFuelConsumption in kWh of
// delivered energy: propulsion energy at the demanded shaft power,
// auxiliary electrical energy, and boiler heat output. It shares the
// tables and power model of the fuel estimate.
func EstimateEnergyConsumption(vessel model.VesselData, voyage model.VoyageProfile, opts ...Option) (model.EnergyConsumptionResult, error) {
	s := newSettings(opts)

	atBerth, err := stationaryEnergy(vessel, ModeAtBerth, voyage.TimeAtBerth, s)
	if err != nil {
		return model.EnergyConsumptionResult{}, err
	}
	anchored, err := stationaryEnergy(vessel, ModeAnchored, voyage.TimeAnchored, s)
	if err != nil {
		return model.EnergyConsumptionResult{}, err
	}
	manoeuvring, err := underwayEnergy(vessel, ModeManoeuvring, voyage.LegsManoeuvring, s)
	if err != nil {
		return model.EnergyConsumptionResult{}, err
	}
	atSea, err := underwayEnergy(vessel, ModeAtSea, voyage.LegsAtSea, s)
	if err != nil {
		return model.EnergyConsumptionResult{}, err
	}

	return model.EnergyConsumptionResult{
		TotalKWh:    atBerth.SubtotalKWh + anchored.SubtotalKWh + manoeuvring.SubtotalKWh + atSea.SubtotalKWh,
		AtBerth:     atBerth,
		Anchored:    anchored,
		Manoeuvring: manoeuvring,
		AtSea:       atSea,
	}, nil
}

func stationaryEnergy(v model.VesselData, m Mode, hours float64, s settings) (model.EnergyConsumptionBreakdown, error) {
	auxPower, boilerPower, err := auxiliaryPower(v, m)
	if err != nil {
		return model.EnergyConsumptionBreakdown{}, err
	}
	out := model.EnergyConsumptionBreakdown{
		AuxiliaryEnginesKWh: auxPower * hours,
	}
	out.SubtotalKWh = out.AuxiliaryEnginesKWh
	if s.includeBoilers {
		boilers := boilerPower * hours
		out.SteamBoilersKWh = &boilers
		out.SubtotalKWh += boilers
	}
	return out, nil
}

func underwayEnergy(v model.VesselData, m Mode, legs []model.VoyageLeg, s settings) (model.EnergyConsumptionBreakdown, error) {
	auxPower, boilerPower, err := auxiliaryPower(v, m)
	if err != nil {
		return model.EnergyConsumptionBreakdown{}, err
	}

	propKWh := make([]float64, 0, len(legs))
	auxKWh := make([]float64, 0, len(legs))
	boilerKWh := make([]float64, 0, len(legs))
	distances := make([]float64, 0, len(legs))
	for _, leg := range legs {
		hours := leg.DurationHours()
		if hours == 0 {
			continue
		}
		power, _, err := propulsionPower(v, leg)
		if err != nil {
			return model.EnergyConsumptionBreakdown{}, err
		}
		propKWh = append(propKWh, power*hours)
		auxKWh = append(auxKWh, auxPower*hours)
		boilerKWh = append(boilerKWh, boilerPower*hours)
		distances = append(distances, leg.Distance)
	}

	out := model.EnergyConsumptionBreakdown{
		PropulsionEnginesKWh: floats.Sum(propKWh),
		AuxiliaryEnginesKWh:  floats.Sum(auxKWh),
		DistanceNm:           floats.Sum(distances),
	}
	out.SubtotalKWh = out.PropulsionEnginesKWh + out.AuxiliaryEnginesKWh
	if s.includeBoilers {
		boilers := floats.Sum(boilerKWh)
		out.SteamBoilersKWh = &boilers
		out.SubtotalKWh += boilers
	}
	return out, nil
}

// PeakPowerDemand returns the highest combined power demand in kW over
// the voyage: propulsion plus auxiliaries for each leg, auxiliaries plus
// boiler for the stationary modes. Energy system sizing uses it to pick
// the number of power units.
func PeakPowerDemand(vessel model.VesselData, voyage model.VoyageProfile) (float64, error) {
	peak := 0.0
	for _, m := range []Mode{ModeAtBerth, ModeAnchored} {
		aux, boiler, err := auxiliaryPower(vessel, m)
		if err != nil {
			return 0, err
		}
		if p := aux + boiler; p > peak {
			peak = p
		}
	}
	underway := [...]struct {
		mode Mode
		legs []model.VoyageLeg
	}{
		{ModeManoeuvring, voyage.LegsManoeuvring},
		{ModeAtSea, voyage.LegsAtSea},
	}
	for _, u := range underway {
		aux, boiler, err := auxiliaryPower(vessel, u.mode)
		if err != nil {
			return 0, err
		}
		for _, leg := range u.legs {
			if leg.DurationHours() == 0 {
				continue
			}
			power, _, err := propulsionPower(vessel, leg)
			if err != nil {
				return 0, err
			}
			if p := power + aux + boiler; p > peak {
				peak = p
			}
		}
	}
	return peak, nil
}
