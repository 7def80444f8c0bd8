package imo

import (
	"gonum.org/v1/gonum/floats"

	"github.com/jorundf/cetus/core/model"
)

// settings collects the estimation options.
type settings struct {
	includeBoilers bool
}

// Option adjusts how an estimate is computed.
type Option func(*settings)

// WithoutSteamBoilers excludes steam boiler consumption from the
// estimate. The boiler figures of the result are then absent.
func WithoutSteamBoilers() Option {
	return func(s *settings) { s.includeBoilers = false }
}

func newSettings(opts []Option) settings {
	s := settings{includeBoilers: true}
	for _, o := range opts {
		o(&s)
	}
	return s
}

// EstimateFuelConsumption estimates the fuel burned over a voyage,
// following the IMO Fourth GHG Study methodology. The function is pure
// and deterministic; vessel and voyage are assumed to have been validated
// at construction and are not re-checked here.
//
// A *model.ReferenceDataError indicates a defect in the reference tables;
// a *model.DomainComputationError indicates a leg demanding more than the
// installed propulsion power.
func EstimateFuelConsumption(vessel model.VesselData, voyage model.VoyageProfile, opts ...Option) (model.FuelConsumptionResult, error) {
	s := newSettings(opts)

	atBerth, err := stationaryFuel(vessel, ModeAtBerth, voyage.TimeAtBerth, s)
	if err != nil {
		return model.FuelConsumptionResult{}, err
	}
	anchored, err := stationaryFuel(vessel, ModeAnchored, voyage.TimeAnchored, s)
	if err != nil {
		return model.FuelConsumptionResult{}, err
	}
	manoeuvring, err := underwayFuel(vessel, ModeManoeuvring, voyage.LegsManoeuvring, s)
	if err != nil {
		return model.FuelConsumptionResult{}, err
	}
	atSea, err := underwayFuel(vessel, ModeAtSea, voyage.LegsAtSea, s)
	if err != nil {
		return model.FuelConsumptionResult{}, err
	}

	return model.FuelConsumptionResult{
		TotalKg:     atBerth.SubtotalKg + anchored.SubtotalKg + manoeuvring.SubtotalKg + atSea.SubtotalKg,
		AtBerth:     atBerth,
		Anchored:    anchored,
		Manoeuvring: manoeuvring,
		AtSea:       atSea,
	}, nil
}

// auxiliarySFC gives the specific fuel consumption of the auxiliary
// gensets. Auxiliary engines are modeled as medium speed diesels of the
// vessel's engine age running on the vessel's fuel, at their rated point.
func auxiliarySFC(v model.VesselData) (float64, error) {
	return baseSFC(model.MSD, v.PropulsionEngineAge, v.PropulsionEngineFuelType)
}

// stationaryFuel covers the at-berth and anchored modes, where
// consumption depends on time only.
func stationaryFuel(v model.VesselData, m Mode, hours float64, s settings) (model.FuelConsumptionBreakdown, error) {
	auxPower, boilerPower, err := auxiliaryPower(v, m)
	if err != nil {
		return model.FuelConsumptionBreakdown{}, err
	}
	auxSFC, err := auxiliarySFC(v)
	if err != nil {
		return model.FuelConsumptionBreakdown{}, err
	}

	auxKg := auxPower * hours * auxSFC / 1000
	out := model.FuelConsumptionBreakdown{
		AuxiliaryEnginesKg: auxKg,
		SubtotalKg:         auxKg,
	}
	if s.includeBoilers {
		bSFC, err := boilerSFCFor(v.PropulsionEngineFuelType)
		if err != nil {
			return model.FuelConsumptionBreakdown{}, err
		}
		boilerKg := boilerPower * hours * bSFC / 1000
		out.SteamBoilersKg = &boilerKg
		out.SubtotalKg += boilerKg
	}
	return out, nil
}

// underwayFuel covers the manoeuvring and at-sea modes, summing the legs
// of the mode. Each leg contributes propulsion fuel at the leg's load
// fraction plus auxiliary (and boiler) fuel over the leg duration.
func underwayFuel(v model.VesselData, m Mode, legs []model.VoyageLeg, s settings) (model.FuelConsumptionBreakdown, error) {
	auxPower, boilerPower, err := auxiliaryPower(v, m)
	if err != nil {
		return model.FuelConsumptionBreakdown{}, err
	}
	auxSFC, err := auxiliarySFC(v)
	if err != nil {
		return model.FuelConsumptionBreakdown{}, err
	}
	propBase, err := baseSFC(v.PropulsionEngineType, v.PropulsionEngineAge, v.PropulsionEngineFuelType)
	if err != nil {
		return model.FuelConsumptionBreakdown{}, err
	}
	var bSFC float64
	if s.includeBoilers {
		if bSFC, err = boilerSFCFor(v.PropulsionEngineFuelType); err != nil {
			return model.FuelConsumptionBreakdown{}, err
		}
	}

	propKg := make([]float64, 0, len(legs))
	auxKg := make([]float64, 0, len(legs))
	boilerKg := make([]float64, 0, len(legs))
	distances := make([]float64, 0, len(legs))
	for _, leg := range legs {
		hours := leg.DurationHours()
		if hours == 0 {
			continue
		}
		power, load, err := propulsionPower(v, leg)
		if err != nil {
			return model.FuelConsumptionBreakdown{}, err
		}
		propKg = append(propKg, power*hours*sfcAtLoad(propBase, load)/1000)
		auxKg = append(auxKg, auxPower*hours*auxSFC/1000)
		boilerKg = append(boilerKg, boilerPower*hours*bSFC/1000)
		distances = append(distances, leg.Distance)
	}

	out := model.FuelConsumptionBreakdown{
		PropulsionEnginesKg: floats.Sum(propKg),
		AuxiliaryEnginesKg:  floats.Sum(auxKg),
		DistanceNm:          floats.Sum(distances),
	}
	out.SubtotalKg = out.PropulsionEnginesKg + out.AuxiliaryEnginesKg
	if s.includeBoilers {
		boilers := floats.Sum(boilerKg)
		out.SteamBoilersKg = &boilers
		out.SubtotalKg += boilers
	}
	if out.DistanceNm > 0 {
		liters, err := CalculateFuelVolume(out.SubtotalKg, v.PropulsionEngineFuelType)
		if err != nil {
			return model.FuelConsumptionBreakdown{}, err
		}
		avg := liters / out.DistanceNm
		out.AverageFuelConsumptionLPerNm = &avg
	}
	return out, nil
}
