// Package energysystem sizes alternative energy systems (battery
// electric, hydrogen fuel cell) and the conventional combustion system
// for a vessel and voyage, scaling reference components against the
// energy and power demands estimated by the imo package.
package energysystem

import (
	"math"

	"github.com/jorundf/cetus/core/imo"
	"github.com/jorundf/cetus/core/model"
)

// hydrogenLHVKWhPerKg is the lower heating value of hydrogen.
const hydrogenLHVKWhPerKg = 33.33

// ReferenceValues describes the reference components used for scaling.
// The defaults correspond to a PowerCellution 100 fuel cell, a Corvus
// Orca Energy battery pack and a Hexagon Purus type-4 hydrogen tank.
type ReferenceValues struct {
	FuelCellVolumeM3      float64
	FuelCellWeightKg      float64
	FuelCellPowerKW       float64
	FuelCellEfficiencyPct float64

	BatteryPackVolumeM3            float64
	BatteryPackWeightKg            float64
	BatteryPackCapacityKWh         float64
	BatteryPackDepthOfDischargePct float64

	HydrogenTankVolumeM3   float64
	HydrogenTankCapacityKg float64
	HydrogenTankWeightKg   float64
}

// DefaultReferenceValues returns the reference component catalogue.
func DefaultReferenceValues() ReferenceValues {
	return ReferenceValues{
		FuelCellVolumeM3:      0.730 * 0.9 * 2.2,
		FuelCellWeightKg:      1070,
		FuelCellPowerKW:       185,
		FuelCellEfficiencyPct: 45,

		BatteryPackVolumeM3:            2.241 * 0.865 * 0.738,
		BatteryPackWeightKg:            1628,
		BatteryPackCapacityKWh:         124,
		BatteryPackDepthOfDischargePct: 80,

		HydrogenTankVolumeM3:   1.033,
		HydrogenTankCapacityKg: 18.4,
		HydrogenTankWeightKg:   272,
	}
}

// Component is one scaled element of an energy system.
type Component struct {
	Count       int      `json:"count,omitempty"`
	WeightKg    float64  `json:"weight_kg"`
	VolumeM3    float64  `json:"volume_m3"`
	PowerKW     *float64 `json:"power_kw,omitempty"`
	CapacityKWh *float64 `json:"capacity_kwh,omitempty"`
	CapacityKg  *float64 `json:"capacity_kg,omitempty"`
}

// Result is a complete energy system estimate.
type Result struct {
	TotalWeightKg float64              `json:"total_weight_kg"`
	TotalVolumeM3 float64              `json:"total_volume_m3"`
	Details       map[string]Component `json:"details"`
}

// SuggestBatterySystem sizes a battery-electric system able to deliver
// the voyage's total energy within the packs' depth of discharge.
func SuggestBatterySystem(vessel model.VesselData, voyage model.VoyageProfile, ref ReferenceValues) (Result, error) {
	energy, err := imo.EstimateEnergyConsumption(vessel, voyage)
	if err != nil {
		return Result{}, err
	}
	usable := ref.BatteryPackCapacityKWh * ref.BatteryPackDepthOfDischargePct / 100
	packs := int(math.Ceil(energy.TotalKWh / usable))

	capacity := float64(packs) * ref.BatteryPackCapacityKWh
	pack := Component{
		Count:       packs,
		WeightKg:    float64(packs) * ref.BatteryPackWeightKg,
		VolumeM3:    float64(packs) * ref.BatteryPackVolumeM3,
		CapacityKWh: &capacity,
	}
	return Result{
		TotalWeightKg: pack.WeightKg,
		TotalVolumeM3: pack.VolumeM3,
		Details:       map[string]Component{"battery_packs": pack},
	}, nil
}

// SuggestHydrogenSystem sizes a gaseous-hydrogen fuel cell system: fuel
// cells cover the peak power demand, tanks hold the hydrogen for the
// voyage's total energy at the fuel cell efficiency.
func SuggestHydrogenSystem(vessel model.VesselData, voyage model.VoyageProfile, ref ReferenceValues) (Result, error) {
	energy, err := imo.EstimateEnergyConsumption(vessel, voyage)
	if err != nil {
		return Result{}, err
	}
	peak, err := imo.PeakPowerDemand(vessel, voyage)
	if err != nil {
		return Result{}, err
	}

	cells := int(math.Ceil(peak / ref.FuelCellPowerKW))
	hydrogenKg := energy.TotalKWh / (ref.FuelCellEfficiencyPct / 100 * hydrogenLHVKWhPerKg)
	tanks := int(math.Ceil(hydrogenKg / ref.HydrogenTankCapacityKg))

	cellPower := float64(cells) * ref.FuelCellPowerKW
	cellComp := Component{
		Count:    cells,
		WeightKg: float64(cells) * ref.FuelCellWeightKg,
		VolumeM3: float64(cells) * ref.FuelCellVolumeM3,
		PowerKW:  &cellPower,
	}
	tankCapacity := float64(tanks) * ref.HydrogenTankCapacityKg
	tankComp := Component{
		Count:      tanks,
		WeightKg:   float64(tanks) * ref.HydrogenTankWeightKg,
		VolumeM3:   float64(tanks) * ref.HydrogenTankVolumeM3,
		CapacityKg: &tankCapacity,
	}
	fuelComp := Component{
		WeightKg:   hydrogenKg,
		CapacityKg: &hydrogenKg,
	}
	return Result{
		TotalWeightKg: cellComp.WeightKg + tankComp.WeightKg + fuelComp.WeightKg,
		TotalVolumeM3: cellComp.VolumeM3 + tankComp.VolumeM3,
		Details: map[string]Component{
			"fuel_cells":     cellComp,
			"hydrogen_tanks": tankComp,
			"hydrogen":       fuelComp,
		},
	}, nil
}

// Indicative engine mass and volume per installed kW, by engine family.
var (
	engineMassKgPerKW = map[model.EngineType]float64{
		model.SSD: 35, model.MSD: 15, model.HSD: 7,
		model.LNGOttoMS: 16, model.LBSI: 16,
		model.GasTurbine: 2.5, model.SteamTurbine: 25,
	}
	engineVolumeM3PerKW = map[model.EngineType]float64{
		model.SSD: 0.045, model.MSD: 0.02, model.HSD: 0.01,
		model.LNGOttoMS: 0.022, model.LBSI: 0.022,
		model.GasTurbine: 0.005, model.SteamTurbine: 0.04,
	}
)

// CombustionSystem reports the conventional system for comparison: the
// voyage's fuel mass and volume plus an indicative weight and volume of
// the installed engines.
func CombustionSystem(vessel model.VesselData, voyage model.VoyageProfile) (Result, error) {
	fuel, err := imo.EstimateFuelConsumption(vessel, voyage)
	if err != nil {
		return Result{}, err
	}
	liters, err := imo.CalculateFuelVolume(fuel.TotalKg, vessel.PropulsionEngineFuelType)
	if err != nil {
		return Result{}, err
	}
	massPerKW, ok := engineMassKgPerKW[vessel.PropulsionEngineType]
	if !ok {
		return Result{}, &model.ReferenceDataError{Table: "engine_mass", Key: string(vessel.PropulsionEngineType)}
	}
	volPerKW, ok := engineVolumeM3PerKW[vessel.PropulsionEngineType]
	if !ok {
		return Result{}, &model.ReferenceDataError{Table: "engine_volume", Key: string(vessel.PropulsionEngineType)}
	}

	installed := vessel.TotalInstalledPower()
	enginePower := installed
	engines := Component{
		Count:    vessel.NumberOfPropulsionEngines,
		WeightKg: installed * massPerKW,
		VolumeM3: installed * volPerKW,
		PowerKW:  &enginePower,
	}
	fuelKg := fuel.TotalKg
	fuelComp := Component{
		WeightKg:   fuelKg,
		VolumeM3:   liters / 1000,
		CapacityKg: &fuelKg,
	}
	return Result{
		TotalWeightKg: engines.WeightKg + fuelComp.WeightKg,
		TotalVolumeM3: engines.VolumeM3 + fuelComp.VolumeM3,
		Details: map[string]Component{
			"engines": engines,
			"fuel":    fuelComp,
		},
	}, nil
}
