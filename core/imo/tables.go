package imo

import (
	"fmt"

	"github.com/jorundf/cetus/core/model"
)

// The tables in this file are process-wide, read-only reference data
// loaded once at init and never mutated. Every lookup is total over the
// enum domain; a miss is a *model.ReferenceDataError and indicates a
// defect in the table definitions, not bad user input.

// sizeBin is one size bucket of a vessel category. Bins are half-open
// intervals [Lower, Upper): a size exactly equal to a bin's upper edge
// belongs to the next, larger bin. The last bin of every category is
// unbounded above.
type sizeBin struct {
	Lower float64
	Upper float64 // exclusive; +Inf for the last bin
}

const unbounded = 1e308

// bins builds ascending half-open bins from the given upper edges.
func bins(edges ...float64) []sizeBin {
	out := make([]sizeBin, 0, len(edges)+1)
	lower := 0.0
	for _, e := range edges {
		out = append(out, sizeBin{Lower: lower, Upper: e})
		lower = e
	}
	return append(out, sizeBin{Lower: lower, Upper: unbounded})
}

// sizeBins gives the IMO size buckets per vessel category. Units differ
// by category (DWT for cargo ships and tankers, GT for passenger and
// ro-ro ships, cbm for gas tankers, TEU for container ships). Categories
// with an optional size have a single unbounded bin.
var sizeBins = map[model.VesselType][]sizeBin{
	model.BulkCarrier:        bins(10_000, 35_000, 60_000, 100_000, 200_000),
	model.ChemicalTanker:     bins(5_000, 10_000, 20_000),
	model.Container:          bins(1_000, 2_000, 3_000, 5_000, 8_000, 12_000, 14_500),
	model.GeneralCargo:       bins(5_000, 10_000),
	model.LiquifiedGasTanker: bins(50_000, 100_000, 200_000),
	model.OilTanker:          bins(5_000, 10_000, 20_000, 60_000, 80_000, 120_000, 200_000),
	model.OtherLiquidsTanker: bins(1_000),
	model.FerryPax:           bins(300, 1_000, 2_000),
	model.Cruise:             bins(2_000, 10_000, 60_000, 100_000, 150_000),
	model.FerryRoPax:         bins(2_000, 5_000, 10_000, 20_000),
	model.RefrigeratedCargo:  bins(2_000, 6_000, 10_000),
	model.RoRo:               bins(5_000, 10_000, 15_000),
	model.Vehicle:            bins(30_000, 50_000),
	model.Yacht:              bins(),
	model.MiscFishing:        bins(),
	model.ServiceTug:         bins(),
	model.Offshore:           bins(),
	model.ServiceOther:       bins(),
	model.MiscOther:          bins(),
}

// sizeBinIndex resolves the bin containing the vessel's size. Categories
// with an optional size always resolve to their single bin.
func sizeBinIndex(t model.VesselType, size *float64) (int, error) {
	table, ok := sizeBins[t]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "size_bins", Key: string(t)}
	}
	if len(table) == 1 {
		return 0, nil
	}
	if size == nil {
		return 0, &model.ReferenceDataError{Table: "size_bins", Key: fmt.Sprintf("%s with no size", t)}
	}
	for i, b := range table {
		if *size >= b.Lower && *size < b.Upper {
			return i, nil
		}
	}
	return 0, &model.ReferenceDataError{Table: "size_bins", Key: fmt.Sprintf("%s size %g", t, *size)}
}

// modePower holds per-mode power output in kW, indexed by Mode.
type modePower struct {
	Aux    [4]float64
	Boiler [4]float64
}

// auxPowerTable gives auxiliary engine and steam boiler output per vessel
// category and size bin, one entry per bin in sizeBins order. Values
// follow the IMO Fourth GHG Study auxiliary power demand tables
// (at berth, anchored, manoeuvring, at sea).
var auxPowerTable = map[model.VesselType][]modePower{
	model.BulkCarrier: {
		{Aux: [4]float64{280, 220, 370, 190}, Boiler: [4]float64{70, 70, 60, 0}},
		{Aux: [4]float64{310, 280, 500, 190}, Boiler: [4]float64{110, 110, 100, 0}},
		{Aux: [4]float64{370, 370, 680, 260}, Boiler: [4]float64{130, 130, 120, 0}},
		{Aux: [4]float64{600, 600, 1100, 420}, Boiler: [4]float64{240, 240, 200, 0}},
		{Aux: [4]float64{600, 600, 1200, 420}, Boiler: [4]float64{310, 310, 260, 0}},
		{Aux: [4]float64{630, 630, 1300, 520}, Boiler: [4]float64{310, 310, 260, 0}},
	},
	model.ChemicalTanker: {
		{Aux: [4]float64{250, 250, 375, 190}, Boiler: [4]float64{230, 230, 200, 0}},
		{Aux: [4]float64{375, 375, 560, 280}, Boiler: [4]float64{380, 380, 330, 60}},
		{Aux: [4]float64{690, 690, 1030, 520}, Boiler: [4]float64{510, 510, 430, 100}},
		{Aux: [4]float64{880, 880, 1320, 660}, Boiler: [4]float64{810, 810, 680, 140}},
	},
	model.Container: {
		{Aux: [4]float64{340, 340, 510, 250}, Boiler: [4]float64{120, 120, 100, 0}},
		{Aux: [4]float64{600, 600, 880, 440}, Boiler: [4]float64{290, 290, 240, 0}},
		{Aux: [4]float64{700, 700, 1050, 520}, Boiler: [4]float64{350, 350, 290, 0}},
		{Aux: [4]float64{940, 940, 1400, 700}, Boiler: [4]float64{450, 450, 370, 0}},
		{Aux: [4]float64{970, 970, 1450, 720}, Boiler: [4]float64{450, 450, 370, 0}},
		{Aux: [4]float64{1000, 1000, 1500, 750}, Boiler: [4]float64{520, 520, 430, 0}},
		{Aux: [4]float64{1200, 1200, 1800, 900}, Boiler: [4]float64{630, 630, 530, 0}},
		{Aux: [4]float64{1320, 1320, 1980, 990}, Boiler: [4]float64{700, 700, 580, 0}},
	},
	model.GeneralCargo: {
		{Aux: [4]float64{90, 90, 180, 60}, Boiler: [4]float64{0, 0, 0, 0}},
		{Aux: [4]float64{240, 240, 490, 170}, Boiler: [4]float64{110, 110, 100, 0}},
		{Aux: [4]float64{720, 720, 1450, 490}, Boiler: [4]float64{150, 150, 130, 0}},
	},
	model.LiquifiedGasTanker: {
		{Aux: [4]float64{240, 240, 360, 180}, Boiler: [4]float64{200, 200, 180, 100}},
		{Aux: [4]float64{1700, 1700, 2600, 1300}, Boiler: [4]float64{200, 200, 180, 100}},
		{Aux: [4]float64{6800, 6800, 10200, 5100}, Boiler: [4]float64{300, 300, 270, 150}},
		{Aux: [4]float64{7000, 7000, 10500, 5300}, Boiler: [4]float64{300, 300, 270, 150}},
	},
	model.OilTanker: {
		{Aux: [4]float64{250, 250, 375, 190}, Boiler: [4]float64{230, 230, 200, 0}},
		{Aux: [4]float64{375, 375, 560, 280}, Boiler: [4]float64{380, 380, 330, 60}},
		{Aux: [4]float64{500, 500, 750, 370}, Boiler: [4]float64{510, 510, 430, 100}},
		{Aux: [4]float64{620, 620, 940, 470}, Boiler: [4]float64{810, 810, 680, 140}},
		{Aux: [4]float64{750, 750, 1120, 560}, Boiler: [4]float64{1430, 1430, 1200, 250}},
		{Aux: [4]float64{750, 750, 1120, 560}, Boiler: [4]float64{1950, 1950, 1640, 340}},
		{Aux: [4]float64{1000, 1000, 1500, 750}, Boiler: [4]float64{2550, 2550, 2150, 450}},
		{Aux: [4]float64{1250, 1250, 1880, 940}, Boiler: [4]float64{3250, 3250, 2730, 570}},
	},
	model.OtherLiquidsTanker: {
		{Aux: [4]float64{250, 250, 375, 190}, Boiler: [4]float64{230, 230, 200, 0}},
		{Aux: [4]float64{375, 375, 560, 280}, Boiler: [4]float64{380, 380, 330, 60}},
	},
	model.FerryPax: {
		{Aux: [4]float64{95, 95, 105, 100}, Boiler: [4]float64{0, 0, 0, 0}},
		{Aux: [4]float64{190, 190, 200, 190}, Boiler: [4]float64{0, 0, 0, 0}},
		{Aux: [4]float64{280, 280, 290, 280}, Boiler: [4]float64{30, 30, 30, 20}},
		{Aux: [4]float64{600, 600, 640, 580}, Boiler: [4]float64{70, 70, 70, 50}},
	},
	model.Cruise: {
		{Aux: [4]float64{450, 450, 580, 450}, Boiler: [4]float64{30, 30, 30, 20}},
		{Aux: [4]float64{450, 450, 580, 450}, Boiler: [4]float64{250, 250, 210, 140}},
		{Aux: [4]float64{3500, 3500, 5500, 3200}, Boiler: [4]float64{450, 450, 380, 250}},
		{Aux: [4]float64{11500, 11500, 14900, 11500}, Boiler: [4]float64{800, 800, 670, 450}},
		{Aux: [4]float64{11500, 11500, 14900, 11500}, Boiler: [4]float64{1100, 1100, 920, 620}},
		{Aux: [4]float64{12000, 12000, 15600, 12000}, Boiler: [4]float64{1100, 1100, 920, 620}},
	},
	model.FerryRoPax: {
		{Aux: [4]float64{110, 110, 170, 110}, Boiler: [4]float64{30, 30, 30, 20}},
		{Aux: [4]float64{280, 280, 420, 280}, Boiler: [4]float64{60, 60, 60, 40}},
		{Aux: [4]float64{900, 900, 1400, 900}, Boiler: [4]float64{100, 100, 90, 60}},
		{Aux: [4]float64{950, 950, 1450, 950}, Boiler: [4]float64{130, 130, 110, 70}},
		{Aux: [4]float64{1100, 1100, 1700, 1100}, Boiler: [4]float64{160, 160, 140, 90}},
	},
	model.RefrigeratedCargo: {
		{Aux: [4]float64{520, 520, 790, 390}, Boiler: [4]float64{60, 60, 50, 30}},
		{Aux: [4]float64{740, 740, 1100, 550}, Boiler: [4]float64{90, 90, 80, 40}},
		{Aux: [4]float64{980, 980, 1480, 740}, Boiler: [4]float64{120, 120, 100, 50}},
		{Aux: [4]float64{1200, 1200, 1800, 900}, Boiler: [4]float64{130, 130, 110, 60}},
	},
	model.RoRo: {
		{Aux: [4]float64{340, 340, 510, 250}, Boiler: [4]float64{60, 60, 50, 30}},
		{Aux: [4]float64{460, 460, 690, 340}, Boiler: [4]float64{90, 90, 80, 40}},
		{Aux: [4]float64{600, 600, 900, 450}, Boiler: [4]float64{110, 110, 100, 50}},
		{Aux: [4]float64{770, 770, 1150, 580}, Boiler: [4]float64{130, 130, 110, 60}},
	},
	model.Vehicle: {
		{Aux: [4]float64{500, 500, 750, 370}, Boiler: [4]float64{80, 80, 70, 40}},
		{Aux: [4]float64{550, 550, 830, 410}, Boiler: [4]float64{90, 90, 80, 40}},
		{Aux: [4]float64{620, 620, 930, 470}, Boiler: [4]float64{100, 100, 90, 50}},
	},
	model.Yacht: {
		{Aux: [4]float64{130, 130, 200, 100}, Boiler: [4]float64{0, 0, 0, 0}},
	},
	model.MiscFishing: {
		{Aux: [4]float64{200, 200, 310, 150}, Boiler: [4]float64{0, 0, 0, 0}},
	},
	model.ServiceTug: {
		{Aux: [4]float64{100, 100, 170, 80}, Boiler: [4]float64{0, 0, 0, 0}},
	},
	model.Offshore: {
		{Aux: [4]float64{320, 320, 480, 240}, Boiler: [4]float64{0, 0, 0, 0}},
	},
	model.ServiceOther: {
		{Aux: [4]float64{220, 220, 340, 170}, Boiler: [4]float64{0, 0, 0, 0}},
	},
	model.MiscOther: {
		{Aux: [4]float64{190, 190, 280, 140}, Boiler: [4]float64{0, 0, 0, 0}},
	},
}

// auxiliaryPower returns the auxiliary engine and boiler output in kW for
// the given vessel in the given mode.
//
// Per the IMO methodology, vessels with less than 150 kW of installed
// propulsion power carry no modeled auxiliaries; between 150 and 500 kW
// the auxiliary output is 5% of installed power in every mode with no
// boiler; above 500 kW the category table applies.
func auxiliaryPower(v model.VesselData, m Mode) (aux, boiler float64, err error) {
	installed := v.TotalInstalledPower()
	if installed < 150 {
		return 0, 0, nil
	}
	if installed <= 500 {
		return 0.05 * installed, 0, nil
	}
	idx, err := sizeBinIndex(v.Type, v.Size)
	if err != nil {
		return 0, 0, err
	}
	rows, ok := auxPowerTable[v.Type]
	if !ok || idx >= len(rows) {
		return 0, 0, &model.ReferenceDataError{Table: "auxiliary_power", Key: fmt.Sprintf("%s bin %d", v.Type, idx)}
	}
	return rows[idx].Aux[m], rows[idx].Boiler[m], nil
}

// fuelLHV is the lower heating value per fuel in MJ/kg, used to scale
// specific fuel consumption between fuels.
var fuelLHV = map[model.FuelType]float64{
	model.HFO:  40.2,
	model.MDO:  42.7,
	model.MeOH: 19.9,
	model.LNG:  48.0,
}

// fuelDensity is the fuel density in kg/m3 used for mass/volume
// conversion.
var fuelDensity = map[model.FuelType]float64{
	model.HFO:  991,
	model.MDO:  890,
	model.MeOH: 792,
	model.LNG:  450,
}

// sfcFamily holds the baseline SFC in g/kWh per engine age bracket,
// expressed in the family's native fuel.
type sfcFamily struct {
	Native model.FuelType
	Base   map[model.EngineAge]float64
}

// sfcBaseline follows the IMO Fourth GHG Study baseline SFC table. Diesel
// and turbine families are tabulated on MDO, gas engines on LNG; other
// fuels are derived by lower-heating-value scaling, which reproduces the
// study's published HFO figures.
var sfcBaseline = map[model.EngineType]sfcFamily{
	model.SSD: {Native: model.MDO, Base: map[model.EngineAge]float64{
		model.Before1984: 190, model.Between19842000: 175, model.After2000: 165,
	}},
	model.MSD: {Native: model.MDO, Base: map[model.EngineAge]float64{
		model.Before1984: 200, model.Between19842000: 185, model.After2000: 175,
	}},
	model.HSD: {Native: model.MDO, Base: map[model.EngineAge]float64{
		model.Before1984: 210, model.Between19842000: 190, model.After2000: 185,
	}},
	model.LNGOttoMS: {Native: model.LNG, Base: map[model.EngineAge]float64{
		model.Before1984: 180, model.Between19842000: 173, model.After2000: 156,
	}},
	model.LBSI: {Native: model.LNG, Base: map[model.EngineAge]float64{
		model.Before1984: 180, model.Between19842000: 173, model.After2000: 156,
	}},
	model.GasTurbine: {Native: model.MDO, Base: map[model.EngineAge]float64{
		model.Before1984: 300, model.Between19842000: 300, model.After2000: 290,
	}},
	model.SteamTurbine: {Native: model.MDO, Base: map[model.EngineAge]float64{
		model.Before1984: 340, model.Between19842000: 340, model.After2000: 340,
	}},
}

// baseSFC returns the baseline specific fuel consumption in g/kWh for the
// given engine family, age bracket and fuel.
func baseSFC(engine model.EngineType, age model.EngineAge, fuel model.FuelType) (float64, error) {
	fam, ok := sfcBaseline[engine]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "sfc_baseline", Key: string(engine)}
	}
	base, ok := fam.Base[age]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "sfc_baseline", Key: fmt.Sprintf("%s/%s", engine, age)}
	}
	nativeLHV, ok := fuelLHV[fam.Native]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "fuel_lhv", Key: string(fam.Native)}
	}
	lhv, ok := fuelLHV[fuel]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "fuel_lhv", Key: string(fuel)}
	}
	return base * nativeLHV / lhv, nil
}

// boilerSFC is the specific fuel consumption of steam boilers per fuel in
// g/kWh of delivered heat.
var boilerSFC = map[model.FuelType]float64{
	model.HFO:  305,
	model.MDO:  290,
	model.MeOH: 620,
	model.LNG:  285,
}

func boilerSFCFor(fuel model.FuelType) (float64, error) {
	sfc, ok := boilerSFC[fuel]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "boiler_sfc", Key: string(fuel)}
	}
	return sfc, nil
}

func densityFor(fuel model.FuelType) (float64, error) {
	d, ok := fuelDensity[fuel]
	if !ok {
		return 0, &model.ReferenceDataError{Table: "fuel_density", Key: string(fuel)}
	}
	return d, nil
}
