package model

// VesselType classifies a vessel according to the IMO Fourth GHG Study
// categories. The category selects the auxiliary power table and the size
// binning used for reference lookups.
type VesselType string

const (
	BulkCarrier        VesselType = "bulk_carrier"
	ChemicalTanker     VesselType = "chemical_tanker"
	Container          VesselType = "container"
	GeneralCargo       VesselType = "general_cargo"
	LiquifiedGasTanker VesselType = "liquified_gas_tanker"
	OilTanker          VesselType = "oil_tanker"
	OtherLiquidsTanker VesselType = "other_liquids_tanker"
	FerryPax           VesselType = "ferry-pax"
	Cruise             VesselType = "cruise"
	FerryRoPax         VesselType = "ferry-ropax"
	RefrigeratedCargo  VesselType = "refrigerated_cargo"
	RoRo               VesselType = "roro"
	Vehicle            VesselType = "vehicle"
	Yacht              VesselType = "yacht"
	MiscFishing        VesselType = "miscellaneous-fishing"
	ServiceTug         VesselType = "service-tug"
	Offshore           VesselType = "offshore"
	ServiceOther       VesselType = "service-other"
	MiscOther          VesselType = "miscellaneous-other"
)

// VesselTypes lists every supported vessel type.
var VesselTypes = []VesselType{
	BulkCarrier, ChemicalTanker, Container, GeneralCargo,
	LiquifiedGasTanker, OilTanker, OtherLiquidsTanker, FerryPax, Cruise,
	FerryRoPax, RefrigeratedCargo, RoRo, Vehicle, Yacht, MiscFishing,
	ServiceTug, Offshore, ServiceOther, MiscOther,
}

// SizeOptional reports whether the vessel category works without a size
// value. Working vessels are not binned by size in the reference tables.
func (t VesselType) SizeOptional() bool {
	switch t {
	case Yacht, ServiceTug, MiscFishing, Offshore, ServiceOther, MiscOther:
		return true
	}
	return false
}

// ParseVesselType converts a raw string into a VesselType.
func ParseVesselType(s string) (VesselType, error) {
	for _, t := range VesselTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &ValidationError{Entity: "VesselType", Field: "type", Value: s, Detail: "is not a supported vessel type"}
}

// FuelType identifies the fuel burned by the vessel's engines.
type FuelType string

const (
	HFO  FuelType = "HFO"  // heavy fuel oil
	MDO  FuelType = "MDO"  // marine diesel oil
	MeOH FuelType = "MeOH" // methanol
	LNG  FuelType = "LNG"  // liquefied natural gas
)

// FuelTypes lists every supported fuel.
var FuelTypes = []FuelType{HFO, MDO, MeOH, LNG}

// ParseFuelType converts a raw string into a FuelType.
func ParseFuelType(s string) (FuelType, error) {
	for _, f := range FuelTypes {
		if string(f) == s {
			return f, nil
		}
	}
	return "", &ValidationError{Entity: "FuelType", Field: "fuel_type", Value: s, Detail: "is not a supported fuel type"}
}

// EngineType identifies the propulsion engine family. The family selects
// the baseline specific fuel consumption curve.
type EngineType string

const (
	SSD          EngineType = "SSD" // slow speed diesel
	MSD          EngineType = "MSD" // medium speed diesel
	HSD          EngineType = "HSD" // high speed diesel
	LNGOttoMS    EngineType = "LNG-Otto-MS"
	LBSI         EngineType = "LBSI" // lean burn spark ignition
	GasTurbine   EngineType = "gas_turbine"
	SteamTurbine EngineType = "steam_turbine"
)

// EngineTypes lists every supported engine family.
var EngineTypes = []EngineType{SSD, MSD, HSD, LNGOttoMS, LBSI, GasTurbine, SteamTurbine}

// ParseEngineType converts a raw string into an EngineType.
func ParseEngineType(s string) (EngineType, error) {
	for _, e := range EngineTypes {
		if string(e) == s {
			return e, nil
		}
	}
	return "", &ValidationError{Entity: "EngineType", Field: "engine_type", Value: s, Detail: "is not a supported engine type"}
}

// EngineAge brackets the engine build year. Newer engines have lower
// specific fuel consumption.
type EngineAge string

const (
	Before1984      EngineAge = "before_1984"
	Between19842000 EngineAge = "1984-2000"
	After2000       EngineAge = "after_2000"
)

// EngineAges lists every supported age bracket.
var EngineAges = []EngineAge{Before1984, Between19842000, After2000}

// ParseEngineAge converts a raw string into an EngineAge.
func ParseEngineAge(s string) (EngineAge, error) {
	for _, a := range EngineAges {
		if string(a) == s {
			return a, nil
		}
	}
	return "", &ValidationError{Entity: "EngineAge", Field: "engine_age", Value: s, Detail: "is not a supported engine age bracket"}
}
