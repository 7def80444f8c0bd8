package model

// FuelConsumptionBreakdown holds the fuel consumed during one operating
// mode, split by system. SteamBoilersKg is nil when the estimate was run
// without boilers; AverageFuelConsumptionLPerNm is nil for modes that
// covered no distance.
type FuelConsumptionBreakdown struct {
	SubtotalKg                   float64  `json:"subtotal_kg"`
	PropulsionEnginesKg          float64  `json:"propulsion_engines_kg"`
	AuxiliaryEnginesKg           float64  `json:"auxiliary_engines_kg"`
	SteamBoilersKg               *float64 `json:"steam_boilers_kg,omitempty"`
	DistanceNm                   float64  `json:"distance_nm"`
	AverageFuelConsumptionLPerNm *float64 `json:"average_fuel_consumption_l_per_nm,omitempty"`
}

// FuelConsumptionResult is the complete fuel estimate for one voyage,
// aggregated over the four operating modes. Results are freshly allocated
// per call and never mutated.
type FuelConsumptionResult struct {
	TotalKg     float64                  `json:"total_kg"`
	AtBerth     FuelConsumptionBreakdown `json:"at_berth"`
	Anchored    FuelConsumptionBreakdown `json:"anchored"`
	Manoeuvring FuelConsumptionBreakdown `json:"manoeuvring"`
	AtSea       FuelConsumptionBreakdown `json:"at_sea"`
}

// EnergyConsumptionBreakdown mirrors FuelConsumptionBreakdown in kWh of
// delivered energy.
type EnergyConsumptionBreakdown struct {
	SubtotalKWh          float64  `json:"subtotal_kwh"`
	PropulsionEnginesKWh float64  `json:"propulsion_engines_kwh"`
	AuxiliaryEnginesKWh  float64  `json:"auxiliary_engines_kwh"`
	SteamBoilersKWh      *float64 `json:"steam_boilers_kwh,omitempty"`
	DistanceNm           float64  `json:"distance_nm"`
}

// EnergyConsumptionResult is the complete energy estimate for one voyage.
type EnergyConsumptionResult struct {
	TotalKWh    float64                    `json:"total_kwh"`
	AtBerth     EnergyConsumptionBreakdown `json:"at_berth"`
	Anchored    EnergyConsumptionBreakdown `json:"anchored"`
	Manoeuvring EnergyConsumptionBreakdown `json:"manoeuvring"`
	AtSea       EnergyConsumptionBreakdown `json:"at_sea"`
}
