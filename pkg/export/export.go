// Package export writes consumption results in machine-readable formats.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/jorundf/cetus/core/model"
)

// WriteJSON writes the fuel consumption result to w in indented JSON.
func WriteJSON(w io.Writer, res model.FuelConsumptionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteEnergyJSON writes the energy consumption result to w in indented
// JSON.
func WriteEnergyJSON(w io.Writer, res model.EnergyConsumptionResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteCSV writes one row per operating mode plus a total row.
func WriteCSV(w io.Writer, res model.FuelConsumptionResult) error {
	cw := csv.NewWriter(w)
	header := []string{"mode", "subtotal_kg", "propulsion_engines_kg", "auxiliary_engines_kg", "steam_boilers_kg", "distance_nm", "average_fuel_consumption_l_per_nm"}
	if err := cw.Write(header); err != nil {
		return err
	}
	rows := []struct {
		mode string
		b    model.FuelConsumptionBreakdown
	}{
		{"at_berth", res.AtBerth},
		{"anchored", res.Anchored},
		{"manoeuvring", res.Manoeuvring},
		{"at_sea", res.AtSea},
	}
	for _, r := range rows {
		rec := []string{
			r.mode,
			formatFloat(r.b.SubtotalKg),
			formatFloat(r.b.PropulsionEnginesKg),
			formatFloat(r.b.AuxiliaryEnginesKg),
			formatOptional(r.b.SteamBoilersKg),
			formatFloat(r.b.DistanceNm),
			formatOptional(r.b.AverageFuelConsumptionLPerNm),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"total", formatFloat(res.TotalKg), "", "", "", "", ""}); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return formatFloat(*f)
}
