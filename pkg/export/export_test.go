package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorundf/cetus/core/model"
)

func sampleResult() model.FuelConsumptionResult {
	boilers := 12.5
	avg := 24.7
	return model.FuelConsumptionResult{
		TotalKg: 100,
		AtBerth: model.FuelConsumptionBreakdown{
			SubtotalKg:         40,
			AuxiliaryEnginesKg: 27.5,
			SteamBoilersKg:     &boilers,
		},
		AtSea: model.FuelConsumptionBreakdown{
			SubtotalKg:                   60,
			PropulsionEnginesKg:          50,
			AuxiliaryEnginesKg:           10,
			DistanceNm:                   30,
			AverageFuelConsumptionLPerNm: &avg,
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 100.0, decoded["total_kg"])

	atSea, ok := decoded["at_sea"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 24.7, atSea["average_fuel_consumption_l_per_nm"])

	// Undefined efficiency serializes as null, not zero.
	berth, ok := decoded["at_berth"].(map[string]any)
	require.True(t, ok)
	assert.Nil(t, berth["average_fuel_consumption_l_per_nm"])
}

func TestWriteEnergyJSON(t *testing.T) {
	var buf bytes.Buffer
	res := model.EnergyConsumptionResult{
		TotalKWh: 500,
		AtBerth:  model.EnergyConsumptionBreakdown{SubtotalKWh: 500},
	}
	require.NoError(t, WriteEnergyJSON(&buf, res))
	assert.Contains(t, buf.String(), `"total_kwh": 500`)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6, "header, four modes, total")

	assert.Equal(t, "mode", records[0][0])
	assert.Equal(t, "at_berth", records[1][0])
	assert.Equal(t, "12.5", records[1][4])
	assert.Equal(t, "", records[1][6], "no distance, no per-nm figure")

	assert.Equal(t, "at_sea", records[4][0])
	assert.Equal(t, "24.7", records[4][6])

	assert.Equal(t, "total", records[5][0])
	assert.Equal(t, "100", records[5][1])
}
