package ais

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorundf/cetus/core/model"
)

func TestVesselTypeFromShipType(t *testing.T) {
	cases := []struct {
		code int
		want model.VesselType
	}{
		{30, model.MiscFishing},
		{52, model.ServiceTug},
		{60, model.FerryPax},
		{69, model.FerryPax},
		{70, model.GeneralCargo},
		{79, model.GeneralCargo},
		{80, model.OilTanker},
		{89, model.OilTanker},
		{0, model.MiscOther},
		{35, model.MiscOther},
		{99, model.MiscOther},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, VesselTypeFromShipType(c.code), "code %d", c.code)
	}
}

func ferryStatics() (ShipStatics, EngineSpec) {
	size := 686.0
	st := ShipStatics{
		ShipType:    60,
		ToBow:       20,
		ToStern:     19.8,
		ToPort:      5,
		ToStarboard: 5.46,
		Draught:     2.84,
	}
	eng := EngineSpec{
		Count:       4,
		PowerKW:     330,
		Type:        model.MSD,
		Age:         model.After2000,
		Fuel:        model.MDO,
		DesignSpeed: 13.5,
		Size:        &size,
	}
	return st, eng
}

func TestVesselFromStatics(t *testing.T) {
	st, eng := ferryStatics()
	v, err := VesselFromStatics(st, eng)
	require.NoError(t, err)

	assert.InDelta(t, 39.8, v.Length, 1e-9)
	assert.InDelta(t, 10.46, v.Beam, 1e-9)
	assert.Equal(t, model.FerryPax, v.Type)
	assert.Equal(t, model.MSD, v.PropulsionEngineType)
}

func TestVesselFromStatics_InvalidDraught(t *testing.T) {
	st, eng := ferryStatics()
	st.Draught = 0
	_, err := VesselFromStatics(st, eng)
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "design_draft", verr.Field)
}

func track(t0 time.Time, reports ...PositionReport) []PositionReport {
	out := make([]PositionReport, len(reports))
	for i, r := range reports {
		r.Timestamp = t0.Add(time.Duration(i) * time.Hour)
		out[i] = r
	}
	return out
}

func TestProfileFromTrack_Classification(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	reports := track(t0,
		PositionReport{Lat: 60.0, Lon: 5.0, SpeedKn: 0.3, Draught: 2.8},
		PositionReport{Lat: 60.0, Lon: 5.0, SpeedKn: 0.3, Draught: 2.8},
		PositionReport{Lat: 60.0, Lon: 5.0001, SpeedKn: 0.9, Draught: 2.8},
		PositionReport{Lat: 60.0, Lon: 5.01, SpeedKn: 4.0, Draught: 2.8},
		PositionReport{Lat: 60.1, Lon: 5.2, SpeedKn: 12.0, Draught: 2.8},
	)

	p, err := ProfileFromTrack(reports, DefaultThresholds())
	require.NoError(t, err)

	// Segment means: 0.3 (berth), 0.6 (anchored), 2.45 (manoeuvring),
	// 8.0 (at sea), one hour each.
	assert.InDelta(t, 1.0, p.TimeAtBerth, 1e-9)
	assert.InDelta(t, 1.0, p.TimeAnchored, 1e-9)
	require.Len(t, p.LegsManoeuvring, 1)
	require.Len(t, p.LegsAtSea, 1)

	assert.InDelta(t, 2.45, p.LegsManoeuvring[0].Speed, 1e-9)
	assert.InDelta(t, 8.0, p.LegsAtSea[0].Speed, 1e-9)
	assert.Greater(t, p.LegsAtSea[0].Distance, p.LegsManoeuvring[0].Distance)
}

func TestProfileFromTrack_ZeroDistanceMovingSegment(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	reports := track(t0,
		PositionReport{Lat: 60.0, Lon: 5.0, SpeedKn: 10, Draught: 2.8},
		PositionReport{Lat: 60.0, Lon: 5.0, SpeedKn: 10, Draught: 2.8},
	)

	p, err := ProfileFromTrack(reports, DefaultThresholds())
	require.NoError(t, err)

	// GPS standstill at reported speed: no usable distance, the hour is
	// booked as anchored instead of producing a degenerate leg.
	assert.Empty(t, p.LegsAtSea)
	assert.InDelta(t, 1.0, p.TimeAnchored, 1e-9)
}

func TestProfileFromTrack_OutOfOrderReportsSkipped(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC)
	reports := []PositionReport{
		{Timestamp: t0, Lat: 60.0, Lon: 5.0, SpeedKn: 0.2, Draught: 2.8},
		{Timestamp: t0.Add(time.Hour), Lat: 60.0, Lon: 5.0, SpeedKn: 0.2, Draught: 2.8},
		{Timestamp: t0, Lat: 60.0, Lon: 5.0, SpeedKn: 0.2, Draught: 2.8},
	}
	p, err := ProfileFromTrack(reports, DefaultThresholds())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, p.TimeAtBerth, 1e-9)
}

func TestProfileFromTrack_Empty(t *testing.T) {
	p, err := ProfileFromTrack(nil, DefaultThresholds())
	require.NoError(t, err)
	assert.Zero(t, p.TimeAtBerth)
	assert.Empty(t, p.LegsAtSea)
}

func TestHaversineNm(t *testing.T) {
	// One degree of latitude is one sixtieth of a meridian quadrant,
	// about 60 nm on the spherical model.
	assert.InDelta(t, 60.04, HaversineNm(0, 0, 1, 0), 0.01)
	assert.Zero(t, HaversineNm(60, 5, 60, 5))

	// Longitude degrees shrink with latitude.
	atEquator := HaversineNm(0, 0, 0, 1)
	atSixty := HaversineNm(60, 0, 60, 1)
	assert.InDelta(t, atEquator/2, atSixty, 0.05)
}
