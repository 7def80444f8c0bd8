// Package ais converts AIS data into the validated entities of
// core/model: static voyage data plus caller-supplied engine information
// into a VesselData, and a track of position reports into a
// VoyageProfile. The adapter is a collaborator on top of the calculation
// core; its output always satisfies the core entity invariants.
package ais

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/jorundf/cetus/core/model"
)

const earthRadiusNm = 3440.065

// ShipStatics carries the fields of an AIS static data report used to
// derive vessel dimensions.
type ShipStatics struct {
	ShipType    int     // AIS ship type code
	ToBow       float64 // antenna to bow, m
	ToStern     float64 // antenna to stern, m
	ToPort      float64 // antenna to port side, m
	ToStarboard float64 // antenna to starboard side, m
	Draught     float64 // reported draught, m
}

// EngineSpec supplies the propulsion data AIS does not carry.
type EngineSpec struct {
	Count       int
	PowerKW     float64
	Type        model.EngineType
	Age         model.EngineAge
	Fuel        model.FuelType
	DesignSpeed float64 // kn
	DoubleEnded bool
	Size        *float64
}

// VesselTypeFromShipType maps an AIS ship type code onto the IMO vessel
// categories. Codes without a sharper mapping land in the miscellaneous
// category.
func VesselTypeFromShipType(code int) model.VesselType {
	switch {
	case code == 30:
		return model.MiscFishing
	case code == 52:
		return model.ServiceTug
	case code >= 60 && code <= 69:
		return model.FerryPax
	case code >= 70 && code <= 79:
		return model.GeneralCargo
	case code >= 80 && code <= 89:
		return model.OilTanker
	default:
		return model.MiscOther
	}
}

// VesselFromStatics builds a validated VesselData from AIS static data
// and the supplied engine information. Length and beam come from the
// antenna offsets, the design draft from the reported draught.
func VesselFromStatics(st ShipStatics, eng EngineSpec) (model.VesselData, error) {
	return model.NewVesselData(model.VesselData{
		Length:      st.ToBow + st.ToStern,
		Beam:        st.ToPort + st.ToStarboard,
		DesignSpeed: eng.DesignSpeed,
		DesignDraft: st.Draught,
		DoubleEnded: eng.DoubleEnded,

		NumberOfPropulsionEngines: eng.Count,
		PropulsionEnginePower:     eng.PowerKW,
		PropulsionEngineType:      eng.Type,
		PropulsionEngineAge:       eng.Age,
		PropulsionEngineFuelType:  eng.Fuel,

		Type: VesselTypeFromShipType(st.ShipType),
		Size: eng.Size,
	})
}

// PositionReport is one AIS position message of a track.
type PositionReport struct {
	Timestamp time.Time
	Lat       float64 // degrees
	Lon       float64 // degrees
	SpeedKn   float64 // speed over ground, kn
	Draught   float64 // m
}

// Thresholds classify track segments into operating modes by their mean
// speed over ground.
type Thresholds struct {
	BerthSpeedKn       float64 // at or below: at berth
	AnchoredSpeedKn    float64 // at or below: anchored
	ManoeuvringSpeedKn float64 // at or below: manoeuvring, above: at sea
}

// DefaultThresholds returns the classification defaults: 0.5 kn for at
// berth, 1 kn for anchored, 5 kn for manoeuvring.
func DefaultThresholds() Thresholds {
	return Thresholds{BerthSpeedKn: 0.5, AnchoredSpeedKn: 1.0, ManoeuvringSpeedKn: 5.0}
}

// ProfileFromTrack converts an ordered AIS track into a validated
// VoyageProfile. Consecutive reports form segments; each segment is
// classified by its mean speed and contributes either stationary time or
// a voyage leg with the haversine distance between the endpoints.
func ProfileFromTrack(reports []PositionReport, th Thresholds) (model.VoyageProfile, error) {
	var p model.VoyageProfile
	for i := 1; i < len(reports); i++ {
		prev, cur := reports[i-1], reports[i]
		hours := cur.Timestamp.Sub(prev.Timestamp).Hours()
		if hours <= 0 {
			continue
		}
		speed := stat.Mean([]float64{prev.SpeedKn, cur.SpeedKn}, nil)
		draft := stat.Mean([]float64{prev.Draught, cur.Draught}, nil)

		switch {
		case speed <= th.BerthSpeedKn:
			p.TimeAtBerth += hours
		case speed <= th.AnchoredSpeedKn:
			p.TimeAnchored += hours
		default:
			leg := model.VoyageLeg{
				Distance: HaversineNm(prev.Lat, prev.Lon, cur.Lat, cur.Lon),
				Speed:    speed,
				Draft:    draft,
			}
			if leg.Distance == 0 {
				// Moving reports with identical positions carry no
				// usable distance; account for the time as anchored.
				p.TimeAnchored += hours
				continue
			}
			if speed <= th.ManoeuvringSpeedKn {
				p.LegsManoeuvring = append(p.LegsManoeuvring, leg)
			} else {
				p.LegsAtSea = append(p.LegsAtSea, leg)
			}
		}
	}
	return model.NewVoyageProfile(p)
}

// HaversineNm returns the great-circle distance between two coordinates
// in nautical miles.
func HaversineNm(lat1, lon1, lat2, lon2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLon := (lon2 - lon1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusNm * math.Asin(math.Sqrt(a))
}
