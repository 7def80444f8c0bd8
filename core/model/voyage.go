package model

import "fmt"

// maxVoyageHours caps the stationary times of a voyage profile at one year.
const maxVoyageHours = 24 * 365

// VoyageLeg is one homogeneous segment of travel at constant speed and
// draft.
type VoyageLeg struct {
	Distance float64 `json:"distance"` // nautical miles
	Speed    float64 `json:"speed"`    // knots
	Draft    float64 `json:"draft"`    // meters
}

// Validate checks the leg bounds. A leg that covers distance needs a
// positive speed so its duration can be derived.
func (l VoyageLeg) Validate() error {
	if l.Distance < 0 {
		return &ValidationError{Entity: "VoyageLeg", Field: "distance", Value: l.Distance, Detail: "must be >= 0"}
	}
	if l.Speed < 0 {
		return &ValidationError{Entity: "VoyageLeg", Field: "speed", Value: l.Speed, Detail: "must be >= 0"}
	}
	if l.Distance > 0 && l.Speed == 0 {
		return &ValidationError{Entity: "VoyageLeg", Field: "speed", Value: l.Speed, Detail: "must be > 0 when distance is > 0"}
	}
	if l.Draft <= 0 {
		return &ValidationError{Entity: "VoyageLeg", Field: "draft", Value: l.Draft, Detail: "must be > 0"}
	}
	return nil
}

// DurationHours returns the time needed to sail the leg. Zero-distance
// legs take no time.
func (l VoyageLeg) DurationHours() float64 {
	if l.Distance == 0 {
		return 0
	}
	return l.Distance / l.Speed
}

// VoyageProfile partitions one voyage into the four operating modes: at
// berth, anchored, manoeuvring and at sea. A profile where every time and
// leg value is zero is degenerate but valid and yields zero consumption.
type VoyageProfile struct {
	TimeAnchored    float64     `json:"time_anchored"` // hours
	TimeAtBerth     float64     `json:"time_at_berth"` // hours
	LegsManoeuvring []VoyageLeg `json:"legs_manoeuvring"`
	LegsAtSea       []VoyageLeg `json:"legs_at_sea"`
}

// NewVoyageProfile validates the given profile and returns it.
func NewVoyageProfile(p VoyageProfile) (VoyageProfile, error) {
	if err := p.Validate(); err != nil {
		return VoyageProfile{}, err
	}
	return p, nil
}

// Validate checks the stationary times and every leg of the profile.
func (p VoyageProfile) Validate() error {
	if p.TimeAnchored < 0 || p.TimeAnchored > maxVoyageHours {
		return newRangeError("VoyageProfile", "time_anchored", p.TimeAnchored, 0, maxVoyageHours)
	}
	if p.TimeAtBerth < 0 || p.TimeAtBerth > maxVoyageHours {
		return newRangeError("VoyageProfile", "time_at_berth", p.TimeAtBerth, 0, maxVoyageHours)
	}
	for i, leg := range p.LegsManoeuvring {
		if err := legError("legs_manoeuvring", i, leg); err != nil {
			return err
		}
	}
	for i, leg := range p.LegsAtSea {
		if err := legError("legs_at_sea", i, leg); err != nil {
			return err
		}
	}
	return nil
}

func legError(field string, index int, leg VoyageLeg) error {
	err := leg.Validate()
	if err == nil {
		return nil
	}
	if verr, ok := err.(*ValidationError); ok {
		return &ValidationError{
			Entity: "VoyageProfile",
			Field:  fmt.Sprintf("%s[%d].%s", field, index, verr.Field),
			Value:  verr.Value,
			Detail: verr.Detail,
		}
	}
	return err
}
