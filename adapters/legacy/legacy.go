// Package legacy converts loosely-typed, map-shaped vessel and voyage
// records into the validated entities of core/model. It exists for
// callers migrating from dict-based calling conventions; new code should
// construct the entities directly.
//
// Typing is strict by default: numeric-looking strings are rejected,
// integers are accepted where floats are expected.
package legacy

import (
	"fmt"

	"github.com/jorundf/cetus/core/model"
)

// VesselFromMap builds a validated VesselData from a legacy record.
// Missing or mistyped keys surface as *model.ValidationError, the same
// taxonomy raised by direct construction.
func VesselFromMap(m map[string]any) (model.VesselData, error) {
	var v model.VesselData
	var err error

	if v.Length, err = floatKey(m, "length"); err != nil {
		return model.VesselData{}, err
	}
	if v.Beam, err = floatKey(m, "beam"); err != nil {
		return model.VesselData{}, err
	}
	if v.DesignSpeed, err = floatKey(m, "design_speed"); err != nil {
		return model.VesselData{}, err
	}
	if v.DesignDraft, err = floatKey(m, "design_draft"); err != nil {
		return model.VesselData{}, err
	}
	if v.DoubleEnded, err = boolKey(m, "double_ended"); err != nil {
		return model.VesselData{}, err
	}
	if v.NumberOfPropulsionEngines, err = intKey(m, "number_of_propulsion_engines"); err != nil {
		return model.VesselData{}, err
	}
	if v.PropulsionEnginePower, err = floatKey(m, "propulsion_engine_power"); err != nil {
		return model.VesselData{}, err
	}

	engineType, err := stringKey(m, "propulsion_engine_type")
	if err != nil {
		return model.VesselData{}, err
	}
	if v.PropulsionEngineType, err = model.ParseEngineType(engineType); err != nil {
		return model.VesselData{}, err
	}
	engineAge, err := stringKey(m, "propulsion_engine_age")
	if err != nil {
		return model.VesselData{}, err
	}
	if v.PropulsionEngineAge, err = model.ParseEngineAge(engineAge); err != nil {
		return model.VesselData{}, err
	}
	fuel, err := stringKey(m, "propulsion_engine_fuel_type")
	if err != nil {
		return model.VesselData{}, err
	}
	if v.PropulsionEngineFuelType, err = model.ParseFuelType(fuel); err != nil {
		return model.VesselData{}, err
	}
	vesselType, err := stringKey(m, "type")
	if err != nil {
		return model.VesselData{}, err
	}
	if v.Type, err = model.ParseVesselType(vesselType); err != nil {
		return model.VesselData{}, err
	}

	if raw, ok := m["size"]; ok && raw != nil {
		size, err := asFloat("size", raw)
		if err != nil {
			return model.VesselData{}, err
		}
		v.Size = &size
	}

	return model.NewVesselData(v)
}

// ProfileFromMap builds a validated VoyageProfile from a legacy record.
// Legs may be maps with distance/speed/draft keys or positional triples.
func ProfileFromMap(m map[string]any) (model.VoyageProfile, error) {
	var p model.VoyageProfile
	var err error

	if p.TimeAnchored, err = floatKey(m, "time_anchored"); err != nil {
		return model.VoyageProfile{}, err
	}
	if p.TimeAtBerth, err = floatKey(m, "time_at_berth"); err != nil {
		return model.VoyageProfile{}, err
	}
	if p.LegsManoeuvring, err = legsKey(m, "legs_manoeuvring"); err != nil {
		return model.VoyageProfile{}, err
	}
	if p.LegsAtSea, err = legsKey(m, "legs_at_sea"); err != nil {
		return model.VoyageProfile{}, err
	}
	return model.NewVoyageProfile(p)
}

func missingKey(key string) *model.ValidationError {
	return &model.ValidationError{Entity: "legacy record", Field: key, Value: nil, Detail: "required key is missing"}
}

func asFloat(key string, raw any) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, &model.ValidationError{Entity: "legacy record", Field: key, Value: raw,
		Detail: fmt.Sprintf("must be a number, not %T", raw)}
}

func floatKey(m map[string]any, key string) (float64, error) {
	raw, ok := m[key]
	if !ok {
		return 0, missingKey(key)
	}
	return asFloat(key, raw)
}

func intKey(m map[string]any, key string) (int, error) {
	raw, ok := m[key]
	if !ok {
		return 0, missingKey(key)
	}
	switch n := raw.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &model.ValidationError{Entity: "legacy record", Field: key, Value: raw,
		Detail: fmt.Sprintf("must be an integer, not %T", raw)}
}

func boolKey(m map[string]any, key string) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, missingKey(key)
	}
	b, ok := raw.(bool)
	if !ok {
		return false, &model.ValidationError{Entity: "legacy record", Field: key, Value: raw,
			Detail: fmt.Sprintf("must be a boolean, not %T", raw)}
	}
	return b, nil
}

func stringKey(m map[string]any, key string) (string, error) {
	raw, ok := m[key]
	if !ok {
		return "", missingKey(key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", &model.ValidationError{Entity: "legacy record", Field: key, Value: raw,
			Detail: fmt.Sprintf("must be a string, not %T", raw)}
	}
	return s, nil
}

func legsKey(m map[string]any, key string) ([]model.VoyageLeg, error) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return nil, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, &model.ValidationError{Entity: "legacy record", Field: key, Value: raw,
			Detail: fmt.Sprintf("must be a list of legs, not %T", raw)}
	}
	legs := make([]model.VoyageLeg, 0, len(items))
	for i, item := range items {
		field := fmt.Sprintf("%s[%d]", key, i)
		leg, err := asLeg(field, item)
		if err != nil {
			return nil, err
		}
		legs = append(legs, leg)
	}
	return legs, nil
}

func asLeg(field string, raw any) (model.VoyageLeg, error) {
	switch item := raw.(type) {
	case map[string]any:
		d, err := floatKey(item, "distance")
		if err != nil {
			return model.VoyageLeg{}, prefixField(field, err)
		}
		s, err := floatKey(item, "speed")
		if err != nil {
			return model.VoyageLeg{}, prefixField(field, err)
		}
		dr, err := floatKey(item, "draft")
		if err != nil {
			return model.VoyageLeg{}, prefixField(field, err)
		}
		return model.VoyageLeg{Distance: d, Speed: s, Draft: dr}, nil
	case []any:
		if len(item) != 3 {
			return model.VoyageLeg{}, &model.ValidationError{Entity: "legacy record", Field: field, Value: raw,
				Detail: "positional leg must have exactly 3 values (distance, speed, draft)"}
		}
		d, err := asFloat(field+".distance", item[0])
		if err != nil {
			return model.VoyageLeg{}, err
		}
		s, err := asFloat(field+".speed", item[1])
		if err != nil {
			return model.VoyageLeg{}, err
		}
		dr, err := asFloat(field+".draft", item[2])
		if err != nil {
			return model.VoyageLeg{}, err
		}
		return model.VoyageLeg{Distance: d, Speed: s, Draft: dr}, nil
	}
	return model.VoyageLeg{}, &model.ValidationError{Entity: "legacy record", Field: field, Value: raw,
		Detail: fmt.Sprintf("must be a leg map or a positional triple, not %T", raw)}
}

func prefixField(prefix string, err error) error {
	if verr, ok := err.(*model.ValidationError); ok {
		return &model.ValidationError{
			Entity: verr.Entity,
			Field:  prefix + "." + verr.Field,
			Value:  verr.Value,
			Detail: verr.Detail,
		}
	}
	return err
}
