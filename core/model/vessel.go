package model

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// VesselData holds the vessel characteristics needed for consumption
// estimation. Bounds follow the ranges accepted by the IMO Fourth GHG
// Study regressions; a value outside them fails construction.
//
// Instances are plain values and are never mutated after construction, so
// they can be shared and reused across any number of calculations.
type VesselData struct {
	Length      float64 `json:"length" validate:"gte=5,lte=450"`            // m
	Beam        float64 `json:"beam" validate:"gte=1.5,lte=70"`             // m
	DesignSpeed float64 `json:"design_speed" validate:"gte=1,lte=50"`       // kn
	DesignDraft float64 `json:"design_draft" validate:"gte=0.1,lte=25"`     // m
	DoubleEnded bool    `json:"double_ended"`

	NumberOfPropulsionEngines int        `json:"number_of_propulsion_engines" validate:"gte=1,lte=4"`
	PropulsionEnginePower     float64    `json:"propulsion_engine_power" validate:"gte=5,lte=60000"` // kW per engine
	PropulsionEngineType      EngineType `json:"propulsion_engine_type"`
	PropulsionEngineAge       EngineAge  `json:"propulsion_engine_age"`
	PropulsionEngineFuelType  FuelType   `json:"propulsion_engine_fuel_type"`

	Type VesselType `json:"type"`
	// Size is the gross tonnage, deadweight or capacity depending on the
	// vessel type. Optional for working vessels (see VesselType.SizeOptional).
	Size *float64 `json:"size,omitempty"`
}

var vesselValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewVesselData validates the given vessel and returns it. Validation is
// fail-fast: the first violated field is reported with its bounds and the
// offending value.
func NewVesselData(v VesselData) (VesselData, error) {
	if err := v.Validate(); err != nil {
		return VesselData{}, err
	}
	return v, nil
}

// Validate checks every field against its documented bounds, then the
// enumerated fields against their closed sets, then cross-field rules.
func (v VesselData) Validate() error {
	if err := vesselValidate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if ok := asValidationErrors(err, &verrs); ok && len(verrs) > 0 {
			return fieldError("VesselData", verrs[0])
		}
		return err
	}
	if _, err := ParseEngineType(string(v.PropulsionEngineType)); err != nil {
		return &ValidationError{Entity: "VesselData", Field: "propulsion_engine_type", Value: v.PropulsionEngineType, Detail: "is not a supported engine type"}
	}
	if _, err := ParseEngineAge(string(v.PropulsionEngineAge)); err != nil {
		return &ValidationError{Entity: "VesselData", Field: "propulsion_engine_age", Value: v.PropulsionEngineAge, Detail: "is not a supported engine age bracket"}
	}
	if _, err := ParseFuelType(string(v.PropulsionEngineFuelType)); err != nil {
		return &ValidationError{Entity: "VesselData", Field: "propulsion_engine_fuel_type", Value: v.PropulsionEngineFuelType, Detail: "is not a supported fuel type"}
	}
	if _, err := ParseVesselType(string(v.Type)); err != nil {
		return &ValidationError{Entity: "VesselData", Field: "type", Value: v.Type, Detail: "is not a supported vessel type"}
	}
	if v.Size == nil {
		if !v.Type.SizeOptional() {
			return &ValidationError{Entity: "VesselData", Field: "size", Value: nil,
				Detail: fmt.Sprintf("is required for vessel type %q", v.Type)}
		}
	} else if *v.Size <= 0 || *v.Size > 500_000 {
		return &ValidationError{Entity: "VesselData", Field: "size", Value: *v.Size, Detail: "must be greater than 0 and at most 500000"}
	}
	return nil
}

// TotalInstalledPower returns the combined rated power of all propulsion
// engines in kW.
func (v VesselData) TotalInstalledPower() float64 {
	return float64(v.NumberOfPropulsionEngines) * v.PropulsionEnginePower
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

func fieldError(entity string, fe validator.FieldError) *ValidationError {
	var detail string
	switch fe.Tag() {
	case "gte":
		detail = fmt.Sprintf("must be >= %s", fe.Param())
	case "lte":
		detail = fmt.Sprintf("must be <= %s", fe.Param())
	default:
		detail = fmt.Sprintf("failed %q validation", fe.Tag())
	}
	return &ValidationError{Entity: entity, Field: fe.Field(), Value: fe.Value(), Detail: detail}
}
