package model

import (
	"errors"
	"testing"
)

func TestParseRoundTrips(t *testing.T) {
	for _, v := range VesselTypes {
		got, err := ParseVesselType(string(v))
		if err != nil || got != v {
			t.Fatalf("ParseVesselType(%q) = %v, %v", v, got, err)
		}
	}
	for _, f := range FuelTypes {
		got, err := ParseFuelType(string(f))
		if err != nil || got != f {
			t.Fatalf("ParseFuelType(%q) = %v, %v", f, got, err)
		}
	}
	for _, e := range EngineTypes {
		got, err := ParseEngineType(string(e))
		if err != nil || got != e {
			t.Fatalf("ParseEngineType(%q) = %v, %v", e, got, err)
		}
	}
	for _, a := range EngineAges {
		got, err := ParseEngineAge(string(a))
		if err != nil || got != a {
			t.Fatalf("ParseEngineAge(%q) = %v, %v", a, got, err)
		}
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	var verr *ValidationError
	if _, err := ParseVesselType("submarine"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := ParseFuelType("coal"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := ParseEngineType("outboard"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := ParseEngineAge("new"); !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSizeOptional(t *testing.T) {
	optional := map[VesselType]bool{
		Yacht: true, ServiceTug: true, MiscFishing: true,
		Offshore: true, ServiceOther: true, MiscOther: true,
	}
	for _, v := range VesselTypes {
		if v.SizeOptional() != optional[v] {
			t.Fatalf("SizeOptional(%q) = %v", v, v.SizeOptional())
		}
	}
}
