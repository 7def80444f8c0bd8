package model

import "fmt"

// ValidationError reports a field or cross-field invariant violated while
// constructing an entity. It is always raised at construction time, never
// from inside a calculation.
type ValidationError struct {
	Entity string
	Field  string
	Value  any
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: field %q %s (got %v)", e.Entity, e.Field, e.Detail, e.Value)
}

func newRangeError(entity, field string, value, min, max float64) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Field:  field,
		Value:  value,
		Detail: fmt.Sprintf("must be between %v and %v", min, max),
	}
}

// ReferenceDataError signals that a valid enum combination has no entry in
// a reference table. This is a data-definition defect in the library, not
// bad user input, and is never silently defaulted.
type ReferenceDataError struct {
	Table string
	Key   string
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data: table %q has no entry for %s", e.Table, e.Key)
}

// DomainComputationError reports an arithmetic domain violation during a
// calculation, such as a propulsion load factor exceeding the installed
// engine power. The policy is to reject rather than clamp.
type DomainComputationError struct {
	Op     string
	Detail string
}

func (e *DomainComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Detail)
}
