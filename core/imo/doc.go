// Package imo estimates vessel fuel and energy consumption following the
// IMO Fourth GHG Study 2020 methodology. It combines a propulsion power
// model, auxiliary power tables keyed by vessel type and size, and
// specific fuel consumption curves keyed by engine type, age and fuel.
//
// All reference tables are read-only process-wide data; estimates are
// pure functions safe to call concurrently.
package imo
