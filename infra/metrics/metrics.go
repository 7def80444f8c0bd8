// Package metrics records estimation events for observability. Sinks are
// optional; the CLI wires a Prometheus sink when enabled in the
// configuration, library callers normally use the Nop sink.
package metrics

// Estimation describes one completed consumption estimate.
type Estimation struct {
	VesselType string
	FuelKg     float64
	EnergyKWh  float64
}

// Sink records estimation events.
type Sink interface {
	RecordEstimation(e Estimation) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordEstimation(Estimation) error { return nil }
