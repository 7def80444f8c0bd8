package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromSinkRecordEstimation(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSink(reg)
	require.NoError(t, err)

	require.NoError(t, sink.RecordEstimation(Estimation{VesselType: "ferry-pax", FuelKg: 2195.3}))
	require.NoError(t, sink.RecordEstimation(Estimation{VesselType: "ferry-pax", FuelKg: 100}))
	require.NoError(t, sink.RecordEstimation(Estimation{VesselType: "oil-tanker", FuelKg: 50}))

	assert.InDelta(t, 2, testutil.ToFloat64(sink.estimations.WithLabelValues("ferry-pax")), 1e-9)
	assert.InDelta(t, 2295.3, testutil.ToFloat64(sink.fuelKg.WithLabelValues("ferry-pax")), 1e-9)
	assert.InDelta(t, 50, testutil.ToFloat64(sink.fuelKg.WithLabelValues("oil-tanker")), 1e-9)
}

func TestPromSinkReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewPromSink(reg)
	require.NoError(t, err)
	second, err := NewPromSink(reg)
	require.NoError(t, err)

	require.NoError(t, first.RecordEstimation(Estimation{VesselType: "yacht", FuelKg: 1}))
	require.NoError(t, second.RecordEstimation(Estimation{VesselType: "yacht", FuelKg: 1}))
	assert.InDelta(t, 2, testutil.ToFloat64(second.estimations.WithLabelValues("yacht")), 1e-9)
}

func TestNopSink(t *testing.T) {
	var s Sink = NopSink{}
	assert.NoError(t, s.RecordEstimation(Estimation{VesselType: "ferry-pax"}))
}
