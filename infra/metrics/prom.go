package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PromSink records estimation events in Prometheus metrics.
type PromSink struct {
	estimations *prometheus.CounterVec
	fuelKg      *prometheus.CounterVec
}

// NewPromSink registers estimation metrics on the provided Prometheus
// registerer. If reg is nil, the default registerer is used. If the
// collectors are already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	estimations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cetus_estimations_total",
		Help: "Total number of consumption estimations performed",
	}, []string{"vessel_type"})
	fuelKg := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cetus_estimated_fuel_kg_total",
		Help: "Cumulative estimated fuel mass in kg",
	}, []string{"vessel_type"})

	if err := reg.Register(estimations); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			estimations = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(fuelKg); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			fuelKg = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{estimations: estimations, fuelKg: fuelKg}, nil
}

// RecordEstimation increments the estimation counters.
func (s *PromSink) RecordEstimation(e Estimation) error {
	s.estimations.WithLabelValues(e.VesselType).Inc()
	s.fuelKg.WithLabelValues(e.VesselType).Add(e.FuelKg)
	return nil
}

// StartPromServer exposes the default Prometheus registry on the given
// port. It blocks until the server stops.
func StartPromServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
