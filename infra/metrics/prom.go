package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coremetrics "github.com/kilianp07/evtrip/core/metrics"
)

// PromSink exposes sweep outcomes as Prometheus metrics.
type PromSink struct {
	sweeps       *prometheus.CounterVec
	fastestSpeed *prometheus.GaugeVec
	fastestTime  *prometheus.GaugeVec
	elapsed      prometheus.Histogram
}

// NewPromSink registers sweep metrics on the default Prometheus registerer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Collectors
// that are already registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	sweeps := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "evtrip_sweeps_total",
		Help: "Total number of completed speed sweeps",
	}, []string{"vehicle"})
	fastestSpeed := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evtrip_fastest_speed_kmh",
		Help: "Cruising speed with the lowest total trip time in the last sweep",
	}, []string{"vehicle"})
	fastestTime := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "evtrip_fastest_trip_hours",
		Help: "Lowest total trip time found in the last sweep",
	}, []string{"vehicle"})
	elapsed := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "evtrip_sweep_duration_seconds",
		Help:    "Wall time spent evaluating a sweep",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})

	var err error
	if sweeps, err = register(reg, sweeps); err != nil {
		return nil, err
	}
	if fastestSpeed, err = register(reg, fastestSpeed); err != nil {
		return nil, err
	}
	if fastestTime, err = register(reg, fastestTime); err != nil {
		return nil, err
	}
	if elapsed, err = register(reg, elapsed); err != nil {
		return nil, err
	}
	return &PromSink{sweeps: sweeps, fastestSpeed: fastestSpeed, fastestTime: fastestTime, elapsed: elapsed}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSweep updates the counters and gauges for ev.
func (s *PromSink) RecordSweep(ev coremetrics.SweepEvent) error {
	s.sweeps.WithLabelValues(ev.Vehicle).Inc()
	s.fastestSpeed.WithLabelValues(ev.Vehicle).Set(ev.FastestSpeedKmh)
	s.fastestTime.WithLabelValues(ev.Vehicle).Set(ev.FastestTimeH)
	s.elapsed.Observe(ev.Elapsed.Seconds())
	return nil
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler { return promhttp.Handler() }
