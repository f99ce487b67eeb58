// Package metrics defines the sinks that observe completed speed sweeps.
// Implementations live in infra/metrics and infra/mqtt and register
// themselves by type name; NewMetricsSink builds the configured set and
// fans out through a MultiSink when more than one is configured.
package metrics
