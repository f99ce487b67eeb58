// Package infra holds the adapters behind the core interfaces: the zerolog
// logger, the metrics sinks (Prometheus, InfluxDB), the MQTT publisher and
// Sentry monitoring. Nothing in core imports these packages.
package infra
