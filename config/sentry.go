package config

import (
	"os"
	"strings"
)

// SentryConfig defines settings for Sentry error monitoring. Monitoring is
// disabled when DSN is empty.
type SentryConfig struct {
	DSN              string  `json:"dsn"`
	Environment      string  `json:"environment"`
	TracesSampleRate float64 `json:"traces_sample_rate"`
	Release          string  `json:"release"`
}

// EnvironmentOrDefault falls back to APP_ENV, then "production".
func (c SentryConfig) EnvironmentOrDefault() string {
	if c.Environment != "" {
		return c.Environment
	}
	if env := strings.ToLower(os.Getenv("APP_ENV")); env != "" {
		return env
	}
	return "production"
}
