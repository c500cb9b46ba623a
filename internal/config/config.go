// Package config provides runtime configuration values for the marketplace driver.
package config

import (
	"os"
	"strconv"
)

// Config holds logging, telemetry and scenario knobs.
type Config struct {
	ServiceName   string
	Env           string
	LogLevel      string
	LogOutput     string
	LogFile       string
	PaymentMethod string
	MetricsDump   bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolenv(key string, def bool) bool {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		ServiceName:   getenv("SERVICE_NAME", "minishop-marketplace"),
		Env:           getenv("ENV", "dev"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogOutput:     getenv("LOG_OUTPUT", "stderr"),
		LogFile:       getenv("LOG_FILE", ""),
		PaymentMethod: getenv("PAYMENT_METHOD", "Cash"),
		MetricsDump:   boolenv("METRICS_DUMP", false),
	}
}
