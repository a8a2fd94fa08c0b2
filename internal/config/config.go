// Package config provides functionality for managing configuration options
// for the client using command-line flags, a .env file, and environment
// variables.
package config

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Options holds the configuration values for the client.
type Options struct {
	// BaseURL is the referral API base endpoint.
	BaseURL string

	// Language is the startup display language code.
	Language string

	// LogLevel is the zap log level ("debug", "info", "warn", "error").
	LogLevel string

	// HTTPTimeout bounds every API call.
	HTTPTimeout time.Duration
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.BaseURL, "url", "http://localhost:8080", "referral API base URL")
	flag.StringVar(&options.Language, "lang", "en", "display language: en, es, fr, ht")
	flag.StringVar(&options.LogLevel, "log-level", "info", "log level")
	flag.DurationVar(&options.HTTPTimeout, "timeout", 10*time.Second, "HTTP request timeout")
}

// Parse parses command-line flags, the optional .env file, and environment
// variables to set configuration values. Environment variables win over
// flags, matching how the deployed app is configured.
func Parse() *Options {
	flag.Parse()

	_ = godotenv.Load()

	if v := getEnv("API_BASE_URL", ""); v != "" {
		options.BaseURL = v
	}
	if v := getEnv("LANGUAGE", ""); v != "" {
		options.Language = v
	}
	if v := getEnv("LOG_LEVEL", ""); v != "" {
		options.LogLevel = v
	}
	if v := getEnv("HTTP_TIMEOUT_SECONDS", ""); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			options.HTTPTimeout = time.Duration(parsed) * time.Second
		}
	}

	return options
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
