package config

import (
	"strings"
	"time"
)

// APIConfig contains backend API configuration.
type APIConfig struct {
	// BaseURL is the base URL of the movie-catalog backend
	// (e.g. "http://10.0.2.2:8081" against a local Spring Boot instance).
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8081"`

	// Timeout bounds every HTTP call. The client adds no retries of its own;
	// a timed-out call is terminal for that user action.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.Timeout <= 0 {
		a.Timeout = 10 * time.Second
	}
}
