// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// GeocoderConfig provides settings for the geocoding client.
type GeocoderConfig interface {
	GetNominatimBaseURL() string
	GetUserAgent() string
	GetUpstreamTimeout() time.Duration
}

// ProviderConfig provides settings for the POI provider client.
type ProviderConfig interface {
	GetPOIProvider() string
	GetOverpassBaseURL() string
	GetFoursquareBaseURL() string
	GetFoursquareAPIKey() string
	GetUserAgent() string
	GetUpstreamTimeout() time.Duration
}

// Provider kinds accepted in POI_PROVIDER.
const (
	ProviderOverpass   = "overpass"
	ProviderFoursquare = "foursquare"
)

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	RateLimitRPS      float64
	RateLimitBurst    int
	POIProvider       string
	NominatimBaseURL  string
	OverpassBaseURL   string
	FoursquareBaseURL string
	FoursquareAPIKey  string
	UserAgent         string
	UpstreamTimeout   time.Duration
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// GeocoderConfig implementation
func (c *Config) GetNominatimBaseURL() string      { return c.NominatimBaseURL }
func (c *Config) GetUserAgent() string             { return c.UserAgent }
func (c *Config) GetUpstreamTimeout() time.Duration { return c.UpstreamTimeout }

// ProviderConfig implementation
func (c *Config) GetPOIProvider() string       { return c.POIProvider }
func (c *Config) GetOverpassBaseURL() string   { return c.OverpassBaseURL }
func (c *Config) GetFoursquareBaseURL() string { return c.FoursquareBaseURL }
func (c *Config) GetFoursquareAPIKey() string  { return c.FoursquareAPIKey }

// Load reads configuration from environment variables.
//
// A missing FOURSQUARE_API_KEY is deliberately not a Load error: the
// provider client reports it as a typed missing-credential failure before
// any network call, so the process can still serve its health endpoint.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		RateLimitRPS:      mustFloat64(getEnv("RATE_LIMIT_RPS", "5")),
		RateLimitBurst:    mustInt(getEnv("RATE_LIMIT_BURST", "10")),
		POIProvider:       strings.ToLower(getEnv("POI_PROVIDER", ProviderOverpass)),
		NominatimBaseURL:  getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OverpassBaseURL:   getEnv("OVERPASS_BASE_URL", "https://overpass-api.de/api/interpreter"),
		FoursquareBaseURL: getEnv("FOURSQUARE_BASE_URL", "https://api.foursquare.com/v3"),
		FoursquareAPIKey:  getEnv("FOURSQUARE_API_KEY", ""),
		UserAgent:         getEnv("HTTP_USER_AGENT", "SpinToEat/2.0 (+https://github.com/rehabcade/spin-to-eat-v2)"),
		UpstreamTimeout:   mustDuration(getEnv("UPSTREAM_TIMEOUT", "30s")),
	}

	if cfg.POIProvider != ProviderOverpass && cfg.POIProvider != ProviderFoursquare {
		return nil, fmt.Errorf("POI_PROVIDER must be %q or %q, got %q", ProviderOverpass, ProviderFoursquare, cfg.POIProvider)
	}
	if cfg.UpstreamTimeout <= 0 {
		return nil, fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat64(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
