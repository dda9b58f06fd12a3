package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the locator service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The HTTP port serving the API, health and metrics endpoints.
// - ProviderType: Geocoder used for address-only requests (google, nominatim).
// - APIKey: The Google Maps API key, sent with every places/directions call.
// - RateLimit: Requests per second allowed towards Google Maps.
// - UpstreamTimeout: Deadline applied to each outbound call.
// - ExitLookup: Whether lookups resolve a station exit.
// - Status: Where and how the line status is scraped.
type Config struct {
	Env             string        // Env is the current environment: local, dev, prod.
	Port            int           // Port is the API server port.
	ProviderType    string        // ProviderType specifies which geocoding provider to use
	APIKey          string        // The API key for accessing external services.
	RateLimit       int           // Requests per second towards Google Maps.
	UpstreamTimeout time.Duration // Deadline for a single outbound call.
	ShutdownTimeout time.Duration // Grace period for in-flight requests.
	ExitLookup      bool          // Resolve station exits.
	AddrPrefix      string        // Address prefix for more accurate geocoding
	Region          string        // Country code geocoding results are restricted to.
	Status          StatusConfig  // Status holds the status page settings
}

// StatusConfig describes the scraped status page.
type StatusConfig struct {
	URL      string
	Selector string
}

// MustLoad reads an optional .env file into the environment and builds the Config from
// MTR_* variables. It panics when a value cannot be parsed.
func MustLoad() *Config {
	envFile := ".env"
	if path, ok := os.LookupEnv("MTR_ENV_FILE"); ok {
		envFile = path
	}
	_ = godotenv.Load(envFile)

	v := viper.New()
	v.SetEnvPrefix("MTR")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("port", "8080")
	v.SetDefault("provider_type", "google")
	v.SetDefault("rate_limit", "50")
	v.SetDefault("upstream_timeout", "8s")
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("exit_lookup", "true")
	v.SetDefault("address_prefix", "Hong Kong, ")
	v.SetDefault("geocode_region", "hk")
	v.SetDefault("status_url", "")
	v.SetDefault("status_selector", "")

	port, err := strconv.Atoi(v.GetString("port"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("rate_limit"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer type")
	}

	upstreamTimeout, err := time.ParseDuration(v.GetString("upstream_timeout"))
	if err != nil {
		panic("failed to parse upstream timeout from configuration")
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString("shutdown_timeout"))
	if err != nil {
		panic("failed to parse shutdown timeout from configuration")
	}

	exitLookup, err := strconv.ParseBool(v.GetString("exit_lookup"))
	if err != nil {
		panic("failed to parse exit lookup flag from configuration, must be a boolean")
	}

	return &Config{
		Env:             v.GetString("env"),
		Port:            port,
		ProviderType:    v.GetString("provider_type"),
		APIKey:          v.GetString("provider_key"),
		RateLimit:       rateLimit,
		UpstreamTimeout: upstreamTimeout,
		ShutdownTimeout: shutdownTimeout,
		ExitLookup:      exitLookup,
		AddrPrefix:      v.GetString("address_prefix"),
		Region:          v.GetString("geocode_region"),
		Status: StatusConfig{
			URL:      v.GetString("status_url"),
			Selector: v.GetString("status_selector"),
		},
	}
}
