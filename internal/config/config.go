package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Values come from the
// optional YAML file, overridden by environment variables.
type Config struct {
	Port      string `yaml:"port" validate:"required"`
	DBPath    string `yaml:"db_path" validate:"required"`
	ZonesPath string `yaml:"zones_path"`
	JWTSecret string `yaml:"jwt_secret" validate:"required"`

	// CacheEntries bounds the result cache; 0 disables caching.
	CacheEntries int `yaml:"cache_entries" validate:"gte=0"`
	// CacheTTLSeconds bounds staleness against out-of-band refreshes.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" validate:"gt=0"`

	// QueryTimeoutSeconds is the wall-clock budget per query.
	QueryTimeoutSeconds int `yaml:"query_timeout_seconds" validate:"gt=0"`
	// MaxGroups is the distinct grouping-key budget per query.
	MaxGroups int `yaml:"max_groups" validate:"gt=0"`

	// Minimum trips for a route to appear in rankings; the monthly
	// variant scans twelve times the data so its floor is higher.
	MinRouteTrips        int `yaml:"min_route_trips" validate:"gte=0"`
	MinMonthlyRouteTrips int `yaml:"min_monthly_route_trips" validate:"gte=0"`
	// TopN is the ranking size for the high-impact endpoints.
	TopN int `yaml:"top_n" validate:"gt=0"`

	RateLimit         int `yaml:"rate_limit" validate:"gt=0"`
	RateWindowSeconds int `yaml:"rate_window_seconds" validate:"gt=0"`
}

// CacheTTL returns the cache TTL as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// QueryTimeout returns the per-query budget as a duration.
func (c *Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutSeconds) * time.Second
}

// RateWindow returns the rate-limit window as a duration.
func (c *Config) RateWindow() time.Duration {
	return time.Duration(c.RateWindowSeconds) * time.Second
}

func defaults() *Config {
	return &Config{
		Port:                 ":8080",
		DBPath:               "./data/taxi_data.db",
		ZonesPath:            "./data/taxi_zones.geojson",
		JWTSecret:            "change-me-in-production",
		CacheEntries:         256,
		CacheTTLSeconds:      300,
		QueryTimeoutSeconds:  10,
		MaxGroups:            100000,
		MinRouteTrips:        5,
		MinMonthlyRouteTrips: 20,
		TopN:                 10,
		RateLimit:            120,
		RateWindowSeconds:    60,
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (skipped when absent), then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if zonesPath := os.Getenv("ZONES_PATH"); zonesPath != "" {
		cfg.ZonesPath = zonesPath
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWTSecret = secret
	}
	envInt("CACHE_ENTRIES", &cfg.CacheEntries)
	envInt("CACHE_TTL_SECONDS", &cfg.CacheTTLSeconds)
	envInt("QUERY_TIMEOUT_SECONDS", &cfg.QueryTimeoutSeconds)
	envInt("MAX_GROUPS", &cfg.MaxGroups)
	envInt("MIN_ROUTE_TRIPS", &cfg.MinRouteTrips)
	envInt("MIN_MONTHLY_ROUTE_TRIPS", &cfg.MinMonthlyRouteTrips)
	envInt("TOP_N", &cfg.TopN)
	envInt("RATE_LIMIT", &cfg.RateLimit)
	envInt("RATE_WINDOW_SECONDS", &cfg.RateWindowSeconds)
}

func envInt(name string, dst *int) {
	if raw := os.Getenv(name); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			*dst = n
		}
	}
}
