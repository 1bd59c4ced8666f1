// Package config loads service configuration from defaults, an optional
// config file and environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"port"`
	Environment  string `mapstructure:"environment"`
	StoreDriver  string `mapstructure:"store_driver"` // memory, sqlite, postgres, firestore
	StoreDSN     string `mapstructure:"store_dsn"`
	FirestoreID  string `mapstructure:"firestore_project_id"`
	CacheMaxCost int64  `mapstructure:"cache_max_cost"` // bytes, 0 disables the record cache
	LogLevel     string `mapstructure:"log_level"`
	LogFile      string `mapstructure:"log_file"`
	RateLimitMax int    `mapstructure:"rate_limit_max"` // requests per minute per client
	CORSOrigins  string `mapstructure:"cors_origins"`
}

var defaults = map[string]interface{}{
	"port":                 "8080",
	"environment":          "production",
	"store_driver":         "memory",
	"store_dsn":            "",
	"firestore_project_id": "",
	"cache_max_cost":       32 << 20,
	"log_level":            "info",
	"log_file":             "",
	"rate_limit_max":       100,
	"cors_origins":         "*",
}

// Load reads configuration. configFile may be empty; environment variables
// such as PORT or STORE_DRIVER override both defaults and the file.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", configFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("port must be set")
	}
	switch c.StoreDriver {
	case "memory":
	case "sqlite", "postgres":
		if c.StoreDSN == "" {
			return fmt.Errorf("store_dsn is required for the %s driver", c.StoreDriver)
		}
	case "firestore":
		if c.FirestoreID == "" {
			return fmt.Errorf("firestore_project_id is required for the firestore driver")
		}
	default:
		return fmt.Errorf("unknown store_driver %q", c.StoreDriver)
	}
	if c.CacheMaxCost < 0 {
		return fmt.Errorf("cache_max_cost must be non-negative")
	}
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("rate_limit_max must be positive")
	}
	return nil
}

// IsDevelopment reports whether the service runs outside production.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}
