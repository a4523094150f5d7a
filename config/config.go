package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Amazon  AmazonConfig
	Cache   CacheConfig
	Storage StorageConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AmazonConfig holds the Amazon API endpoints and credentials
type AmazonConfig struct {
	SearchURL  string `mapstructure:"search_url"`
	DetailsURL string `mapstructure:"details_url"`
	APIHost    string `mapstructure:"api_host"`
	DefaultKey string `mapstructure:"default_key"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// StorageConfig holds the persistent key-value store location
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/amazon-explorer/")

	// Environment variable settings
	v.SetEnvPrefix("EXPLORER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Amazon API defaults
	v.SetDefault("amazon.search_url", "https://real-time-amazon-data.p.rapidapi.com/search")
	v.SetDefault("amazon.details_url", "https://real-time-amazon-data.p.rapidapi.com/product-details")
	v.SetDefault("amazon.api_host", "real-time-amazon-data.p.rapidapi.com")
	// Registered empty so the env override is visible to Unmarshal; validate
	// rejects a missing key.
	v.SetDefault("amazon.default_key", "")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")

	// Storage defaults
	v.SetDefault("storage.path", "amazon-explorer.db")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Amazon.DefaultKey == "" {
		return fmt.Errorf("fallback API key is required (set EXPLORER_AMAZON_DEFAULT_KEY)")
	}

	if config.Amazon.SearchURL == "" || config.Amazon.DetailsURL == "" {
		return fmt.Errorf("Amazon API endpoints are required")
	}

	if config.Amazon.APIHost == "" {
		return fmt.Errorf("Amazon API host is required")
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	if config.Storage.Path == "" {
		return fmt.Errorf("storage path is required")
	}

	return nil
}
