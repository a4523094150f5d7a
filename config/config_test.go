package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("EXPLORER_SERVER_PORT")
		os.Unsetenv("EXPLORER_SERVER_ENVIRONMENT")
		os.Unsetenv("EXPLORER_AMAZON_SEARCH_URL")
		os.Unsetenv("EXPLORER_AMAZON_DETAILS_URL")
		os.Unsetenv("EXPLORER_AMAZON_API_HOST")
		os.Unsetenv("EXPLORER_AMAZON_DEFAULT_KEY")
		os.Unsetenv("EXPLORER_CACHE_TTL")
		os.Unsetenv("EXPLORER_STORAGE_PATH")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		// Set required fallback key
		os.Setenv("EXPLORER_AMAZON_DEFAULT_KEY", "test-key")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Amazon.SearchURL != "https://real-time-amazon-data.p.rapidapi.com/search" {
			t.Errorf("Amazon.SearchURL = %s, want the rapidapi search endpoint", cfg.Amazon.SearchURL)
		}
		if cfg.Amazon.APIHost != "real-time-amazon-data.p.rapidapi.com" {
			t.Errorf("Amazon.APIHost = %s, want real-time-amazon-data.p.rapidapi.com", cfg.Amazon.APIHost)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.Storage.Path != "amazon-explorer.db" {
			t.Errorf("Storage.Path = %s, want amazon-explorer.db", cfg.Storage.Path)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("EXPLORER_SERVER_PORT", "9090")
		os.Setenv("EXPLORER_SERVER_ENVIRONMENT", "production")
		os.Setenv("EXPLORER_AMAZON_DEFAULT_KEY", "custom-api-key")
		os.Setenv("EXPLORER_AMAZON_API_HOST", "custom.host.example.com")
		os.Setenv("EXPLORER_CACHE_TTL", "1h")
		os.Setenv("EXPLORER_STORAGE_PATH", "/tmp/explorer-test.db")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Amazon.DefaultKey != "custom-api-key" {
			t.Errorf("Amazon.DefaultKey = %s, want custom-api-key", cfg.Amazon.DefaultKey)
		}
		if cfg.Amazon.APIHost != "custom.host.example.com" {
			t.Errorf("Amazon.APIHost = %s, want custom.host.example.com", cfg.Amazon.APIHost)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if cfg.Storage.Path != "/tmp/explorer-test.db" {
			t.Errorf("Storage.Path = %s, want /tmp/explorer-test.db", cfg.Storage.Path)
		}
	})

	t.Run("fails without a fallback API key", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Fatal("Load() error = nil, want missing default key error")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Amazon: AmazonConfig{
				SearchURL:  "https://example.com/search",
				DetailsURL: "https://example.com/product-details",
				APIHost:    "example.com",
				DefaultKey: "key",
			},
			Cache:   CacheConfig{TTL: 24 * time.Hour},
			Storage: StorageConfig{Path: "test.db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(c *Config) {}, false},
		{"missing default key", func(c *Config) { c.Amazon.DefaultKey = "" }, true},
		{"missing search url", func(c *Config) { c.Amazon.SearchURL = "" }, true},
		{"missing details url", func(c *Config) { c.Amazon.DetailsURL = "" }, true},
		{"missing api host", func(c *Config) { c.Amazon.APIHost = "" }, true},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Hour }, true},
		{"missing storage path", func(c *Config) { c.Storage.Path = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSupportedParams(t *testing.T) {
	if !IsSupportedCountry("US") {
		t.Error("IsSupportedCountry(US) = false, want true")
	}
	if IsSupportedCountry("ZZ") {
		t.Error("IsSupportedCountry(ZZ) = true, want false")
	}
	if !IsSupportedSort("RELEVANCE") {
		t.Error("IsSupportedSort(RELEVANCE) = false, want true")
	}
	if IsSupportedSort("CHEAPEST") {
		t.Error("IsSupportedSort(CHEAPEST) = true, want false")
	}
	if len(Countries) != 9 {
		t.Errorf("len(Countries) = %d, want 9", len(Countries))
	}
	if len(SortOptions) != 6 {
		t.Errorf("len(SortOptions) = %d, want 6", len(SortOptions))
	}
}
