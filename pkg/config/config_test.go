package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedPort  string
		expectedStore string
		expectedCap   int
	}{
		{
			name:          "defaults when nothing set",
			envVars:       map[string]string{},
			expectedPort:  "8000",
			expectedStore: "memory",
			expectedCap:   50,
		},
		{
			name:          "uses PORT env var when set",
			envVars:       map[string]string{"PORT": "3000"},
			expectedPort:  "3000",
			expectedStore: "memory",
			expectedCap:   50,
		},
		{
			name:          "store type is case insensitive",
			envVars:       map[string]string{"STORE_TYPE": "SQLite"},
			expectedPort:  "8000",
			expectedStore: "sqlite",
			expectedCap:   50,
		},
		{
			name:          "uses HISTORY_CAPACITY when set",
			envVars:       map[string]string{"HISTORY_CAPACITY": "120"},
			expectedPort:  "8000",
			expectedStore: "memory",
			expectedCap:   120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()

			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}
			if cfg.Store.Type != tt.expectedStore {
				t.Errorf("Store.Type = %v, want %v", cfg.Store.Type, tt.expectedStore)
			}
			if cfg.History.Capacity != tt.expectedCap {
				t.Errorf("History.Capacity = %v, want %v", cfg.History.Capacity, tt.expectedCap)
			}
		})
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.History.EvictBatch != 5 {
		t.Errorf("EvictBatch = %v, want 5", cfg.History.EvictBatch)
	}
	if cfg.History.Policy != "insertion" {
		t.Errorf("Policy = %v, want insertion", cfg.History.Policy)
	}
	if cfg.Store.SQLite.Path != "autoreader.db" {
		t.Errorf("SQLite.Path = %v, want autoreader.db", cfg.Store.SQLite.Path)
	}
	if cfg.Server.RateLimit != 20 || cfg.Server.RateBurst != 40 {
		t.Errorf("rate = %v/%v, want 20/40", cfg.Server.RateLimit, cfg.Server.RateBurst)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadFromEnv_InvalidNumber(t *testing.T) {
	os.Clearenv()
	os.Setenv("HISTORY_EVICT_BATCH", "not-a-number")
	os.Setenv("RATE_LIMIT", "fast")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	// Should use default value when parsing fails
	if cfg.History.EvictBatch != 5 {
		t.Errorf("EvictBatch = %v, want %v (default)", cfg.History.EvictBatch, 5)
	}
	if cfg.Server.RateLimit != 20 {
		t.Errorf("RateLimit = %v, want %v (default)", cfg.Server.RateLimit, 20)
	}
}

func validConfig() Config {
	return Config{
		Server:  ServerConfig{Port: "8000", RateLimit: 20, RateBurst: 40},
		Store:   StoreConfig{Type: "memory"},
		History: HistoryConfig{Capacity: 50, EvictBatch: 5, Policy: "insertion"},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *Config) { c.Server.RateLimit = 0 },
			wantErr: true,
			errMsg:  "rate limit must be positive",
		},
		{
			name:    "invalid store type",
			mutate:  func(c *Config) { c.Store.Type = "invalid" },
			wantErr: true,
			errMsg:  "store type must be 'memory', 'redis' or 'sqlite'",
		},
		{
			name: "redis type with empty address",
			mutate: func(c *Config) {
				c.Store.Type = "redis"
				c.Store.Redis.Address = ""
			},
			wantErr: true,
			errMsg:  "redis address cannot be empty when using redis store",
		},
		{
			name: "sqlite type with empty path",
			mutate: func(c *Config) {
				c.Store.Type = "sqlite"
				c.Store.SQLite.Path = ""
			},
			wantErr: true,
			errMsg:  "sqlite path cannot be empty when using sqlite store",
		},
		{
			name:    "zero history capacity",
			mutate:  func(c *Config) { c.History.Capacity = 0 },
			wantErr: true,
			errMsg:  "history capacity must be at least 1",
		},
		{
			name:    "unknown history policy",
			mutate:  func(c *Config) { c.History.Policy = "fifo" },
			wantErr: true,
			errMsg:  "history policy must be 'insertion' or 'lru'",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log format must be 'text' or 'json'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && tt.errMsg != "" && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}
