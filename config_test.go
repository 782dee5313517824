package golocale

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Environment != EnvProduction {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvProduction)
	}
	if !cfg.Cache.Enabled {
		t.Error("Cache.Enabled should default to true")
	}
	if cfg.Cache.Store != "memory" {
		t.Errorf("Cache.Store = %q, want %q", cfg.Cache.Store, "memory")
	}
	if cfg.Cache.Lifetime != 1440 {
		t.Errorf("Cache.Lifetime = %d, want 1440", cfg.Cache.Lifetime)
	}
	if cfg.DB.TextsTable != "texts" {
		t.Errorf("DB.TextsTable = %q, want %q", cfg.DB.TextsTable, "texts")
	}
	if cfg.DB.Autosave {
		t.Error("DB.Autosave should default to false")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GOLOCALE_ENV", "local")
	t.Setenv("GOLOCALE_CACHE_ENABLED", "false")
	t.Setenv("GOLOCALE_CACHE_STORE", "redis")
	t.Setenv("GOLOCALE_CACHE_LIFETIME", "60")
	t.Setenv("GOLOCALE_DB_CONNECTION", "file:texts.db")
	t.Setenv("GOLOCALE_DB_TEXTS_TABLE", "app_texts")
	t.Setenv("GOLOCALE_DB_AUTOSAVE", "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}

	if cfg.Environment != EnvLocal {
		t.Errorf("Environment = %q, want %q", cfg.Environment, EnvLocal)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false")
	}
	if cfg.Cache.Store != "redis" {
		t.Errorf("Cache.Store = %q, want %q", cfg.Cache.Store, "redis")
	}
	if cfg.Cache.Lifetime != 60 {
		t.Errorf("Cache.Lifetime = %d, want 60", cfg.Cache.Lifetime)
	}
	if cfg.DB.Connection != "file:texts.db" {
		t.Errorf("DB.Connection = %q, want %q", cfg.DB.Connection, "file:texts.db")
	}
	if cfg.DB.TextsTable != "app_texts" {
		t.Errorf("DB.TextsTable = %q, want %q", cfg.DB.TextsTable, "app_texts")
	}
	if !cfg.DB.Autosave {
		t.Error("DB.Autosave should be true")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() error: %v", err)
	}
	if cfg.Environment != EnvProduction {
		t.Errorf("Environment = %q, want default %q", cfg.Environment, EnvProduction)
	}
	if cfg.Cache.Lifetime != 1440 {
		t.Errorf("Cache.Lifetime = %d, want default 1440", cfg.Cache.Lifetime)
	}
}

func TestCacheConfig_TTL(t *testing.T) {
	tests := []struct {
		lifetime int
		expected time.Duration
	}{
		{1440, 24 * time.Hour},
		{60, time.Hour},
		{0, 0},
		{-5, 0},
	}

	for _, tt := range tests {
		c := CacheConfig{Lifetime: tt.lifetime}
		if got := c.TTL(); got != tt.expected {
			t.Errorf("TTL() with lifetime %d = %v, want %v", tt.lifetime, got, tt.expected)
		}
	}
}
