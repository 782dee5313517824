package golocale

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Runtime environments recognized by the registry and the autosave gate.
const (
	// EnvProduction is the only environment where cache-aside reads are honored.
	EnvProduction = "production"
	// EnvLocal is the designated low-risk environment where autosave may run.
	EnvLocal = "local"
)

// Config enumerates every recognized option of the resolution engine.
type Config struct {
	// Environment gates cache usage and the autosave policy.
	Environment string `env:"GOLOCALE_ENV" envDefault:"production"`

	Cache CacheConfig `envPrefix:"GOLOCALE_CACHE_"`
	DB    DBConfig    `envPrefix:"GOLOCALE_DB_"`
}

// CacheConfig controls the cache layer.
type CacheConfig struct {
	Enabled bool `env:"ENABLED" envDefault:"true"`

	// Store names the cache backend to use ("memory", "redis", "ristretto").
	Store string `env:"STORE" envDefault:"memory"`

	// Lifetime is the cache entry lifetime in minutes.
	Lifetime int `env:"LIFETIME" envDefault:"1440"`
}

// DBConfig controls the durable store.
type DBConfig struct {
	// Connection is the DSN handed to the store backend.
	Connection string `env:"CONNECTION"`

	// TextsTable names the table holding text rows. It also seeds the
	// per-locale cache entry name, so changing it invalidates cached snapshots.
	TextsTable string `env:"TEXTS_TABLE" envDefault:"texts"`

	// Autosave permits missing-key reconciliation (see AutosaveAllowed).
	Autosave bool `env:"AUTOSAVE" envDefault:"false"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		Environment: EnvProduction,
		Cache: CacheConfig{
			Enabled:  true,
			Store:    "memory",
			Lifetime: 1440,
		},
		DB: DBConfig{
			TextsTable: "texts",
		},
	}
}

// FromEnv builds a Config from GOLOCALE_* environment variables.
func FromEnv() (Config, error) {
	return env.ParseAs[Config]()
}

// TTL converts the configured lifetime to a duration.
func (c CacheConfig) TTL() time.Duration {
	if c.Lifetime <= 0 {
		return 0
	}
	return time.Duration(c.Lifetime) * time.Minute
}
