package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v8"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	HTTP     HTTP
	Mongo    Mongo
	Log      Log
	Storage  string `env:"STORAGE" envDefault:"mongo"`
	Timezone string `env:"TIMEZONE"` // IANA name, empty means the process local zone
}

type HTTP struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Mongo struct {
	URI            string        `env:"MONGODB_URI"`
	Database       string        `env:"MONGODB_DATABASE" envDefault:"costmanager"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text or json
}

// Parse reads the configuration from the environment
func Parse() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	switch cfg.Storage {
	case StorageMongo:
		if cfg.Mongo.URI == "" {
			return nil, fmt.Errorf("config: MONGODB_URI is required for %s storage", StorageMongo)
		}
	case StorageMemory:
	default:
		return nil, fmt.Errorf("config: unknown STORAGE %q", cfg.Storage)
	}
	return &cfg, nil
}

// Location resolves Timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: TIMEZONE: %w", err)
	}
	return loc, nil
}
