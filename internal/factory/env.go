package factory

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	redisstorage "github.com/mcoot/yahtzee-scorekeeper/internal/storage/redis"
)

// StorageEnv is the storage selection read from the environment
type StorageEnv struct {
	StorageType string        `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"REDIS_URL"`
	SessionTTL  time.Duration `env:"SESSION_TTL"`
}

// ConfigFromEnv builds a factory Config from STORAGE_TYPE, REDIS_URL and SESSION_TTL
func ConfigFromEnv() (Config, error) {
	var e StorageEnv
	if err := env.Parse(&e); err != nil {
		return Config{}, fmt.Errorf("parse storage env: %w", err)
	}
	return e.Config()
}

// Config converts the environment values into a factory Config
func (e StorageEnv) Config() (Config, error) {
	cfg := Config{StorageType: e.StorageType}

	if e.StorageType != StorageTypeRedis {
		return cfg, nil
	}

	if e.RedisURL == "" {
		return Config{}, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
	}

	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = e.RedisURL
	if e.SessionTTL > 0 {
		redisCfg.SessionTTL = e.SessionTTL
	}
	cfg.RedisConfig = &redisCfg
	return cfg, nil
}
