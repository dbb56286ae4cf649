// Package factory wires storage, services and dependencies into an App.
package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/random"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/scoring"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/session"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage/memory"
	redisstorage "github.com/mcoot/yahtzee-scorekeeper/internal/storage/redis"
	"github.com/mcoot/yahtzee-scorekeeper/internal/testutil"
)

const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// ErrRedisConfigMissing is returned when redis storage is selected without connection settings
var ErrRedisConfigMissing = errors.New("redis storage selected without RedisConfig")

// App holds the wired scorekeeper components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock
	Random  random.Random

	ScoringService    *scoring.Service
	SessionController *session.Controller
}

// Config selects the storage backend and logger.
// An empty StorageType means in-memory storage; a nil Logger discards output.
type Config struct {
	Logger      *slog.Logger
	StorageType string
	RedisConfig *redisstorage.Config
}

// New builds an App using the real clock and crypto random source
func New(cfg Config) (*App, error) {
	store, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = testutil.NopLogger()
	}

	return assemble(store, clock.New(), random.New(), logger), nil
}

func newStorage(cfg Config) (storage.Storage, error) {
	switch cfg.StorageType {
	case "", StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, ErrRedisConfigMissing
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage type %q (want %q or %q)", cfg.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
}

// Close releases the storage connection, if the backend holds one
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func assemble(store storage.Storage, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	scorer := scoring.New()
	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		ScoringService:    scorer,
		SessionController: session.NewController(store, scorer, clk, rnd, logger),
	}
}
