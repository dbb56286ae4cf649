package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage"
)

// Storage keeps each session as a Redis hash that expires after SessionTTL of inactivity
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient wraps an existing client; tests point it at miniredis
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

var _ storage.Storage = (*Storage)(nil)

// SaveSession replaces the session hash and refreshes its TTL in one transaction
func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	fields, err := encodeSession(session)
	if err != nil {
		return err
	}

	key := sessionKey(session.Code)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, fields)
		if s.cfg.SessionTTL > 0 {
			pipe.Expire(ctx, key, s.cfg.SessionTTL)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.Code, err)
	}
	return nil
}

// GetSession loads a session; a missing or expired key is ErrSessionNotFound
func (s *Storage) GetSession(ctx context.Context, code model.SessionCode) (*model.GameSession, error) {
	fields, err := s.client.HGetAll(ctx, sessionKey(code)).Result()
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", code, err)
	}
	if len(fields) == 0 {
		return nil, model.ErrSessionNotFound
	}
	return decodeSession(fields)
}

// SessionExists reports whether a session key is live
func (s *Storage) SessionExists(ctx context.Context, code model.SessionCode) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("check session %s: %w", code, err)
	}
	return n > 0, nil
}
