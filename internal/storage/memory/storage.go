package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Sessions are stored as snapshots so callers never share mutable state.
type Storage struct {
	mu       sync.RWMutex
	sessions map[model.SessionCode][]byte
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionCode][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Code] = data
	return nil
}

func (s *Storage) GetSession(ctx context.Context, code model.SessionCode) (*model.GameSession, error) {
	s.mu.RLock()
	data, ok := s.sessions[code]
	s.mu.RUnlock()
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) SessionExists(ctx context.Context, code model.SessionCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.sessions[code]
	return ok, nil
}
