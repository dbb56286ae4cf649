package storage

import (
	"context"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// Storage defines the interface for session persistence
type Storage interface {
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, code model.SessionCode) (*model.GameSession, error)
	SessionExists(ctx context.Context, code model.SessionCode) (bool, error)
}
