package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) newSession(code model.SessionCode) *model.GameSession {
	session := model.NewGameSession(code, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	_, err := session.AddPlayer("Alice")
	s.Require().NoError(err)
	_, err = session.AddPlayer("Bob")
	s.Require().NoError(err)
	s.Require().NoError(session.Start())
	_, err = session.SetScore("Bob", model.CategoryFullHouse, "25")
	s.Require().NoError(err)
	return session
}

func (s *StorageSuite) TestSaveAndGetSession() {
	session := s.newSession("ABC123")

	err := s.storage.SaveSession(s.ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(session.Code, retrieved.Code)
	s.Equal(model.PhaseInProgress, retrieved.Phase)
	s.Equal(session.Players, retrieved.Players)
	s.Equal(model.NewScore(25), retrieved.Score("Bob", model.CategoryFullHouse))
	s.Equal(model.Unset, retrieved.Score("Alice", model.CategoryFullHouse))
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *StorageSuite) TestGetSessionReturnsCopy() {
	session := s.newSession("ABC123")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	_, err = retrieved.SetScore("Alice", model.CategoryAces, "4")
	s.Require().NoError(err)

	again, err := s.storage.GetSession(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.Unset, again.Score("Alice", model.CategoryAces))
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSessionExists() {
	exists, err := s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("ABC123")))

	exists, err = s.storage.SessionExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}
