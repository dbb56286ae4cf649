package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(code model.SessionCode) *model.GameSession {
	session := model.NewGameSession(code, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	_, err := session.AddPlayer("Alice")
	s.Require().NoError(err)
	s.Require().NoError(session.Start())
	_, err = session.SetScore("Alice", model.CategorySmallStraight, "30")
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
	s.Equal(session.Phase, retrieved.Phase)
	s.Equal(session.Players, retrieved.Players)
	s.Equal(model.NewScore(30), retrieved.Score("Alice", model.CategorySmallStraight))
}

func (s *StorageSuite) TestSessionKeyAndTTL() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("ABC123")))

	s.True(s.mini.Exists("yzscore:session:ABC123"))
	s.Equal(time.Hour, s.mini.TTL("yzscore:session:ABC123"))
}

func (s *StorageSuite) TestSessionExpires() {
	s.Require().NoError(s.storage.SaveSession(s.ctx, s.newSession("ABC123")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetSession(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrSessionNotFound)
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

func (s *StorageSuite) TestSessionStoredAsHash() {
	session := s.newSession("ABC123")
	_, err := session.SetScore("Alice", model.CategoryChance, "")
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	keys, err := s.mini.HKeys("yzscore:session:ABC123")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"session", "card:Alice"}, keys)

	card := s.mini.HGet("yzscore:session:ABC123", "card:Alice")
	s.JSONEq(`{"small_straight":30}`, card)
}

func (s *StorageSuite) TestPlayerNamesMatchingFieldNamesRoundTrip() {
	session := model.NewGameSession("FIELD2", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	for _, name := range []string{"session", "card:Bob", "card:"} {
		_, err := session.AddPlayer(name)
		s.Require().NoError(err)
	}
	s.Require().NoError(session.Start())
	_, err := session.SetScore("session", model.CategoryAces, "3")
	s.Require().NoError(err)
	_, err = session.SetScore("card:Bob", model.CategoryTwos, "6")
	s.Require().NoError(err)
	_, err = session.SetScore("card:", model.CategoryChance, "21")
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	keys, err := s.mini.HKeys("yzscore:session:FIELD2")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"session", "card:session", "card:card:Bob", "card:card:"}, keys)

	retrieved, err := s.storage.GetSession(s.ctx, "FIELD2")
	s.Require().NoError(err)
	s.Equal(session.Players, retrieved.Players)
	s.Equal(model.NewScore(3), retrieved.Score("session", model.CategoryAces))
	s.Equal(model.NewScore(6), retrieved.Score("card:Bob", model.CategoryTwos))
	s.Equal(model.NewScore(21), retrieved.Score("card:", model.CategoryChance))
}

func (s *StorageSuite) TestSaveRefreshesTTL() {
	session := s.newSession("ABC123")
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.mini.FastForward(50 * time.Minute)
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))
	s.mini.FastForward(50 * time.Minute)

	_, err := s.storage.GetSession(s.ctx, "ABC123")
	s.NoError(err)
}

func (s *StorageSuite) TestSetupSessionRoundTrip() {
	session := model.NewGameSession("SETUP1", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	_, err := session.AddPlayer("Bob: the builder")
	s.Require().NoError(err)
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "SETUP1")
	s.Require().NoError(err)
	s.Equal(model.PhaseSetup, retrieved.Phase)
	s.Equal([]model.Player{{Name: "Bob: the builder"}}, retrieved.Players)
	s.NotNil(retrieved.Scorecard("Bob: the builder"))
	s.True(retrieved.CreatedAt.Equal(session.CreatedAt))
}

func (s *StorageSuite) TestZeroTTLNeverExpires() {
	cfg := DefaultConfig()
	cfg.SessionTTL = 0
	store := NewWithClient(redis.NewClient(&redis.Options{Addr: s.mini.Addr()}), cfg)
	defer func() { _ = store.Close() }()

	s.Require().NoError(store.SaveSession(s.ctx, s.newSession("FOREVR")))
	s.Equal(time.Duration(0), s.mini.TTL("yzscore:session:FOREVR"))

	s.mini.FastForward(1000 * time.Hour)
	exists, err := store.SessionExists(s.ctx, "FOREVR")
	s.Require().NoError(err)
	s.True(exists)
}
