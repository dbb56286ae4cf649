package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/mocks"
	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/scoring"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage/memory"
	"github.com/mcoot/yahtzee-scorekeeper/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	logs       *testutil.LogBuffer
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	s.controller = NewController(s.storage, scoring.New(), s.clock, s.random, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) createSession() model.SessionCode {
	s.random.QueueString("GAME01")
	session, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	return session.Code
}

func (s *ControllerSuite) startedSession(names ...string) model.SessionCode {
	code := s.createSession()
	for _, name := range names {
		_, err := s.controller.AddPlayer(s.ctx, code, name)
		s.Require().NoError(err)
	}
	_, err := s.controller.StartSession(s.ctx, code)
	s.Require().NoError(err)
	return code
}

// CreateSession tests

func (s *ControllerSuite) TestCreateSessionSucceeds() {
	s.random.QueueString("ABC123")

	session, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.SessionCode("ABC123"), session.Code)
	s.Equal(model.PhaseSetup, session.Phase)
	s.Empty(session.Players)
	s.Equal(s.clock.Now(), session.CreatedAt)
}

func (s *ControllerSuite) TestCreateSessionIsPersisted() {
	code := s.createSession()

	stored, err := s.storage.GetSession(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(code, stored.Code)
}

func (s *ControllerSuite) TestCreateSessionRetriesOnCodeCollision() {
	s.createSession()
	s.random.QueueString("GAME01", "GAME02")

	session, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionCode("GAME02"), session.Code)
}

func (s *ControllerSuite) TestGetSessionNotFound() {
	_, err := s.controller.GetSession(s.ctx, "NOPE00")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Roster tests

func (s *ControllerSuite) TestAddPlayersInOrder() {
	code := s.createSession()

	for _, name := range []string{"Alice", "Bob", "Carol"} {
		player, err := s.controller.AddPlayer(s.ctx, code, name)
		s.Require().NoError(err)
		s.Equal(name, player.Name)
	}

	session, err := s.controller.GetSession(s.ctx, code)
	s.Require().NoError(err)
	s.Equal([]model.Player{{Name: "Alice"}, {Name: "Bob"}, {Name: "Carol"}}, session.Players)
}

func (s *ControllerSuite) TestAddPlayerUpdatesTimestamp() {
	code := s.createSession()
	s.clock.Advance(time.Minute)

	_, err := s.controller.AddPlayer(s.ctx, code, "Alice")
	s.Require().NoError(err)

	session, _ := s.controller.GetSession(s.ctx, code)
	s.True(s.clock.Now().Equal(session.UpdatedAt))
}

func (s *ControllerSuite) TestAddDuplicatePlayerLeavesRosterUnchanged() {
	code := s.createSession()
	_, _ = s.controller.AddPlayer(s.ctx, code, "Alice")

	_, err := s.controller.AddPlayer(s.ctx, code, "  Alice  ")
	s.ErrorIs(err, model.ErrDuplicateName)

	session, _ := s.controller.GetSession(s.ctx, code)
	s.Len(session.Players, 1)
}

func (s *ControllerSuite) TestAddEmptyPlayerLeavesStoreUnchanged() {
	code := s.createSession()

	_, err := s.controller.AddPlayer(s.ctx, code, "   ")
	s.ErrorIs(err, model.ErrEmptyName)

	session, _ := s.controller.GetSession(s.ctx, code)
	s.Empty(session.Players)
	s.Empty(session.Scorecards)
}

func (s *ControllerSuite) TestAddPlayerToMissingSession() {
	_, err := s.controller.AddPlayer(s.ctx, "NOPE00", "Alice")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestAddPlayerAfterStartRejected() {
	code := s.startedSession("Alice")

	_, err := s.controller.AddPlayer(s.ctx, code, "Bob")
	s.ErrorIs(err, model.ErrRosterFrozen)
}

// Phase tests

func (s *ControllerSuite) TestStartEmptySessionFails() {
	code := s.createSession()

	_, err := s.controller.StartSession(s.ctx, code)
	s.ErrorIs(err, model.ErrNoPlayers)

	session, _ := s.controller.GetSession(s.ctx, code)
	s.Equal(model.PhaseSetup, session.Phase)
}

func (s *ControllerSuite) TestStartSessionIsPersisted() {
	code := s.startedSession("Alice")

	session, err := s.controller.GetSession(s.ctx, code)
	s.Require().NoError(err)
	s.Equal(model.PhaseInProgress, session.Phase)
}

// Score tests

func (s *ControllerSuite) TestSetAndGetScore() {
	code := s.startedSession("Alice")

	cell, err := s.controller.SetScore(s.ctx, code, "Alice", model.CategoryAces, "5")
	s.Require().NoError(err)
	s.Equal(model.NewScore(5), cell)

	got, err := s.controller.GetScore(s.ctx, code, "Alice", model.CategoryAces)
	s.Require().NoError(err)
	s.Equal(model.NewScore(5), got)
}

func (s *ControllerSuite) TestSetScoreGarbageNormalizesToUnset() {
	code := s.startedSession("Alice")
	_, _ = s.controller.SetScore(s.ctx, code, "Alice", model.CategoryAces, "5")

	cell, err := s.controller.SetScore(s.ctx, code, "Alice", model.CategoryAces, "abc")
	s.Require().NoError(err)
	s.Equal(model.Unset, cell)

	got, _ := s.controller.GetScore(s.ctx, code, "Alice", model.CategoryAces)
	s.Equal(model.Unset, got)
}

func (s *ControllerSuite) TestSetScoreUnknownPlayer() {
	code := s.startedSession("Alice")

	_, err := s.controller.SetScore(s.ctx, code, "Bob", model.CategoryAces, "5")
	s.ErrorIs(err, model.ErrUnknownPlayer)
}

func (s *ControllerSuite) TestSetScoreBeforeStart() {
	code := s.createSession()
	_, _ = s.controller.AddPlayer(s.ctx, code, "Alice")

	_, err := s.controller.SetScore(s.ctx, code, "Alice", model.CategoryAces, "5")
	s.ErrorIs(err, model.ErrSessionNotStarted)
}

func (s *ControllerSuite) TestGetScoreUnknownPlayerIsUnset() {
	code := s.startedSession("Alice")

	got, err := s.controller.GetScore(s.ctx, code, "Zed", model.CategoryAces)
	s.Require().NoError(err)
	s.Equal(model.Unset, got)
}

// Aggregation tests

func (s *ControllerSuite) TestTotalScore() {
	code := s.startedSession("Alice")
	_, _ = s.controller.SetScore(s.ctx, code, "Alice", model.CategoryFives, "15")
	_, _ = s.controller.SetScore(s.ctx, code, "Alice", model.CategoryChance, "24")

	total, err := s.controller.TotalScore(s.ctx, code, "Alice")
	s.Require().NoError(err)
	s.Equal(39, total.Total)
	s.Equal(15, total.Upper)
	s.Equal(24, total.Lower)
}

func (s *ControllerSuite) TestTotalScoreUnknownPlayer() {
	code := s.startedSession("Alice")

	_, err := s.controller.TotalScore(s.ctx, code, "Bob")
	s.ErrorIs(err, model.ErrUnknownPlayer)
}

func (s *ControllerSuite) TestStandings() {
	code := s.startedSession("A", "B", "C")
	_, _ = s.controller.SetScore(s.ctx, code, "A", model.CategoryChance, "10")
	_, _ = s.controller.SetScore(s.ctx, code, "B", model.CategoryChance, "25")
	_, _ = s.controller.SetScore(s.ctx, code, "C", model.CategoryChance, "10")

	results, err := s.controller.Standings(s.ctx, code)
	s.Require().NoError(err)

	s.Require().Len(results.Standings, 3)
	s.Equal("B", results.Standings[0].Player.Name)
	s.Equal("A", results.Standings[1].Player.Name)
	s.Equal("C", results.Standings[2].Player.Name)
	s.Require().NotNil(results.Leader)
	s.Equal("B", results.Leader.Name)
}

func (s *ControllerSuite) TestStandingsTieHasNoLeader() {
	code := s.startedSession("A", "B")

	results, err := s.controller.Standings(s.ctx, code)
	s.Require().NoError(err)
	s.Nil(results.Leader)
}

func (s *ControllerSuite) TestScoreEntryIsLogged() {
	code := s.startedSession("Alice")

	_, err := s.controller.SetScore(s.ctx, code, "Alice", model.CategoryFives, "15")
	s.Require().NoError(err)

	entry, ok := s.logs.Find("score set")
	s.Require().True(ok)
	s.Equal(string(code), entry["session"])
	s.Equal("Alice", entry["player"])
	s.Equal("fives", entry["category"])
	s.EqualValues(15, entry["value"])
	s.Equal(true, entry["set"])
}

func (s *ControllerSuite) TestCreateSessionFallsBackToGeneratedCodes() {
	first, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.CreateSession(s.ctx)
	s.Require().NoError(err)

	s.Len(string(first.Code), CodeLength)
	s.NotEqual(first.Code, second.Code)
}
