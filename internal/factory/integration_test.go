package factory

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	redisstorage "github.com/mcoot/yahtzee-scorekeeper/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: Complete game flow from an empty session to final standings
func (s *IntegrationSuite) TestCompleteGameFlow() {
	s.app.MockRandom.QueueString("GAME01")
	controller := s.app.SessionController

	// Step 1: Create a session
	session, err := controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.SessionCode("GAME01"), session.Code)

	// Step 2: Starting with nobody is rejected
	_, err = controller.StartSession(s.ctx, session.Code)
	s.ErrorIs(err, model.ErrNoPlayers)

	// Step 3: Build the roster
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		_, err := controller.AddPlayer(s.ctx, session.Code, name)
		s.Require().NoError(err)
	}

	// Step 4: Start, freezing the roster
	_, err = controller.StartSession(s.ctx, session.Code)
	s.Require().NoError(err)
	_, err = controller.AddPlayer(s.ctx, session.Code, "Dave")
	s.ErrorIs(err, model.ErrRosterFrozen)

	// Step 5: Fill every category for everybody
	values := map[string]int{"Alice": 1, "Bob": 2, "Carol": 1}
	for name, v := range values {
		for _, c := range model.Categories() {
			_, err := controller.SetScore(s.ctx, session.Code, name, c, "  "+string(rune('0'+v)))
			s.Require().NoError(err)
		}
	}

	// Step 6: Standings
	results, err := controller.Standings(s.ctx, session.Code)
	s.Require().NoError(err)
	s.Require().Len(results.Standings, 3)
	s.Equal("Bob", results.Standings[0].Player.Name)
	s.Equal(26, results.Standings[0].Total)
	s.Equal("Alice", results.Standings[1].Player.Name)
	s.Equal("Carol", results.Standings[2].Player.Name)
	s.Equal(13, results.Standings[2].Total)
	s.Require().NotNil(results.Leader)
	s.Equal("Bob", results.Leader.Name)
}

// Test: The same flow works against the Redis backend
func (s *IntegrationSuite) TestGameFlowOnRedis() {
	mini := miniredis.RunT(s.T())
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	defer func() { _ = client.Close() }()

	app := NewTestAppWithStorage(redisstorage.NewWithClient(client, redisstorage.DefaultConfig()))
	app.MockRandom.QueueString("REDIS1")
	controller := app.SessionController

	session, err := controller.CreateSession(s.ctx)
	s.Require().NoError(err)
	_, err = controller.AddPlayer(s.ctx, session.Code, "Alice")
	s.Require().NoError(err)
	_, err = controller.StartSession(s.ctx, session.Code)
	s.Require().NoError(err)
	_, err = controller.SetScore(s.ctx, session.Code, "Alice", model.CategoryYahtzee, "50")
	s.Require().NoError(err)

	total, err := controller.TotalScore(s.ctx, session.Code, "Alice")
	s.Require().NoError(err)
	s.Equal(50, total.Total)

	s.True(mini.Exists("yzscore:session:REDIS1"))
	s.Equal(12*time.Hour, mini.TTL("yzscore:session:REDIS1"))
}

func (s *IntegrationSuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "postgres"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.ErrorIs(err, ErrRedisConfigMissing)
}

func (s *IntegrationSuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	s.NotNil(app.SessionController)
}
