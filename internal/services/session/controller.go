package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/yahtzee-scorekeeper/internal/dependencies/random"
	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
	"github.com/mcoot/yahtzee-scorekeeper/internal/services/scoring"
	"github.com/mcoot/yahtzee-scorekeeper/internal/storage"
)

const (
	// CodeLength is the length of generated session codes
	CodeLength = 6
	// CodeAlphabet is the characters used in session codes (avoid confusing chars)
	CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// Controller owns stored game sessions: roster changes, phase changes and score edits
type Controller struct {
	storage storage.Storage
	scoring *scoring.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	// mu serializes load-mutate-save cycles
	mu sync.Mutex
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	scoring *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		scoring: scoring,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateSession starts a new, empty session in the setup phase
func (c *Controller) CreateSession(ctx context.Context) (*model.GameSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Generate unique session code
	var code model.SessionCode
	for {
		code = model.SessionCode(c.random.String(CodeLength, CodeAlphabet))
		exists, err := c.storage.SessionExists(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("check session code: %w", err)
		}
		if !exists {
			break
		}
	}

	session := model.NewGameSession(code, c.clock.Now())
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	c.logger.Info("session created", slog.String("session", string(code)))
	return session, nil
}

// GetSession retrieves a session by code
func (c *Controller) GetSession(ctx context.Context, code model.SessionCode) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, code)
}

// AddPlayer adds a player to a session that is still in setup
func (c *Controller) AddPlayer(ctx context.Context, code model.SessionCode, name string) (model.Player, error) {
	var player model.Player
	err := c.update(ctx, code, func(session *model.GameSession) error {
		var err error
		player, err = session.AddPlayer(name)
		return err
	})
	if err != nil {
		return model.Player{}, err
	}

	c.logger.Info("player added",
		slog.String("session", string(code)),
		slog.String("player", player.Name))
	return player, nil
}

// StartSession freezes the roster and opens the scorecards for editing
func (c *Controller) StartSession(ctx context.Context, code model.SessionCode) (*model.GameSession, error) {
	var started *model.GameSession
	err := c.update(ctx, code, func(session *model.GameSession) error {
		started = session
		return session.Start()
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session", string(code)),
		slog.Int("players", len(started.Players)))
	return started, nil
}

// SetScore stores the raw input for a player's category and returns the resulting cell
func (c *Controller) SetScore(ctx context.Context, code model.SessionCode, player string, category model.Category, raw string) (model.ScoreCell, error) {
	var cell model.ScoreCell
	err := c.update(ctx, code, func(session *model.GameSession) error {
		var err error
		cell, err = session.SetScore(player, category, raw)
		return err
	})
	if err != nil {
		return model.Unset, err
	}

	c.logger.Info("score set",
		slog.String("session", string(code)),
		slog.String("player", player),
		slog.String("category", string(category)),
		slog.Bool("set", cell.Set),
		slog.Int("value", cell.Value))
	return cell, nil
}

// GetScore returns a player's cell; unknown players and categories read as Unset
func (c *Controller) GetScore(ctx context.Context, code model.SessionCode, player string, category model.Category) (model.ScoreCell, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return model.Unset, err
	}
	return session.Score(player, category), nil
}

// PlayerTotal is a player's total with its section breakdown
type PlayerTotal struct {
	Player model.Player
	Total  int
	Upper  int
	Lower  int
}

// TotalScore returns the total for a player in the roster
func (c *Controller) TotalScore(ctx context.Context, code model.SessionCode, player string) (PlayerTotal, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return PlayerTotal{}, err
	}
	if !session.HasPlayer(player) {
		return PlayerTotal{}, model.ErrUnknownPlayer
	}

	upper, lower := c.scoring.SectionTotals(session, player)
	return PlayerTotal{
		Player: model.Player{Name: player},
		Total:  c.scoring.TotalScore(session, player),
		Upper:  upper,
		Lower:  lower,
	}, nil
}

// Results is the ranked view of a session
type Results struct {
	Standings []model.Standing
	Leader    *model.Player // nil when tied or empty
}

// Standings ranks all players in the session
func (c *Controller) Standings(ctx context.Context, code model.SessionCode) (*Results, error) {
	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return nil, err
	}
	return c.Results(session), nil
}

// Results computes standings for an already loaded session
func (c *Controller) Results(session *model.GameSession) *Results {
	standings := c.scoring.Standings(session)
	results := &Results{Standings: standings}
	if leader, ok := c.scoring.DetermineLeader(standings); ok {
		results.Leader = &leader
	}
	return results
}

// update loads a session, applies fn and saves it if fn succeeds
func (c *Controller) update(ctx context.Context, code model.SessionCode, fn func(*model.GameSession) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, code)
	if err != nil {
		return err
	}

	if err := fn(session); err != nil {
		return err
	}

	session.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
