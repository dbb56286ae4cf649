package redis

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// Hash fields. Each player's scorecard gets its own field so a single cell
// edit rewrites a small value. Player names are used verbatim after
// fieldCardPrefix, so no other field may start with that prefix.
const (
	fieldSession    = "session"
	fieldCardPrefix = "card:"
)

// sessionRecord is the session hash's metadata field
type sessionRecord struct {
	Code      model.SessionCode `json:"code"`
	Phase     model.Phase       `json:"phase"`
	Players   []string          `json:"players"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// encodeSession flattens a session into hash fields
func encodeSession(session *model.GameSession) (map[string]any, error) {
	rec := sessionRecord{
		Code:      session.Code,
		Phase:     session.Phase,
		Players:   make([]string, 0, len(session.Players)),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	for _, p := range session.Players {
		rec.Players = append(rec.Players, p.Name)
	}

	meta, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}

	fields := map[string]any{fieldSession: meta}
	for _, p := range session.Players {
		card := session.Scorecard(p.Name)
		if card == nil {
			card = model.Scorecard{}
		}
		data, err := json.Marshal(card)
		if err != nil {
			return nil, fmt.Errorf("encode scorecard for %q: %w", p.Name, err)
		}
		fields[fieldCardPrefix+p.Name] = data
	}
	return fields, nil
}

// decodeSession rebuilds a session from HGETALL output
func decodeSession(fields map[string]string) (*model.GameSession, error) {
	meta, ok := fields[fieldSession]
	if !ok {
		return nil, model.ErrSessionNotFound
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(meta), &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	session := &model.GameSession{
		Code:       rec.Code,
		Phase:      rec.Phase,
		Players:    make([]model.Player, 0, len(rec.Players)),
		Scorecards: make(map[string]model.Scorecard, len(rec.Players)),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
	for _, name := range rec.Players {
		session.Players = append(session.Players, model.Player{Name: name})
		session.Scorecards[name] = model.Scorecard{}
	}

	for field, raw := range fields {
		name, isCard := strings.CutPrefix(field, fieldCardPrefix)
		if !isCard || !session.HasPlayer(name) {
			continue
		}
		card := model.Scorecard{}
		if err := json.Unmarshal([]byte(raw), &card); err != nil {
			return nil, fmt.Errorf("decode scorecard for %q: %w", name, err)
		}
		session.Scorecards[name] = card
	}
	return session, nil
}
