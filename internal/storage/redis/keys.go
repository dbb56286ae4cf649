package redis

import (
	"fmt"

	"github.com/mcoot/yahtzee-scorekeeper/internal/model"
)

// Key prefix for all scorekeeper data
const keyPrefix = "yzscore"

// sessionKey returns the Redis key for a GameSession
func sessionKey(code model.SessionCode) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, code)
}
