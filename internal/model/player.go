package model

// Player is a participant, identified by their display name
type Player struct {
	Name string `json:"name"`
}
