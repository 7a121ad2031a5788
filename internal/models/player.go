package models

import (
	"github.com/google/uuid"
)

// Player is a connected participant in the session. ID is the
// transport's connection identifier; the transport owns the mapping
// from live sockets to IDs. Players are kept in join order, and exactly
// one of them holds the judge flag whenever any player is present.
type Player struct {
	ID      uuid.UUID `json:"-"`
	Name    string    `json:"name"`
	IsJudge bool      `json:"isCzar"`
	Score   int       `json:"score"`
	Hand    []Card    `json:"-"`
}
