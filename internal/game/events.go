// internal/game/events.go
package game

import "github.com/whitecards/czar/internal/models"

// GameEventType is an enum-like type for outbound notifications.
type GameEventType string

const (
	EventConnectionSuccess  GameEventType = "connection_success"
	EventJoinSuccess        GameEventType = "join_success"
	EventPlayerList         GameEventType = "player_list"
	EventNewRound           GameEventType = "new_round"
	EventUpdateHand         GameEventType = "update_hand"         // Private hand refresh
	EventCardSubmitted      GameEventType = "card_submitted"      // Private submission ack
	EventSubmittedCount     GameEventType = "update_submitted_cards"
	EventAllCardsSubmitted  GameEventType = "all_cards_submitted" // To the judge only
	EventRoundWinner        GameEventType = "round_winner"
	EventNextRoundCountdown GameEventType = "start_new_round_countdown"
	EventError              GameEventType = "error"
)

// PlayerView is the public projection of a player used in player_list
// and new_round payloads. Hands are never included.
type PlayerView struct {
	Name   string `json:"name"`
	IsCzar bool   `json:"isCzar"`
	Score  int    `json:"score"`
}

// GameEvent is a single outbound notification. The transport marshals
// it and delivers it either to every connected client or to one player;
// the engine never touches a socket itself.
type GameEvent struct {
	Type GameEventType `json:"type"`

	Message     string              `json:"message,omitempty"`
	Players     []PlayerView        `json:"players,omitempty"`
	Prompt      *models.Prompt      `json:"blackCard,omitempty"`
	Hand        []models.Card       `json:"hand,omitempty"`
	Cards       []models.Card       `json:"cards,omitempty"`
	PlayerName  string              `json:"player,omitempty"`
	Count       int                 `json:"count,omitempty"`
	Submissions []models.Submission `json:"submissions,omitempty"`
}
