package models

// Card is a single response card. A blank card is a wildcard: a player
// holding one may submit any write-in text in its place.
type Card struct {
	Text  string `json:"text"`
	Blank bool   `json:"blank,omitempty"`
}

// Prompt is the judged card for a round. Pick is the number of response
// cards each non-judge player must submit toward it.
type Prompt struct {
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

// Submission is one player's complete answer to the current prompt.
// Cards keep their submitted order; the winner is matched by exact
// card-sequence comparison.
type Submission struct {
	PlayerName string `json:"player"`
	Cards      []Card `json:"cards"`
}
