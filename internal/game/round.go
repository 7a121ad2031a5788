// internal/game/round.go
package game

import (
	"math/rand"

	"github.com/whitecards/czar/internal/models"
)

// roundState tracks where the current round is in its lifecycle.
type roundState int

const (
	stateIdle roundState = iota
	stateAwaitingSubmissions
	stateJudging
)

// round owns the current prompt and the in-flight submissions. All
// methods assume the owning game's lock is held.
type round struct {
	state       roundState
	prompt      *models.Prompt
	submissions []models.Submission
}

// begin resets the round around a freshly drawn prompt.
func (r *round) begin(prompt models.Prompt) {
	r.state = stateAwaitingSubmissions
	r.prompt = &prompt
	r.submissions = nil
}

// reset clears everything back to the idle state.
func (r *round) reset() {
	r.state = stateIdle
	r.prompt = nil
	r.submissions = nil
}

func (r *round) hasSubmissionFrom(name string) bool {
	for _, s := range r.submissions {
		if s.PlayerName == name {
			return true
		}
	}
	return false
}

// submit validates and records one player's cards for the current
// prompt. On success the matched cards are removed from the player's
// hand; on any rejection the hand and the submission set are untouched.
func (r *round) submit(p *models.Player, cards []models.Card) error {
	if r.state != stateAwaitingSubmissions || r.prompt == nil {
		return ErrNoActiveRound
	}
	if p.IsJudge {
		return ErrJudgeCannotSubmit
	}
	if r.hasSubmissionFrom(p.Name) {
		return ErrDuplicateSubmission
	}
	if len(cards) != r.prompt.Pick {
		return ErrInvalidCardCount
	}
	indices, ok := matchHand(p.Hand, cards)
	if !ok {
		return ErrCardNotInHand
	}

	removeFromHand(p, indices)
	r.submissions = append(r.submissions, models.Submission{
		PlayerName: p.Name,
		Cards:      append([]models.Card(nil), cards...),
	})
	return nil
}

// dropSubmission removes a departed player's submission so the
// completion predicate stays satisfiable for the remaining players.
func (r *round) dropSubmission(name string) {
	for i, s := range r.submissions {
		if s.PlayerName == name {
			r.submissions = append(r.submissions[:i], r.submissions[i+1:]...)
			return
		}
	}
}

// complete reports whether every non-judge player has a full
// submission for the current prompt.
func (r *round) complete(playerCount int) bool {
	if r.state != stateAwaitingSubmissions || r.prompt == nil {
		return false
	}
	if playerCount < 2 || len(r.submissions) != playerCount-1 {
		return false
	}
	for _, s := range r.submissions {
		if len(s.Cards) != r.prompt.Pick {
			return false
		}
	}
	return true
}

// shuffled returns the submissions in random order so position never
// reveals authorship to the judge.
func (r *round) shuffled(rng *rand.Rand) []models.Submission {
	subs := append([]models.Submission(nil), r.submissions...)
	rng.Shuffle(len(subs), func(i, j int) {
		subs[i], subs[j] = subs[j], subs[i]
	})
	return subs
}

// selectWinner finds the submission whose card sequence matches the
// given cards exactly and marks the round resolved, so a second pick
// in the same round cannot land.
func (r *round) selectWinner(cards []models.Card) (models.Submission, error) {
	if r.state != stateJudging {
		return models.Submission{}, ErrNoSuchSubmission
	}
	for _, s := range r.submissions {
		if sameCards(s.Cards, cards) {
			r.state = stateIdle
			return s, nil
		}
	}
	return models.Submission{}, ErrNoSuchSubmission
}

// matchHand finds a distinct hand index for every submitted card. A
// submitted blank (the player's write-in) consumes any blank card in
// the hand regardless of its text; everything else matches by exact
// text.
func matchHand(hand, cards []models.Card) ([]int, bool) {
	used := make([]bool, len(hand))
	indices := make([]int, 0, len(cards))
	for _, c := range cards {
		found := -1
		for i, h := range hand {
			if used[i] {
				continue
			}
			if c.Blank {
				if h.Blank {
					found = i
					break
				}
				continue
			}
			if !h.Blank && h.Text == c.Text {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		used[found] = true
		indices = append(indices, found)
	}
	return indices, true
}

// removeFromHand drops the hand entries at the given indices.
func removeFromHand(p *models.Player, indices []int) {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}
	kept := p.Hand[:0]
	for i, c := range p.Hand {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	p.Hand = kept
}

func sameCards(a, b []models.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
