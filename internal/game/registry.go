// internal/game/registry.go
package game

import (
	"github.com/google/uuid"

	"github.com/whitecards/czar/internal/deck"
	"github.com/whitecards/czar/internal/models"
)

// registry owns the connected players in join order. The stable
// ordering makes judge rotation a deterministic index computation
// instead of a property of map iteration. All methods assume the owning
// game's lock is held.
type registry struct {
	players   []*models.Player
	handLimit int
}

func (r *registry) byID(id uuid.UUID) *models.Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *registry) byName(name string) *models.Player {
	for _, p := range r.players {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// judge returns the current judge, or nil when no players are present.
func (r *registry) judge() *models.Player {
	for _, p := range r.players {
		if p.IsJudge {
			return p
		}
	}
	return nil
}

// join adds a new player with a freshly drawn full hand. The first
// player in becomes the judge.
func (r *registry) join(id uuid.UUID, name string, d *deck.Deck) (*models.Player, error) {
	if r.byName(name) != nil {
		return nil, ErrNameTaken
	}
	hand, err := d.DrawResponses(r.handLimit)
	if err != nil {
		return nil, err
	}
	p := &models.Player{
		ID:      id,
		Name:    name,
		IsJudge: len(r.players) == 0,
		Hand:    hand,
	}
	r.players = append(r.players, p)
	return p, nil
}

// remove drops the player and repairs the judge invariant: if the judge
// left and players remain, the first player in join order takes over.
func (r *registry) remove(id uuid.UUID) *models.Player {
	for i, p := range r.players {
		if p.ID == id {
			r.players = append(r.players[:i], r.players[i+1:]...)
			if p.IsJudge && len(r.players) > 0 {
				r.players[0].IsJudge = true
			}
			return p
		}
	}
	return nil
}

// advanceJudge rotates the judge flag to the next player in join order,
// or to the first player if no judge is present.
func (r *registry) advanceJudge() {
	if len(r.players) == 0 {
		return
	}
	for i, p := range r.players {
		if p.IsJudge {
			p.IsJudge = false
			r.players[(i+1)%len(r.players)].IsJudge = true
			return
		}
	}
	r.players[0].IsJudge = true
}

// topUpHands replenishes every hand to the hand limit.
func (r *registry) topUpHands(d *deck.Deck) error {
	for _, p := range r.players {
		need := r.handLimit - len(p.Hand)
		if need <= 0 {
			continue
		}
		drawn, err := d.DrawResponses(need)
		if err != nil {
			return err
		}
		p.Hand = append(p.Hand, drawn...)
	}
	return nil
}

// views projects the public player list in join order.
func (r *registry) views() []PlayerView {
	views := make([]PlayerView, 0, len(r.players))
	for _, p := range r.players {
		views = append(views, PlayerView{Name: p.Name, IsCzar: p.IsJudge, Score: p.Score})
	}
	return views
}
