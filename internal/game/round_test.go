// internal/game/round_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/whitecards/czar/internal/models"
)

func TestMatchHandConsumesDistinctCards(t *testing.T) {
	hand := []models.Card{{Text: "a"}, {Text: "b"}}

	// One copy of "a" cannot satisfy a double submission.
	_, ok := matchHand(hand, []models.Card{{Text: "a"}, {Text: "a"}})
	assert.False(t, ok)

	indices, ok := matchHand(hand, []models.Card{{Text: "b"}, {Text: "a"}})
	assert.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, indices)
}

func TestMatchHandWithDuplicateCopies(t *testing.T) {
	hand := []models.Card{{Text: "a"}, {Text: "a"}, {Text: "b"}}

	indices, ok := matchHand(hand, []models.Card{{Text: "a"}, {Text: "a"}})
	assert.True(t, ok)
	assert.ElementsMatch(t, []int{0, 1}, indices)
}

func TestMatchHandBlankDoesNotMatchText(t *testing.T) {
	hand := []models.Card{{Text: "a"}}

	// A write-in needs a blank card in hand; a plain text card won't do.
	_, ok := matchHand(hand, []models.Card{{Text: "anything", Blank: true}})
	assert.False(t, ok)

	// And a hand blank is not claimable by a plain text submission.
	_, ok = matchHand([]models.Card{{Blank: true}}, []models.Card{{Text: "a"}})
	assert.False(t, ok)
}

func TestSameCardsIsOrderSensitive(t *testing.T) {
	a := []models.Card{{Text: "x"}, {Text: "y"}}
	b := []models.Card{{Text: "y"}, {Text: "x"}}

	assert.True(t, sameCards(a, a))
	assert.False(t, sameCards(a, b))
	assert.False(t, sameCards(a, a[:1]))
}

func TestRemoveFromHandKeepsOrder(t *testing.T) {
	p := &models.Player{Hand: []models.Card{{Text: "a"}, {Text: "b"}, {Text: "c"}}}
	removeFromHand(p, []int{1})
	assert.Equal(t, []models.Card{{Text: "a"}, {Text: "c"}}, p.Hand)
}
