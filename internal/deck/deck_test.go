// internal/deck/deck_test.go
package deck

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecards/czar/internal/cards"
	"github.com/whitecards/czar/internal/models"
)

func testSource(prompts, responses int) *cards.StaticSource {
	src := &cards.StaticSource{}
	for i := 0; i < prompts; i++ {
		src.Prompts = append(src.Prompts, models.Prompt{Text: fmt.Sprintf("prompt-%d", i), Pick: 1})
	}
	for i := 0; i < responses; i++ {
		src.Responses = append(src.Responses, models.Card{Text: fmt.Sprintf("response-%d", i)})
	}
	return src
}

func TestDrawPromptWithoutReplacement(t *testing.T) {
	d, err := New(testSource(10, 0), Options{})
	require.NoError(t, err)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		p, err := d.DrawPrompt()
		require.NoError(t, err)
		assert.False(t, seen[p.Text], "prompt %q drawn twice within one pool lifetime", p.Text)
		seen[p.Text] = true
	}
	assert.Equal(t, 0, d.PromptsRemaining())

	// The next draw reloads the pool and starts a fresh lifetime.
	_, err = d.DrawPrompt()
	require.NoError(t, err)
	assert.Equal(t, 9, d.PromptsRemaining())
}

func TestDrawResponsesReloadsWhenShort(t *testing.T) {
	d, err := New(testSource(1, 5), Options{})
	require.NoError(t, err)

	drawn, err := d.DrawResponses(3)
	require.NoError(t, err)
	assert.Len(t, drawn, 3)
	assert.Equal(t, 2, d.ResponsesRemaining())

	// Only 2 left; the deck reloads before satisfying the draw.
	drawn, err = d.DrawResponses(3)
	require.NoError(t, err)
	assert.Len(t, drawn, 3)
	assert.Equal(t, 2, d.ResponsesRemaining())
}

func TestDrawResponsesZeroIsNoop(t *testing.T) {
	d, err := New(testSource(1, 5), Options{})
	require.NoError(t, err)

	drawn, err := d.DrawResponses(0)
	require.NoError(t, err)
	assert.Nil(t, drawn)
	assert.Equal(t, 5, d.ResponsesRemaining())
}

func TestEmptySourceExhaustsDeck(t *testing.T) {
	d, err := New(&cards.StaticSource{}, Options{})
	require.NoError(t, err)

	_, err = d.DrawPrompt()
	assert.ErrorIs(t, err, ErrDeckExhausted)

	_, err = d.DrawResponses(1)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestBlankCardInjection(t *testing.T) {
	d, err := New(testSource(1, 20), Options{BlankCards: true, BlankRatio: 0.25})
	require.NoError(t, err)
	require.Equal(t, 25, d.ResponsesRemaining())

	drawn, err := d.DrawResponses(25)
	require.NoError(t, err)

	blanks := 0
	for _, c := range drawn {
		if c.Blank {
			blanks++
		}
	}
	assert.Equal(t, 5, blanks)
}

func TestBlankInjectionDisabledByDefault(t *testing.T) {
	d, err := New(testSource(1, 20), Options{})
	require.NoError(t, err)
	assert.Equal(t, 20, d.ResponsesRemaining())
}
