// internal/deck/deck.go
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/whitecards/czar/internal/cards"
	"github.com/whitecards/czar/internal/models"
)

// ErrDeckExhausted is returned when the card source itself comes back
// empty on reload. The round cannot proceed until the source supplies
// more cards; the session stays up.
var ErrDeckExhausted = errors.New("card source is exhausted")

// Options control blank-card injection when the pools are reloaded.
type Options struct {
	BlankCards bool
	// BlankRatio is the fraction of the response pool added as blank
	// wildcards, e.g. 0.05 adds one blank per twenty responses.
	BlankRatio float64
}

// Deck owns the shuffled prompt and response pools. Draws are
// without-replacement until a pool runs dry, at which point both pools
// are reloaded from the source and reshuffled. Deck is not safe for
// concurrent use; the game engine serializes access to it.
type Deck struct {
	source cards.Source
	opts   Options
	rng    *rand.Rand

	prompts   []models.Prompt
	responses []models.Card
}

// New builds a deck and performs the initial load. An empty source is
// not an error here; draws will fail with ErrDeckExhausted instead.
func New(source cards.Source, opts Options) (*Deck, error) {
	d := &Deck{
		source: source,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := d.reload(); err != nil {
		return nil, err
	}
	return d, nil
}

// reload replaces both pools from the source and reshuffles them,
// injecting blank response cards when enabled.
func (d *Deck) reload() error {
	pools, err := d.source.Load()
	if err != nil {
		return fmt.Errorf("failed to reload cards: %w", err)
	}

	prompts := append([]models.Prompt(nil), pools.Prompts...)
	responses := append([]models.Card(nil), pools.Responses...)

	if d.opts.BlankCards && d.opts.BlankRatio > 0 {
		blanks := int(float64(len(responses)) * d.opts.BlankRatio)
		for i := 0; i < blanks; i++ {
			responses = append(responses, models.Card{Blank: true})
		}
	}

	d.rng.Shuffle(len(prompts), func(i, j int) {
		prompts[i], prompts[j] = prompts[j], prompts[i]
	})
	d.rng.Shuffle(len(responses), func(i, j int) {
		responses[i], responses[j] = responses[j], responses[i]
	})

	d.prompts = prompts
	d.responses = responses
	return nil
}

// DrawPrompt removes and returns one prompt card, reloading the pools
// first if the prompt pool is empty.
func (d *Deck) DrawPrompt() (models.Prompt, error) {
	if len(d.prompts) == 0 {
		if err := d.reload(); err != nil {
			return models.Prompt{}, err
		}
		if len(d.prompts) == 0 {
			return models.Prompt{}, ErrDeckExhausted
		}
	}
	p := d.prompts[len(d.prompts)-1]
	d.prompts = d.prompts[:len(d.prompts)-1]
	return p, nil
}

// DrawResponses removes and returns n response cards, reloading first
// if fewer than n remain.
func (d *Deck) DrawResponses(n int) ([]models.Card, error) {
	if n <= 0 {
		return nil, nil
	}
	if len(d.responses) < n {
		if err := d.reload(); err != nil {
			return nil, err
		}
		if len(d.responses) < n {
			return nil, ErrDeckExhausted
		}
	}
	drawn := append([]models.Card(nil), d.responses[:n]...)
	d.responses = d.responses[n:]
	return drawn, nil
}

// PromptsRemaining reports the prompt cards left in the current pool
// lifetime.
func (d *Deck) PromptsRemaining() int { return len(d.prompts) }

// ResponsesRemaining reports the response cards left in the current
// pool lifetime.
func (d *Deck) ResponsesRemaining() int { return len(d.responses) }
