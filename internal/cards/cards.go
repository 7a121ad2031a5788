// internal/cards/cards.go
package cards

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/whitecards/czar/internal/models"
)

// Pools holds one load of card content: the raw prompt and response
// pools, before any shuffling.
type Pools struct {
	Responses []models.Card
	Prompts   []models.Prompt
}

// Source supplies card content to the deck. Load may be called again
// whenever a pool runs dry, so implementations must return fresh slices
// on every call.
type Source interface {
	Load() (*Pools, error)
}

// FileSource reads the cards.json format:
//
//	{"whiteCards": ["..."], "blackCards": [{"text": "...", "pick": 2}]}
type FileSource struct {
	Path string
}

type cardsFile struct {
	WhiteCards []string     `json:"whiteCards"`
	BlackCards []promptCard `json:"blackCards"`
}

type promptCard struct {
	Text string `json:"text"`
	Pick int    `json:"pick"`
}

func (s *FileSource) Load() (*Pools, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card file %s: %w", s.Path, err)
	}
	pools, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("card file %s: %w", s.Path, err)
	}
	return pools, nil
}

// Parse decodes and validates raw cards.json content. Prompts missing a
// pick count default to 1; cards with empty text are dropped.
func Parse(data []byte) (*Pools, error) {
	var f cardsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode card content: %w", err)
	}

	p := &Pools{}
	for _, text := range f.WhiteCards {
		if text == "" {
			continue
		}
		p.Responses = append(p.Responses, models.Card{Text: text})
	}
	for _, bc := range f.BlackCards {
		if bc.Text == "" {
			continue
		}
		pick := bc.Pick
		if pick < 1 {
			pick = 1
		}
		p.Prompts = append(p.Prompts, models.Prompt{Text: bc.Text, Pick: pick})
	}
	return p, nil
}

// StaticSource serves fixed pools. Used in tests and anywhere card
// content is assembled in memory rather than read from disk.
type StaticSource struct {
	Responses []models.Card
	Prompts   []models.Prompt
}

func (s *StaticSource) Load() (*Pools, error) {
	return &Pools{
		Responses: append([]models.Card(nil), s.Responses...),
		Prompts:   append([]models.Prompt(nil), s.Prompts...),
	}, nil
}
