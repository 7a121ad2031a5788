// internal/cards/cards_test.go
package cards

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whitecards/czar/internal/models"
)

func TestParse(t *testing.T) {
	data := []byte(`{
		"whiteCards": ["first", "", "second"],
		"blackCards": [
			{"text": "needs two: ____ and ____.", "pick": 2},
			{"text": "no pick field"},
			{"text": ""}
		]
	}`)

	pools, err := Parse(data)
	require.NoError(t, err)

	require.Len(t, pools.Responses, 2, "empty-text cards are dropped")
	assert.Equal(t, "first", pools.Responses[0].Text)

	require.Len(t, pools.Prompts, 2)
	assert.Equal(t, 2, pools.Prompts[0].Pick)
	assert.Equal(t, 1, pools.Prompts[1].Pick, "missing pick defaults to 1")
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"whiteCards": [`))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.json")
	content := `{"whiteCards": ["a", "b"], "blackCards": [{"text": "c", "pick": 1}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	pools, err := (&FileSource{Path: path}).Load()
	require.NoError(t, err)
	assert.Len(t, pools.Responses, 2)
	assert.Len(t, pools.Prompts, 1)
}

func TestFileSourceMissingFile(t *testing.T) {
	_, err := (&FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}).Load()
	assert.Error(t, err)
}

func TestStaticSourceReturnsFreshSlices(t *testing.T) {
	src := testStatic()
	a, err := src.Load()
	require.NoError(t, err)
	b, err := src.Load()
	require.NoError(t, err)

	a.Responses[0].Text = "mutated"
	assert.Equal(t, "x", b.Responses[0].Text)
}

func testStatic() *StaticSource {
	return &StaticSource{
		Responses: []models.Card{{Text: "x"}, {Text: "y"}},
		Prompts:   []models.Prompt{{Text: "p", Pick: 1}},
	}
}
