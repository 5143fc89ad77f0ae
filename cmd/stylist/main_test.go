package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"stylistapi/recommend"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wardrobeJSON = `[
	{"id": "1", "name": "White Tee", "category": "top", "color": "white", "pattern": "solid", "style": "casual", "formality": "casual", "season": "all"},
	{"id": "2", "name": "Navy Polo", "category": "top", "color": "navy", "pattern": "solid", "style": "casual", "formality": "casual", "season": "summer"},
	{"id": "3", "name": "Blue Jeans", "category": "bottom", "color": "blue", "pattern": "solid", "style": "casual", "formality": "casual", "season": "all"},
	{"id": "4", "name": "White Sneakers", "category": "shoes", "color": "white", "pattern": "solid", "style": "casual", "formality": "casual", "season": "all"}
]`

const profileJSON = `{"id": "u1", "bodyType": "athletic", "preferences": {"colors": ["navy"], "styles": ["casual"], "patterns": []}}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, logs bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&logs)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRecommendCommand(t *testing.T) {
	wardrobe := writeFile(t, "wardrobe.json", wardrobeJSON)
	profile := writeFile(t, "profile.json", profileJSON)
	args := []string{"recommend", "--wardrobe", wardrobe, "--profile", profile, "--occasion", "casual", "--weather", "hot", "--seed", "42"}

	first, err := execute(t, args...)
	require.NoError(t, err)

	var outfits []recommend.Outfit
	require.NoError(t, json.Unmarshal([]byte(first), &outfits))
	require.NotEmpty(t, outfits)
	for _, o := range outfits {
		assert.Equal(t, recommend.SeasonSummer, o.Season)
		assert.GreaterOrEqual(t, o.Confidence, 0.5)
		assert.LessOrEqual(t, o.Confidence, 0.99)
	}

	second, err := execute(t, args...)
	require.NoError(t, err)
	var again []recommend.Outfit
	require.NoError(t, json.Unmarshal([]byte(second), &again))
	require.Len(t, again, len(outfits))
	for i := range outfits {
		assert.Equal(t, outfits[i].Confidence, again[i].Confidence)
		assert.Equal(t, outfits[i].Name, again[i].Name)
	}
}

func TestRecommendCommandFallbackForUnknownStyle(t *testing.T) {
	wardrobe := writeFile(t, "wardrobe.json", wardrobeJSON)

	out, err := execute(t, "recommend", "--wardrobe", wardrobe, "--style", "bohemian", "--seed", "1")
	require.NoError(t, err)

	var outfits []recommend.Outfit
	require.NoError(t, json.Unmarshal([]byte(out), &outfits))
	require.Len(t, outfits, 1)
	assert.True(t, outfits[0].Fallback)
	assert.Equal(t, "Simple Casual Outfit", outfits[0].Name)
	assert.Equal(t, 0.5, outfits[0].Confidence)
}

func TestRecommendCommandErrors(t *testing.T) {
	_, err := execute(t, "recommend")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")

	_, err = execute(t, "recommend", "--wardrobe", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	broken := writeFile(t, "broken.json", "{")
	_, err = execute(t, "recommend", "--wardrobe", broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")
}

func TestSuggestCommand(t *testing.T) {
	out, err := execute(t, "suggest", "--body-type", "athletic", "--category", "top")
	require.NoError(t, err)

	var suggestions []recommend.Suggestion
	require.NoError(t, json.Unmarshal([]byte(out), &suggestions))
	assert.Equal(t, recommend.DefaultStyleGuide.Suggestions("athletic", "top"), suggestions)
}

func TestCatalogCommand(t *testing.T) {
	out, err := execute(t, "catalog", "--body-type", "slim", "--category", "shoes")
	require.NoError(t, err)

	var items []recommend.ClothingItem
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	require.NotEmpty(t, items)
	for _, item := range items {
		assert.Equal(t, recommend.CategoryShoes, item.Category)
	}

	out, err = execute(t, "catalog")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &items))
	assert.Len(t, items, len(recommend.AllRecommendedItems()))
}
