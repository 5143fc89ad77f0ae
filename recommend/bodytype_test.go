package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBodyType(t *testing.T) {
	assert.Equal(t, BodyTypeHourglass, ParseBodyType(" Hourglass "))
	assert.Equal(t, BodyTypeDefault, ParseBodyType("triangle"))
	assert.Equal(t, BodyTypeDefault, ParseBodyType(""))
}

func TestNewStyleGuideValidation(t *testing.T) {
	valid := map[string][]Suggestion{SuggestionAll: {{Name: "Basics", Description: "Start simple."}}}

	_, err := NewStyleGuide(map[BodyType]map[string][]Suggestion{BodyTypeSlim: valid})
	assert.ErrorContains(t, err, "missing \"default\"")

	_, err = NewStyleGuide(map[BodyType]map[string][]Suggestion{
		BodyTypeDefault: {"top": {{Name: "Tee"}}},
	})
	assert.ErrorContains(t, err, "needs \"all\"")

	_, err = NewStyleGuide(map[BodyType]map[string][]Suggestion{
		BodyTypeDefault: valid,
		"triangle":      valid,
	})
	assert.ErrorContains(t, err, "unknown body type")

	_, err = NewStyleGuide(map[BodyType]map[string][]Suggestion{
		BodyTypeDefault: valid,
		BodyTypeSlim:    {"hats": {{Name: "Beanie"}}},
	})
	assert.ErrorContains(t, err, "unknown category")

	_, err = NewStyleGuide(map[BodyType]map[string][]Suggestion{
		BodyTypeDefault: valid,
		BodyTypePear:    {"top": {}},
	})
	assert.ErrorContains(t, err, "is empty")

	_, err = NewStyleGuide(map[BodyType]map[string][]Suggestion{
		BodyTypeDefault: {SuggestionAll: {{Description: "no name"}}},
	})
	assert.ErrorContains(t, err, "unnamed")

	g, err := NewStyleGuide(map[BodyType]map[string][]Suggestion{BodyTypeDefault: valid})
	require.NoError(t, err)
	assert.Equal(t, "Basics", g.Suggestions("athletic", "top")[0].Name)
}

func TestStyleGuideSuggestions(t *testing.T) {
	g := DefaultStyleGuide

	assert.Equal(t, "V-Neck Tees", g.Suggestions("athletic", "top")[0].Name)
	// athletic has no outerwear list, so its general advice is used
	assert.Equal(t, "Fitted Basics", g.Suggestions("athletic", "outerwear")[0].Name)
	assert.Equal(t, "Fitted Basics", g.Suggestions("ATHLETIC", "")[0].Name)
	assert.Equal(t, "Build on Neutrals", g.Suggestions("unknown", "all")[0].Name)
	assert.Equal(t, "Classic Button-Down", g.Suggestions("", "top")[0].Name)
	assert.Equal(t, "Build on Neutrals", g.Suggestions("", "accessory")[0].Name)

	for _, bt := range append(BodyTypes, BodyTypeDefault) {
		for _, category := range []string{"", "top", "bottom", "outerwear", "shoes", "accessory"} {
			assert.NotEmpty(t, g.Suggestions(string(bt), category), "%s/%s", bt, category)
		}
	}
}

func TestRecommendedItems(t *testing.T) {
	shoes := RecommendedItems("athletic", "shoes")
	require.Len(t, shoes, 2)
	assert.Equal(t, "Chelsea Boots", shoes[0].Name)

	tops := RecommendedItems("curvy", "top")
	require.Len(t, tops, 2)
	assert.Equal(t, "Classic White Button-Down", tops[0].Name)

	assert.Empty(t, RecommendedItems("slim", "accessory"))

	tops[0].Name = "mutated"
	assert.Equal(t, "Classic White Button-Down", RecommendedItems("curvy", "top")[0].Name)
}

func TestAllRecommendedItems(t *testing.T) {
	items := AllRecommendedItems()
	require.Len(t, items, 4)
	assert.Equal(t, "Athletic Fit V-Neck Tee", items[0].Name)
	assert.Equal(t, "Athletic Fit Jeans", items[3].Name)
	assert.Equal(t, items, RecommendedItems("slim", "all"))

	items[0].Name = "mutated"
	assert.Equal(t, "Athletic Fit V-Neck Tee", AllRecommendedItems()[0].Name)
}
