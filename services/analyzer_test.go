package services

import (
	"context"
	"errors"
	"stylistapi/models"
	"testing"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClothingAttributes(t *testing.T) {
	attrs, err := ParseClothingAttributes(` {"name":"Navy Oxford","category":"Top","color":"navy","pattern":"solid","style":"classic","formality":"Smart Casual","season":"autumn"} `)
	require.NoError(t, err)
	assert.Equal(t, "top", attrs.Category)
	assert.Equal(t, "smart casual", attrs.Formality)
	// not a season the wardrobe knows
	assert.Equal(t, "", attrs.Season)

	_, err = ParseClothingAttributes(`{"category":"none"}`)
	assert.ErrorIs(t, err, ErrNoGarment)

	_, err = ParseClothingAttributes("not json")
	assert.Error(t, err)
}

func TestApplyAttributesKeepsOwnerValues(t *testing.T) {
	item := models.Clothing{Name: "My shirt", Color: "red"}
	ApplyAttributes(&item, &ClothingAttributes{
		Name:      "Red Flannel",
		Category:  "top",
		Color:     "burgundy",
		Pattern:   "plaid",
		Style:     "casual",
		Formality: "casual",
		Season:    "fall",
	})
	assert.Equal(t, "My shirt", item.Name)
	assert.Equal(t, "red", item.Color)
	assert.Equal(t, models.CategoryTop, item.Category)
	assert.Equal(t, "plaid", item.Pattern)
	assert.Equal(t, models.SeasonFall, item.Season)
}

type failingAnalyzer struct {
	calls int
	err   error
}

func (f *failingAnalyzer) AnalyzeClothing(ctx context.Context, image []byte, mimeType string) (*ClothingAttributes, error) {
	f.calls++
	return nil, f.err
}

func TestBreakerAnalyzerOpensAfterFailures(t *testing.T) {
	next := &failingAnalyzer{err: errors.New("503")}
	analyzer := NewBreakerAnalyzer(next)

	for i := 0; i < 5; i++ {
		_, err := analyzer.AnalyzeClothing(context.Background(), nil, "image/jpeg")
		assert.EqualError(t, err, "503")
	}
	_, err := analyzer.AnalyzeClothing(context.Background(), nil, "image/jpeg")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 5, next.calls)
}

func TestBreakerAnalyzerIgnoresMissingGarment(t *testing.T) {
	next := &failingAnalyzer{err: ErrNoGarment}
	analyzer := NewBreakerAnalyzer(next)

	for i := 0; i < 8; i++ {
		_, err := analyzer.AnalyzeClothing(context.Background(), nil, "image/jpeg")
		assert.ErrorIs(t, err, ErrNoGarment)
	}
	assert.Equal(t, 8, next.calls)
}
