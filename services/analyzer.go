package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"stylistapi/languageutil"
	"stylistapi/models"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"google.golang.org/genai"
)

// ClothingAttributes is what a photo analysis can tell about a garment.
type ClothingAttributes struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	Pattern   string `json:"pattern"`
	Style     string `json:"style"`
	Formality string `json:"formality"`
	Season    string `json:"season"`
}

type ClothingAnalyzer interface {
	AnalyzeClothing(ctx context.Context, image []byte, mimeType string) (*ClothingAttributes, error)
}

var ErrNoGarment = errors.New("no garment detected")

const analyzerInstruction = `You label a single clothing item from a photo for a wardrobe app.
Describe only the main garment. Use lower case words. If the photo does not show a garment, return category "none".`

var clothingSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":      {Type: genai.TypeString, Description: "Short product-like name, e.g. Navy Oxford Shirt"},
		"category":  {Type: genai.TypeString, Enum: []string{"top", "bottom", "outerwear", "shoes", "accessory", "none"}},
		"color":     {Type: genai.TypeString, Description: "Dominant color"},
		"pattern":   {Type: genai.TypeString, Description: "solid, striped, plaid, floral, ..."},
		"style":     {Type: genai.TypeString, Description: "classic, casual, minimalist, formal, sporty, bohemian, ..."},
		"formality": {Type: genai.TypeString, Enum: []string{"casual", "smart casual", "formal"}},
		"season":    {Type: genai.TypeString, Enum: []string{"spring", "summer", "fall", "winter", "all"}},
	},
	Required: []string{"name", "category", "color", "pattern", "style", "formality", "season"},
}

type GeminiAnalyzer struct {
	Client *genai.Client
	Model  string
}

func NewGeminiAnalyzer(ctx context.Context, apiKey, model string) (*GeminiAnalyzer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("genai client: %w", err)
	}
	return &GeminiAnalyzer{Client: client, Model: model}, nil
}

func (a *GeminiAnalyzer) AnalyzeClothing(ctx context.Context, image []byte, mimeType string) (*ClothingAttributes, error) {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{MIMEType: mimeType, Data: image}},
		{Text: "Label this clothing item."},
	}
	result, err := a.Client.Models.GenerateContent(ctx, a.Model, []*genai.Content{{Parts: parts}}, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   clothingSchema,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analyzerInstruction}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return nil, fmt.Errorf("content blocked: %s", result.PromptFeedback.BlockReasonMessage)
	}
	return ParseClothingAttributes(result.Text())
}

// ParseClothingAttributes decodes the model answer and drops values the wardrobe cannot store.
func ParseClothingAttributes(raw string) (*ClothingAttributes, error) {
	var attrs ClothingAttributes
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &attrs); err != nil {
		return nil, fmt.Errorf("decode analyzer response: %w", err)
	}
	attrs.Category = strings.ToLower(strings.TrimSpace(attrs.Category))
	if attrs.Category == "none" {
		return nil, ErrNoGarment
	}
	if !models.ValidateCategoryRaw(attrs.Category) {
		attrs.Category = ""
	}
	attrs.Formality = strings.ToLower(strings.TrimSpace(attrs.Formality))
	if !models.ValidateFormalityRaw(attrs.Formality) {
		attrs.Formality = ""
	}
	attrs.Season = strings.ToLower(strings.TrimSpace(attrs.Season))
	if !models.ValidateSeasonRaw(attrs.Season) {
		attrs.Season = ""
	}
	return &attrs, nil
}

// BreakerAnalyzer stops calling the model for a while after repeated failures.
type BreakerAnalyzer struct {
	next ClothingAnalyzer
	cb   *gobreaker.CircuitBreaker[*ClothingAttributes]
}

func NewBreakerAnalyzer(next ClothingAnalyzer) *BreakerAnalyzer {
	cb := gobreaker.NewCircuitBreaker[*ClothingAttributes](gobreaker.Settings{
		Name:        "clothing-analyzer",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a photo without a garment is a user error, not an outage
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNoGarment)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("analyzer breaker state changed")
		},
	})
	return &BreakerAnalyzer{next: next, cb: cb}
}

func (b *BreakerAnalyzer) AnalyzeClothing(ctx context.Context, image []byte, mimeType string) (*ClothingAttributes, error) {
	return b.cb.Execute(func() (*ClothingAttributes, error) {
		return b.next.AnalyzeClothing(ctx, image, mimeType)
	})
}

// ApplyAttributes fills only the fields the owner left empty.
func ApplyAttributes(item *models.Clothing, attrs *ClothingAttributes) {
	if item.Name == "" {
		item.Name = attrs.Name
	}
	if item.Category == "" {
		item.Category = models.Category(attrs.Category)
	}
	if item.Color == "" {
		item.Color = languageutil.Normalize(attrs.Color)
	}
	if item.Pattern == "" {
		item.Pattern = languageutil.Normalize(attrs.Pattern)
	}
	if item.Style == "" {
		item.Style = languageutil.Normalize(attrs.Style)
	}
	if item.Formality == "" {
		item.Formality = models.Formality(attrs.Formality)
	}
	if item.Season == "" {
		item.Season = models.Season(attrs.Season)
	}
}
