package models

import (
	"strconv"
	"stylistapi/recommend"
)

const (
	ProcessingIdle      = "idle"
	ProcessingPending   = "pending"
	ProcessingCompleted = "completed"
	ProcessingFailed    = "failed"
)

type Clothing struct {
	JsonModel
	Name        string      `json:"name"`
	Description *string     `gorm:"type:text" json:"description"`
	Category    Category    `gorm:"index" json:"category"`
	Color       string      `json:"color"`
	Pattern     string      `json:"pattern"`
	Style       string      `json:"style"`
	Formality   Formality   `json:"formality"`
	Season      Season      `json:"season"`
	Owner       UserAccount `json:"-"`
	OwnerID     uint        `gorm:"index" json:"-"`
	// object key in the bucket, not a URL
	ImageURL            *string `json:"image_url"`
	ProcessingStatus    string  `json:"processing_status"` // idle, pending, completed, failed
	ProcessRetryTimes   int     `json:"process_retry_times"`
	ProcessErrorMessage *string `json:"process_error_message"`
}

// Recommendable reports whether the item has the attributes the engine needs.
// Items still waiting for photo analysis are left out.
func (c Clothing) Recommendable() bool {
	if c.ProcessingStatus == ProcessingPending {
		return false
	}
	return ValidateCategoryRaw(string(c.Category)) && c.Formality != "" && c.Season != ""
}

func (c Clothing) RecommendItem(imageURL string) recommend.ClothingItem {
	return recommend.ClothingItem{
		ID:        strconv.FormatUint(uint64(c.ID), 10),
		Name:      c.Name,
		Category:  recommend.Category(c.Category),
		Color:     c.Color,
		Pattern:   c.Pattern,
		Style:     c.Style,
		Formality: recommend.Formality(c.Formality),
		Season:    recommend.Season(c.Season),
		ImageURL:  imageURL,
	}
}

// RecommendWardrobe maps the recommendable items, resolving image keys through imageURL.
func RecommendWardrobe(clothes []Clothing, imageURL func(Clothing) string) []recommend.ClothingItem {
	items := make([]recommend.ClothingItem, 0, len(clothes))
	for _, c := range clothes {
		if !c.Recommendable() {
			continue
		}
		url := ""
		if imageURL != nil {
			url = imageURL(c)
		}
		items = append(items, c.RecommendItem(url))
	}
	return items
}
