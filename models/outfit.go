package models

import (
	"regexp"

	"github.com/go-playground/validator"
	"github.com/lib/pq"
)

type Reaction string

const (
	ReactionSaved    Reaction = "saved"
	ReactionLiked    Reaction = "liked"
	ReactionDisliked Reaction = "disliked"
)

var reactionPattern = regexp.MustCompile("^(saved|liked|disliked)$")

func ValidateReaction(fl validator.FieldLevel) bool {
	return reactionPattern.MatchString(fl.Field().String())
}

func ValidateReactionRaw(value string) bool {
	return reactionPattern.MatchString(value)
}

// SavedOutfit keeps a generated outfit the user reacted to. OutfitKey is the id the
// engine returned; the outfit itself is never regenerated.
type SavedOutfit struct {
	JsonModel
	OwnerID    uint           `gorm:"index" json:"-"`
	Owner      UserAccount    `json:"-"`
	OutfitKey  string         `gorm:"index" json:"outfit_key"`
	Name       string         `json:"name"`
	Occasion   string         `json:"occasion"`
	Weather    string         `json:"weather"`
	Season     string         `json:"season"`
	Style      string         `json:"style"`
	Confidence float64        `json:"confidence"`
	ItemIDs    pq.Int64Array  `gorm:"type:bigint[]" json:"item_ids"`
	Tags       pq.StringArray `gorm:"type:text[]" json:"tags"`
	Reaction   Reaction       `json:"reaction"`
}
