package models

import (
	"regexp"

	"github.com/go-playground/validator"
)

// Profile attributes are stored as plain text columns; only the accepted values are enforced.

var (
	bodyTypePattern  = regexp.MustCompile("^(athletic|slim|curvy|muscular|pear|rectangle|hourglass)$")
	skinTonePattern  = regexp.MustCompile("^(fair|light|medium|tan|deep|dark)$")
	hairColorPattern = regexp.MustCompile("^(black|brown|blonde|red|gray|other)$")
)

func ValidateBodyType(fl validator.FieldLevel) bool {
	return bodyTypePattern.MatchString(fl.Field().String())
}

func ValidateSkinTone(fl validator.FieldLevel) bool {
	return skinTonePattern.MatchString(fl.Field().String())
}

func ValidateHairColor(fl validator.FieldLevel) bool {
	return hairColorPattern.MatchString(fl.Field().String())
}
