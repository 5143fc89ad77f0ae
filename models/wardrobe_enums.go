package models

import (
	"database/sql/driver"
	"fmt"
	"regexp"

	"github.com/go-playground/validator"
)

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

type Formality string

const (
	FormalityCasual      Formality = "casual"
	FormalitySmartCasual Formality = "smart casual"
	FormalityFormal      Formality = "formal"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

var (
	categoryPattern  = regexp.MustCompile("^(top|bottom|outerwear|shoes|accessory)$")
	formalityPattern = regexp.MustCompile("^(casual|smart casual|formal)$")
	seasonPattern    = regexp.MustCompile("^(spring|summer|fall|winter|all)$")
)

func scanString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("unsupported enum value %T", value)
	}
}

func (c *Category) Scan(value interface{}) error {
	s, err := scanString(value)
	*c = Category(s)
	return err
}

func (c Category) Value() (driver.Value, error) {
	return string(c), nil
}

func ValidateCategory(fl validator.FieldLevel) bool {
	return categoryPattern.MatchString(fl.Field().String())
}

func ValidateCategoryRaw(value string) bool {
	return categoryPattern.MatchString(value)
}

func (f *Formality) Scan(value interface{}) error {
	s, err := scanString(value)
	*f = Formality(s)
	return err
}

func (f Formality) Value() (driver.Value, error) {
	return string(f), nil
}

func ValidateFormality(fl validator.FieldLevel) bool {
	return formalityPattern.MatchString(fl.Field().String())
}

func ValidateFormalityRaw(value string) bool {
	return formalityPattern.MatchString(value)
}

func (s *Season) Scan(value interface{}) error {
	v, err := scanString(value)
	*s = Season(v)
	return err
}

func (s Season) Value() (driver.Value, error) {
	return string(s), nil
}

func ValidateSeason(fl validator.FieldLevel) bool {
	return seasonPattern.MatchString(fl.Field().String())
}

func ValidateSeasonRaw(value string) bool {
	return seasonPattern.MatchString(value)
}
