package models

import (
	"database/sql/driver"
	"regexp"

	"github.com/go-playground/validator"
)

type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

var platformPattern = regexp.MustCompile("^(ios|android|web)$")

func (l *Platform) Scan(value interface{}) error {
	s, err := scanString(value)
	*l = Platform(s)
	return err
}

func (l Platform) Value() (driver.Value, error) {
	return string(l), nil
}

func ValidatePlatform(fl validator.FieldLevel) bool {
	return platformPattern.MatchString(fl.Field().String())
}
