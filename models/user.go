package models

import (
	"strconv"
	"stylistapi/recommend"
	"time"

	"github.com/lib/pq"
)

type JsonModel struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserAccount struct {
	JsonModel
	Name     string   `json:"name"`
	Email    string   `json:"email" gorm:"unique"`
	Banned   bool     `gorm:"default:false" json:"-"`
	Platform Platform `sql:"type:ENUM('ios', 'android', 'web')" json:"platform"`
	// Notifications settings
	ReceiveNotifications bool   `json:"receive_notifications"`
	AvatarURL            string `json:"avatar_url"`

	// style profile, height in centimeters
	Height            float64        `json:"height"`
	BodyType          string         `json:"body_type"`
	SkinTone          string         `json:"skin_tone"`
	HairColor         string         `json:"hair_color"`
	PreferredColors   pq.StringArray `gorm:"type:text[]" json:"preferred_colors"`
	PreferredStyles   pq.StringArray `gorm:"type:text[]" json:"preferred_styles"`
	PreferredPatterns pq.StringArray `gorm:"type:text[]" json:"preferred_patterns"`
	FaceShape         *string        `json:"face_shape"`
	EyeColor          *string        `json:"eye_color"`
	NoseType          *string        `json:"nose_type"`
	LipShape          *string        `json:"lip_shape"`

	// used by the daily outfit push
	DefaultOccasion string `json:"default_occasion"`
	DefaultWeather  string `json:"default_weather"`
}

type UserPushToken struct {
	JsonModel
	UserAccountID uint
	UserAccount   UserAccount `json:"user_account"`
	Platform      Platform    `sql:"type:ENUM('ios', 'android', 'web')" json:"platform"`
	Token         string      `json:"token"`
	Active        bool        `gorm:"default:false" json:"-"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// StyleProfile is the read-only view the recommendation engine works with.
func (u UserAccount) StyleProfile() recommend.UserProfile {
	profile := recommend.UserProfile{
		ID:        strconv.FormatUint(uint64(u.ID), 10),
		Name:      u.Name,
		Height:    u.Height,
		BodyType:  u.BodyType,
		SkinTone:  u.SkinTone,
		HairColor: u.HairColor,
		Preferences: recommend.Preferences{
			Colors:   []string(u.PreferredColors),
			Styles:   []string(u.PreferredStyles),
			Patterns: []string(u.PreferredPatterns),
		},
	}
	if u.FaceShape != nil || u.EyeColor != nil || u.NoseType != nil || u.LipShape != nil {
		profile.FacialFeatures = &recommend.FacialFeatures{
			FaceShape: deref(u.FaceShape),
			EyeColor:  deref(u.EyeColor),
			NoseType:  deref(u.NoseType),
			LipShape:  deref(u.LipShape),
		}
	}
	return profile
}
