package controllers

import (
	"net/http"
	"strings"
	"stylistapi/languageutil"
	"stylistapi/models"
	"stylistapi/recommend"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
)

type UpdateProfileIn struct {
	Name                 *string  `json:"name" validate:"omitempty,max=100"`
	Height               *float64 `json:"height" validate:"omitempty,gt=0,lt=300"`
	BodyType             *string  `json:"body_type" validate:"omitempty,body_type"`
	SkinTone             *string  `json:"skin_tone" validate:"omitempty,skin_tone"`
	HairColor            *string  `json:"hair_color" validate:"omitempty,hair_color"`
	PreferredColors      []string `json:"preferred_colors" validate:"omitempty,max=20,dive,max=40"`
	PreferredStyles      []string `json:"preferred_styles" validate:"omitempty,max=20,dive,max=40"`
	PreferredPatterns    []string `json:"preferred_patterns" validate:"omitempty,max=20,dive,max=40"`
	FaceShape            *string  `json:"face_shape" validate:"omitempty,max=40"`
	EyeColor             *string  `json:"eye_color" validate:"omitempty,max=40"`
	NoseType             *string  `json:"nose_type" validate:"omitempty,max=40"`
	LipShape             *string  `json:"lip_shape" validate:"omitempty,max=40"`
	DefaultOccasion      *string  `json:"default_occasion" validate:"omitempty,max=40"`
	DefaultWeather       *string  `json:"default_weather" validate:"omitempty,max=40"`
	ReceiveNotifications *bool    `json:"receive_notifications"`
}

type PushTokenIn struct {
	Token    string `json:"token" validate:"required,max=4096"`
	Platform string `json:"platform" validate:"required,platform"`
}

type StyleSuggestionsResponse struct {
	BodyType    string                 `json:"body_type"`
	Category    string                 `json:"category"`
	Suggestions []recommend.Suggestion `json:"suggestions"`
}

type RecommendedItemsResponse struct {
	BodyType string                   `json:"body_type"`
	Category string                   `json:"category"`
	Items    []recommend.ClothingItem `json:"items"`
}

type ProfileController struct {
	Store      services.ProfileStore
	StyleGuide *recommend.StyleGuide
}

func (controller *ProfileController) ProfileRoutes(g *echo.Group) {
	g.GET("/me", controller.GetProfile)
	g.PUT("/me", controller.UpdateProfile)
	g.POST("/push-token", controller.SavePushToken)
	g.GET("/style-suggestions", controller.StyleSuggestions)
	g.GET("/recommended-items", controller.RecommendedItems)
}

func (controller *ProfileController) GetProfile(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	return c.JSON(http.StatusOK, user)
}

// normalizeList lowercases the values and drops blanks and repeats.
func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		v = languageutil.Normalize(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// optional maps an empty string to nil so cleared features disappear from the profile.
func optional(value *string) *string {
	v := strings.TrimSpace(*value)
	if v == "" {
		return nil
	}
	return &v
}

func (controller *ProfileController) UpdateProfile(c echo.Context) error {
	var req UpdateProfileIn
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Height != nil {
		user.Height = *req.Height
	}
	if req.BodyType != nil {
		user.BodyType = *req.BodyType
	}
	if req.SkinTone != nil {
		user.SkinTone = *req.SkinTone
	}
	if req.HairColor != nil {
		user.HairColor = *req.HairColor
	}
	if req.PreferredColors != nil {
		user.PreferredColors = normalizeList(req.PreferredColors)
	}
	if req.PreferredStyles != nil {
		user.PreferredStyles = normalizeList(req.PreferredStyles)
	}
	if req.PreferredPatterns != nil {
		user.PreferredPatterns = normalizeList(req.PreferredPatterns)
	}
	if req.FaceShape != nil {
		user.FaceShape = optional(req.FaceShape)
	}
	if req.EyeColor != nil {
		user.EyeColor = optional(req.EyeColor)
	}
	if req.NoseType != nil {
		user.NoseType = optional(req.NoseType)
	}
	if req.LipShape != nil {
		user.LipShape = optional(req.LipShape)
	}
	if req.DefaultOccasion != nil {
		user.DefaultOccasion = languageutil.Normalize(*req.DefaultOccasion)
	}
	if req.DefaultWeather != nil {
		user.DefaultWeather = languageutil.Normalize(*req.DefaultWeather)
	}
	if req.ReceiveNotifications != nil {
		user.ReceiveNotifications = *req.ReceiveNotifications
	}

	if err := controller.Store.UpdateProfile(c.Request().Context(), &user); err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to update profile, please try again")
	}
	return c.JSON(http.StatusOK, user)
}

func (controller *ProfileController) SavePushToken(c echo.Context) error {
	var req PushTokenIn
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	token := models.UserPushToken{
		UserAccountID: user.ID,
		Platform:      models.Platform(req.Platform),
		Token:         req.Token,
	}
	if err := controller.Store.SavePushToken(c.Request().Context(), &token); err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save push token")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "ok"})
}

func (controller *ProfileController) StyleSuggestions(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	category := languageutil.Normalize(c.QueryParam("category"))
	if category != "" && category != recommend.SuggestionAll && !models.ValidateCategoryRaw(category) {
		return errorJSON(c, http.StatusBadRequest, "Unknown category")
	}
	return c.JSON(http.StatusOK, StyleSuggestionsResponse{
		BodyType:    string(recommend.ParseBodyType(user.BodyType)),
		Category:    category,
		Suggestions: controller.StyleGuide.Suggestions(user.BodyType, category),
	})
}

func (controller *ProfileController) RecommendedItems(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	category := languageutil.Normalize(c.QueryParam("category"))
	if category != "" && category != recommend.SuggestionAll && !models.ValidateCategoryRaw(category) {
		return errorJSON(c, http.StatusBadRequest, "Unknown category")
	}
	items := recommend.RecommendedItems(user.BodyType, category)
	if items == nil {
		items = []recommend.ClothingItem{}
	}
	return c.JSON(http.StatusOK, RecommendedItemsResponse{
		BodyType: string(recommend.ParseBodyType(user.BodyType)),
		Category: category,
		Items:    items,
	})
}
