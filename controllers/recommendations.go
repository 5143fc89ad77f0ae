package controllers

import (
	"net/http"
	"stylistapi/models"
	"stylistapi/recommend"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type RecommendationIn struct {
	Occasion string `json:"occasion" validate:"required,max=40"`
	Weather  string `json:"weather" validate:"required,max=40"`
	Style    string `json:"style" validate:"omitempty,max=40"`
}

type RecommendationsResponse struct {
	Outfits []recommend.Outfit `json:"outfits"`
}

type RecommendationController struct {
	Store    services.WardrobeStore
	Images   imageResolver
	Generate GenerateFunc
}

func (controller *RecommendationController) RecommendationRoutes(g *echo.Group) {
	g.POST("", controller.Recommend)
}

func recommendationOutcome(outfits []recommend.Outfit) string {
	switch {
	case len(outfits) == 0:
		return "empty"
	case outfits[0].Fallback:
		return "fallback"
	default:
		return "outfits"
	}
}

func (controller *RecommendationController) Recommend(c echo.Context) error {
	var req RecommendationIn
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
	ctx := c.Request().Context()

	clothes, err := controller.Store.ListItems(ctx, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load wardrobe")
	}
	urls, err := controller.Images.resolve(ctx, clothes)
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to load wardrobe images")
	}
	wardrobe := models.RecommendWardrobe(clothes, func(item models.Clothing) string {
		return urls[item.ID]
	})

	outfits := controller.Generate(user.StyleProfile(), wardrobe, recommend.Request{
		Occasion: req.Occasion,
		Weather:  req.Weather,
		Style:    req.Style,
	})
	if outfits == nil {
		outfits = []recommend.Outfit{}
	}

	outcome := recommendationOutcome(outfits)
	// free-text keys would grow the label set without bound
	services.RecommendationRequests.WithLabelValues(recommend.KnownOccasion(req.Occasion), recommend.KnownWeather(req.Weather), outcome).Inc()
	services.RecommendationOutfits.Observe(float64(len(outfits)))
	log.Info().
		Uint("user_id", user.ID).
		Int("wardrobe", len(wardrobe)).
		Int("outfits", len(outfits)).
		Str("outcome", outcome).
		Msg("recommendations generated")

	return c.JSON(http.StatusOK, RecommendationsResponse{Outfits: outfits})
}
