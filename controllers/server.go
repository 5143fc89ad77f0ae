package controllers

import (
	"context"
	"net/http"
	"stylistapi/models"
	"stylistapi/recommend"
	"stylistapi/services"

	"github.com/go-playground/validator"
	"github.com/hibiken/asynq"
	echojwt "github.com/labstack/echo-jwt"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("platform", models.ValidatePlatform)
	v.RegisterValidation("category", models.ValidateCategory)
	v.RegisterValidation("formality", models.ValidateFormality)
	v.RegisterValidation("season", models.ValidateSeason)
	v.RegisterValidation("body_type", models.ValidateBodyType)
	v.RegisterValidation("skin_tone", models.ValidateSkinTone)
	v.RegisterValidation("hair_color", models.ValidateHairColor)
	v.RegisterValidation("reaction", models.ValidateReaction)
	return &CustomValidator{validator: v}
}

// TaskEnqueuer is satisfied by *asynq.Client.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type GenerateFunc func(user recommend.UserProfile, wardrobe []recommend.ClothingItem, req recommend.Request) []recommend.Outfit

type ServerDeps struct {
	Wardrobe   services.WardrobeStore
	Profiles   services.ProfileStore
	Outfits    services.OutfitStore
	AWSService services.AWSServiceProvider
	URLCache   services.URLCacheServiceProvider
	Tasks      TaskEnqueuer
	JWTSecret  string
	// PresignConcurrency bounds parallel image URL lookups per request.
	PresignConcurrency int
	StyleGuide         *recommend.StyleGuide
	Generate           GenerateFunc
}

func SetupServer(deps ServerDeps) *echo.Echo {
	if err := deps.AWSService.InitPresignClient(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize AWS provider: S3")
	}
	if deps.StyleGuide == nil {
		deps.StyleGuide = recommend.DefaultStyleGuide
	}
	if deps.Generate == nil {
		deps.Generate = recommend.GenerateRecommendations
	}
	if deps.PresignConcurrency <= 0 {
		deps.PresignConcurrency = 8
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	authed := func(prefix string) *echo.Group {
		return e.Group(prefix, echojwt.JWT([]byte(deps.JWTSecret)), UserMiddleware(deps.Profiles))
	}
	images := imageResolver{cache: deps.URLCache, limit: deps.PresignConcurrency}

	wardrobeController := WardrobeController{Store: deps.Wardrobe, AWSService: deps.AWSService, Images: images, Tasks: deps.Tasks}
	wardrobeController.WardrobeRoutes(authed("/wardrobe"))

	profileController := ProfileController{Store: deps.Profiles, StyleGuide: deps.StyleGuide}
	profileController.ProfileRoutes(authed("/profile"))

	recommendationController := RecommendationController{Store: deps.Wardrobe, Images: images, Generate: deps.Generate}
	recommendationController.RecommendationRoutes(authed("/recommendations"))

	outfitController := OutfitController{Store: deps.Outfits, Wardrobe: deps.Wardrobe}
	outfitController.OutfitRoutes(authed("/outfits"))

	return e
}
