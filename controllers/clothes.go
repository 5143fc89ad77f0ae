package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"stylistapi/languageutil"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/tasks"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type CreateClothingIn struct {
	Name        string  `json:"name" validate:"omitempty,max=100"`
	FileName    *string `json:"file_name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category" validate:"omitempty,category"`
	Color       string  `json:"color" validate:"omitempty,max=50"`
	Pattern     string  `json:"pattern" validate:"omitempty,max=50"`
	Style       string  `json:"style" validate:"omitempty,max=50"`
	Formality   string  `json:"formality" validate:"omitempty,formality"`
	Season      string  `json:"season" validate:"omitempty,season"`
	// Analyze asks the worker to fill missing attributes from the photo.
	Analyze *bool `json:"analyze" validate:"required"`
}

type UpdateClothingIn struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Category    *string `json:"category" validate:"omitempty,category"`
	Color       *string `json:"color" validate:"omitempty,max=50"`
	Pattern     *string `json:"pattern" validate:"omitempty,max=50"`
	Style       *string `json:"style" validate:"omitempty,max=50"`
	Formality   *string `json:"formality" validate:"omitempty,formality"`
	Season      *string `json:"season" validate:"omitempty,season"`
}

type ClothingResponse struct {
	ID                  uint    `json:"id"`
	Name                string  `json:"name"`
	Description         *string `json:"description"`
	Category            string  `json:"category"`
	Color               string  `json:"color"`
	Pattern             string  `json:"pattern"`
	Style               string  `json:"style"`
	Formality           string  `json:"formality"`
	Season              string  `json:"season"`
	ProcessingStatus    string  `json:"processing_status"`
	ProcessErrorMessage *string `json:"process_error_message,omitempty"`
	ImageURL            *string `json:"image_url,omitempty"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}

type ClothingCreatedResponse struct {
	Clothing      ClothingResponse `json:"clothes"`
	FileUploadUrl string           `json:"file_upload_url"`
}

type ClothesListResponse struct {
	Tops        []ClothingResponse `json:"tops"`
	Bottoms     []ClothingResponse `json:"bottoms"`
	Outerwear   []ClothingResponse `json:"outerwear"`
	Shoes       []ClothingResponse `json:"shoes"`
	Accessories []ClothingResponse `json:"accessories"`
	// items still waiting for a category
	Unsorted []ClothingResponse `json:"unsorted"`
}

func toClothingResponse(c models.Clothing, imageURL string) ClothingResponse {
	r := ClothingResponse{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		Category:            string(c.Category),
		Color:               c.Color,
		Pattern:             c.Pattern,
		Style:               c.Style,
		Formality:           string(c.Formality),
		Season:              string(c.Season),
		ProcessingStatus:    c.ProcessingStatus,
		ProcessErrorMessage: c.ProcessErrorMessage,
		CreatedAt:           c.CreatedAt.Format(timeLayout),
		UpdatedAt:           c.UpdatedAt.Format(timeLayout),
	}
	if imageURL != "" {
		r.ImageURL = &imageURL
	}
	return r
}

// imageResolver presigns photo links for many items at once.
type imageResolver struct {
	cache services.URLCacheServiceProvider
	limit int
}

func (r imageResolver) resolve(ctx context.Context, clothes []models.Clothing) (map[uint]string, error) {
	urls := make([]string, len(clothes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)
	for i, c := range clothes {
		if c.ImageURL == nil || *c.ImageURL == "" {
			continue
		}
		i, key := i, *c.ImageURL
		g.Go(func() error {
			url, err := r.cache.GetReadURL(gctx, key)
			if err != nil {
				return fmt.Errorf("presign %s: %w", key, err)
			}
			urls[i] = url
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	byID := make(map[uint]string, len(clothes))
	for i, c := range clothes {
		if urls[i] != "" {
			byID[c.ID] = urls[i]
		}
	}
	return byID, nil
}

type WardrobeController struct {
	Store      services.WardrobeStore
	AWSService services.AWSServiceProvider
	Images     imageResolver
	Tasks      TaskEnqueuer
}

func (controller *WardrobeController) WardrobeRoutes(g *echo.Group) {
	g.POST("/create", controller.CreateClothing)
	g.GET("/list", controller.ListClothes)
	g.PATCH("/:id", controller.UpdateClothing)
	g.DELETE("/:id", controller.DeleteClothing)
}

// objectKey keeps only the extension of the client file name.
func objectKey(ownerID uint, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if len(ext) > 10 {
		ext = ""
	}
	return fmt.Sprintf("wardrobe/%d/%s%s", ownerID, uuid.NewString(), ext)
}

func (controller *WardrobeController) CreateClothing(c echo.Context) error {
	var req CreateClothingIn
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

	clothing := models.Clothing{
		Name:             strings.TrimSpace(req.Name),
		Description:      req.Description,
		Category:         models.Category(req.Category),
		Color:            languageutil.Normalize(req.Color),
		Pattern:          languageutil.Normalize(req.Pattern),
		Style:            languageutil.Normalize(req.Style),
		Formality:        models.Formality(req.Formality),
		Season:           models.Season(req.Season),
		OwnerID:          user.ID,
		ProcessingStatus: models.ProcessingIdle,
	}
	key := objectKey(user.ID, *req.FileName)
	uploadUrl, err := controller.AWSService.PresignLink(ctx, key)
	if err != nil {
		log.Error().Err(err).Uint("user_id", user.ID).Msg("unable to presign upload")
		return errorJSON(c, http.StatusInternalServerError, "Error while creating clothe with attachment")
	}
	clothing.ImageURL = &key
	if *req.Analyze {
		clothing.ProcessingStatus = models.ProcessingPending
	}
	if err := controller.Store.CreateItem(ctx, &clothing); err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save clothing, please try again")
	}

	if *req.Analyze {
		task, err := tasks.NewAnalyzeClothingTask(clothing.ID)
		if err != nil {
			sentry.CaptureException(err)
			return errorJSON(c, http.StatusInternalServerError, "Sorry, could not process clothing, please try again")
		}
		info, err := controller.Tasks.Enqueue(task, asynq.MaxRetry(3), asynq.Queue(tasks.QueueAnalyze))
		if err != nil {
			sentry.CaptureException(err)
			return errorJSON(c, http.StatusInternalServerError, "Sorry, could not process clothing, please try again")
		}
		log.Info().Uint("clothing_id", clothing.ID).Str("task_id", info.ID).Msg("analyze clothing task submitted")
	}

	return c.JSON(http.StatusCreated, ClothingCreatedResponse{
		Clothing:      toClothingResponse(clothing, ""),
		FileUploadUrl: uploadUrl,
	})
}

func (controller *WardrobeController) ListClothes(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	ctx := c.Request().Context()
	clothes, err := controller.Store.ListItems(ctx, user.ID)
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to get clothes")
	}
	urls, err := controller.Images.resolve(ctx, clothes)
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to get clothes images")
	}

	response := ClothesListResponse{
		Tops:        []ClothingResponse{},
		Bottoms:     []ClothingResponse{},
		Outerwear:   []ClothingResponse{},
		Shoes:       []ClothingResponse{},
		Accessories: []ClothingResponse{},
		Unsorted:    []ClothingResponse{},
	}
	for _, item := range clothes {
		r := toClothingResponse(item, urls[item.ID])
		switch item.Category {
		case models.CategoryTop:
			response.Tops = append(response.Tops, r)
		case models.CategoryBottom:
			response.Bottoms = append(response.Bottoms, r)
		case models.CategoryOuterwear:
			response.Outerwear = append(response.Outerwear, r)
		case models.CategoryShoes:
			response.Shoes = append(response.Shoes, r)
		case models.CategoryAccessory:
			response.Accessories = append(response.Accessories, r)
		default:
			response.Unsorted = append(response.Unsorted, r)
		}
	}
	return c.JSON(http.StatusOK, response)
}

func (controller *WardrobeController) UpdateClothing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid clothing id")
	}
	var req UpdateClothingIn
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
	item, err := controller.Store.GetItem(ctx, user.ID, id)
	if errors.Is(err, services.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Clothing not found")
	}
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to get clothing")
	}

	if req.Name != nil {
		item.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Category != nil {
		item.Category = models.Category(*req.Category)
	}
	if req.Color != nil {
		item.Color = languageutil.Normalize(*req.Color)
	}
	if req.Pattern != nil {
		item.Pattern = languageutil.Normalize(*req.Pattern)
	}
	if req.Style != nil {
		item.Style = languageutil.Normalize(*req.Style)
	}
	if req.Formality != nil {
		item.Formality = models.Formality(*req.Formality)
	}
	if req.Season != nil {
		item.Season = models.Season(*req.Season)
	}
	if err := controller.Store.SaveItem(ctx, item); err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to update clothing, please try again")
	}
	urls, err := controller.Images.resolve(ctx, []models.Clothing{*item})
	if err != nil {
		log.Warn().Err(err).Uint("clothing_id", item.ID).Msg("image url unavailable")
	}
	return c.JSON(http.StatusOK, toClothingResponse(*item, urls[item.ID]))
}

func (controller *WardrobeController) DeleteClothing(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid clothing id")
	}
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	err = controller.Store.DeleteItem(c.Request().Context(), user.ID, id)
	if errors.Is(err, services.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Clothing not found")
	}
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete clothing")
	}
	return c.NoContent(http.StatusNoContent)
}
