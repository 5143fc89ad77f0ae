package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/labstack/echo/v4"
	"github.com/lib/pq"
)

type SaveOutfitIn struct {
	OutfitID   string   `json:"outfit_id" validate:"required,max=64"`
	Name       string   `json:"name" validate:"required,max=200"`
	Occasion   string   `json:"occasion" validate:"omitempty,max=40"`
	Weather    string   `json:"weather" validate:"omitempty,max=40"`
	Season     string   `json:"season" validate:"omitempty,season"`
	Style      string   `json:"style" validate:"omitempty,max=40"`
	Confidence float64  `json:"confidence" validate:"gte=0,lte=1"`
	ItemIDs    []uint   `json:"item_ids" validate:"required,min=1,max=5,dive,gt=0"`
	Tags       []string `json:"tags" validate:"omitempty,max=20,dive,max=40"`
	Reaction   string   `json:"reaction" validate:"required,reaction"`
}

type OutfitController struct {
	Store    services.OutfitStore
	Wardrobe services.WardrobeStore
}

func (controller *OutfitController) OutfitRoutes(g *echo.Group) {
	g.POST("", controller.SaveOutfit)
	g.GET("", controller.ListOutfits)
	g.DELETE("/:id", controller.DeleteOutfit)
}

func (controller *OutfitController) SaveOutfit(c echo.Context) error {
	var req SaveOutfitIn
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

	itemIDs := make(pq.Int64Array, 0, len(req.ItemIDs))
	for _, id := range req.ItemIDs {
		_, err := controller.Wardrobe.GetItem(ctx, user.ID, id)
		if errors.Is(err, services.ErrNotFound) {
			return errorJSON(c, http.StatusBadRequest, fmt.Sprintf("Item %d is not in your wardrobe", id))
		}
		if err != nil {
			sentry.CaptureException(err)
			return errorJSON(c, http.StatusInternalServerError, "Failed to check outfit items")
		}
		itemIDs = append(itemIDs, int64(id))
	}

	outfit := models.SavedOutfit{
		OwnerID:    user.ID,
		OutfitKey:  req.OutfitID,
		Name:       req.Name,
		Occasion:   req.Occasion,
		Weather:    req.Weather,
		Season:     req.Season,
		Style:      req.Style,
		Confidence: req.Confidence,
		ItemIDs:    itemIDs,
		Tags:       normalizeList(req.Tags),
		Reaction:   models.Reaction(req.Reaction),
	}
	if err := controller.Store.SaveOutfit(ctx, &outfit); err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to save outfit, please try again")
	}
	return c.JSON(http.StatusCreated, outfit)
}

func (controller *OutfitController) ListOutfits(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	reaction := c.QueryParam("reaction")
	if reaction != "" && !models.ValidateReactionRaw(reaction) {
		return errorJSON(c, http.StatusBadRequest, "Unknown reaction")
	}
	outfits, err := controller.Store.ListOutfits(c.Request().Context(), user.ID, reaction)
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to get outfits")
	}
	if outfits == nil {
		outfits = []models.SavedOutfit{}
	}
	return c.JSON(http.StatusOK, outfits)
}

func (controller *OutfitController) DeleteOutfit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid outfit id")
	}
	user, ok := currentUser(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Unauthorized")
	}
	err = controller.Store.DeleteOutfit(c.Request().Context(), user.ID, id)
	if errors.Is(err, services.ErrNotFound) {
		return errorJSON(c, http.StatusNotFound, "Outfit not found")
	}
	if err != nil {
		sentry.CaptureException(err)
		return errorJSON(c, http.StatusInternalServerError, "Failed to delete outfit")
	}
	return c.NoContent(http.StatusNoContent)
}
