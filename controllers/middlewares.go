package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"stylistapi/models"
	"stylistapi/services"

	"github.com/getsentry/sentry-go"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

func userIDFromToken(c echo.Context) (uint, bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// UserMiddleware loads the account named by the bearer token into "currentUser".
func UserMiddleware(profiles services.ProfileStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := userIDFromToken(c)
			if !ok {
				log.Debug().Msg("token without a usable subject")
				return echo.ErrUnauthorized
			}
			user, err := profiles.GetUser(c.Request().Context(), userID)
			if errors.Is(err, services.ErrNotFound) {
				return echo.ErrUnauthorized
			}
			if err != nil {
				sentry.CaptureException(err)
				return echo.ErrInternalServerError
			}
			if user.Banned {
				return echo.NewHTTPError(http.StatusLocked)
			}
			c.Set("currentUser", *user)
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (models.UserAccount, bool) {
	user, ok := c.Get("currentUser").(models.UserAccount)
	return user, ok
}
