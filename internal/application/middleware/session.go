package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"weather-favorites/internal/domain/favorites"
	"weather-favorites/internal/domain/model"
	"weather-favorites/internal/domain/usecase/session"
	"weather-favorites/pkg/msg"
)

const (
	UserIDHeader = "X-User-Id"

	storeKey = "favorites_store"
)

// UserID reads the caller identity header.
func UserID(c echo.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
}

// RequireSession rejects requests without an active in-memory session with 401 and exposes
// the user's store to handlers.
func RequireSession(sessions session.UseCase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := UserID(c)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: msg.GetMessage("error.login-required")})
			}

			store, ok := sessions.Store(userID)
			if !ok {
				return c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: msg.GetMessage("error.login-required")})
			}

			c.Set(storeKey, store)
			return next(c)
		}
	}
}

// Store returns the store attached by RequireSession.
func Store(c echo.Context) *favorites.Store {
	store, _ := c.Get(storeKey).(*favorites.Store)
	return store
}
