package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/middleware"
	"github.com/vidtube/video-platform/internal/core/domain"
)

// ctxUser extracts the authenticated user injected by the Auth middleware and
// fast-fails before any service call when the middleware did not run.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextUserKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized request")
	}
	return user, nil
}

// ctxUserID returns the authenticated user's id, or "" on public routes where
// OptionalAuth found no credential.
func ctxUserID(c echo.Context) string {
	id, _ := c.Get(middleware.ContextUserIDKey).(string)
	return id
}
