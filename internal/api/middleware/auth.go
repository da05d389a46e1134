package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vidtube/video-platform/internal/api/metrics"
	"github.com/vidtube/video-platform/internal/core/domain"
	"github.com/vidtube/video-platform/internal/core/ports"
)

// Context keys set by the auth middleware.
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// extractToken pulls the access token from the request: the accessToken
// cookie takes precedence over the Authorization: Bearer header.
func extractToken(c echo.Context) string {
	if cookie, err := c.Cookie("accessToken"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// resolve verifies the token and loads the account behind it. The returned
// user never carries credential fields into responses (json-excluded).
func resolve(c echo.Context, tokens ports.TokenService, users ports.UserRepository) (*domain.User, error) {
	token := extractToken(c)
	if token == "" {
		metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized request")
	}

	userID, err := tokens.VerifyAccess(token)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
	}

	user, err := users.FindByID(c.Request().Context(), userID)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("user_gone").Inc()
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
	}
	return user, nil
}

// Auth rejects unauthenticated requests and injects the resolved user into
// the Echo context.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := resolve(c, tokens, users)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, user)
			c.Set(ContextUserIDKey, user.ID)
			return next(c)
		}
	}
}

// OptionalAuth attaches the user when a valid credential is present and lets
// the request through either way. Public endpoints that personalize their
// response (channel profile, video watch) use this.
func OptionalAuth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if extractToken(c) == "" {
				return next(c)
			}
			if user, err := resolve(c, tokens, users); err == nil {
				c.Set(ContextUserKey, user)
				c.Set(ContextUserIDKey, user.ID)
			}
			return next(c)
		}
	}
}
