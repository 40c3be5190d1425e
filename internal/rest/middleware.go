package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jsisencao/portal-juridico/internal/auth"
	"github.com/jsisencao/portal-juridico/internal/metrics"
)

// userIDKey is the echo context key the admin middleware stores the
// authenticated user id under.
const userIDKey = "userID"

// RequestLogger logs every request and feeds the HTTP metrics.
func RequestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			status := c.Response().Status
			metrics.ObserveHTTPRequest(c.Request().Method, c.Path(), strconv.Itoa(status), duration)

			log.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"remote_addr", c.Request().RemoteAddr,
			)

			return nil
		}
	}
}

// RequireAdmin verifies the bearer token and checks the admin role per
// request, so a revoked role locks out a still-valid token.
func RequireAdmin(authService *auth.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			userID, err := authService.VerifyToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			isAdmin, err := authService.IsAdmin(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
			if !isAdmin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin role required"})
			}

			c.Set(userIDKey, userID)

			return next(c)
		}
	}
}
