package rest

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsisencao/portal-juridico/internal/auth"
)

const apiV1Prefix = "/api/v1"

// RegisterRoutes assembles the echo server: public reads, auth, the JWT-gated
// admin group, health, metrics and the JSON-RPC mount.
func RegisterRoutes(h *Handler, adminHandler *AdminHandler, authService *auth.Service, log *slog.Logger, rpcHandler http.Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(RequestLogger(log))

	api := e.Group(apiV1Prefix)

	api.GET("/articles", h.Articles)
	api.GET("/articles/featured", h.FeaturedArticles)
	api.GET("/articles/category/:slug", h.ArticlesByCategory)
	api.GET("/articles/slug/:slug", h.ArticleBySlug)
	api.GET("/articles/:id", h.ArticleByID)
	api.GET("/search", h.Search)
	api.GET("/categories", h.Categories)
	api.GET("/categories/with-count", h.CategoriesWithCount)
	api.GET("/categories/:slug", h.CategoryBySlug)
	api.GET("/authors", h.Authors)
	api.GET("/ads/:position", h.AdsByPosition)
	api.POST("/ads/:id/click", h.AdClick)

	api.POST("/auth/login", adminHandler.Login)

	adminGroup := api.Group("/admin", RequireAdmin(authService))
	adminGroup.GET("/articles", adminHandler.Articles)
	adminGroup.GET("/articles/:id", adminHandler.ArticleByID)
	adminGroup.POST("/articles", adminHandler.CreateArticle)
	adminGroup.PUT("/articles/:id", adminHandler.UpdateArticle)
	adminGroup.DELETE("/articles/:id", adminHandler.DeleteArticle)

	adminGroup.GET("/categories", adminHandler.Categories)
	adminGroup.POST("/categories", adminHandler.CreateCategory)
	adminGroup.PUT("/categories/:id", adminHandler.UpdateCategory)
	adminGroup.DELETE("/categories/:id", adminHandler.DeleteCategory)

	adminGroup.GET("/authors", adminHandler.Authors)
	adminGroup.POST("/authors", adminHandler.CreateAuthor)
	adminGroup.PUT("/authors/:id", adminHandler.UpdateAuthor)
	adminGroup.DELETE("/authors/:id", adminHandler.DeleteAuthor)

	adminGroup.GET("/ads", adminHandler.Ads)
	adminGroup.POST("/ads", adminHandler.CreateAd)
	adminGroup.PUT("/ads/:id", adminHandler.UpdateAd)
	adminGroup.DELETE("/ads/:id", adminHandler.DeleteAd)

	adminGroup.POST("/upload", adminHandler.Upload)
	adminGroup.DELETE("/upload", adminHandler.DeleteUpload)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	if rpcHandler != nil {
		e.POST("/rpc", echo.WrapHandler(rpcHandler))
	}

	return e
}
