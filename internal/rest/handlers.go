package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/urlstruct"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jsisencao/portal-juridico/internal/db"
	"github.com/jsisencao/portal-juridico/internal/portal"
)

type ArticlesRequest struct {
	Limit int
}

type SearchRequest struct {
	Q string
}

// Handler serves the public read API.
type Handler struct {
	portal *portal.Service
	log    *slog.Logger
}

func NewHandler(service *portal.Service, log *slog.Logger) *Handler {
	return &Handler{
		portal: service,
		log:    log,
	}
}

func (h *Handler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.JSON(statusCode, map[string]string{"error": message})
}

// Articles handles GET /api/v1/articles
// @Summary List published articles
// @Description Returns published articles with category, author and tags, newest first
// @Tags articles
// @Produce json
// @Param limit query int false "Maximum number of articles (0 = all)"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/articles [get]
func (h *Handler) Articles(c echo.Context) error {
	var req ArticlesRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.portal.PublishedArticles(c.Request().Context(), req.Limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticle))
}

// FeaturedArticles handles GET /api/v1/articles/featured
// @Summary List featured articles
// @Description Returns published articles flagged as featured, newest first (default limit 2)
// @Tags articles
// @Produce json
// @Param limit query int false "Maximum number of articles (default 2)"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/articles/featured [get]
func (h *Handler) FeaturedArticles(c echo.Context) error {
	var req ArticlesRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	articles, err := h.portal.FeaturedArticles(c.Request().Context(), req.Limit)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticle))
}

// ArticlesByCategory handles GET /api/v1/articles/category/:slug
// @Summary List published articles of a category
// @Description Returns the published articles of the category; an unknown slug yields an empty list
// @Tags articles
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {array} rest.Article
// @Failure 500 {object} map[string]string
// @Router /api/v1/articles/category/{slug} [get]
func (h *Handler) ArticlesByCategory(c echo.Context) error {
	articles, err := h.portal.ArticlesByCategorySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticle))
}

// ArticleBySlug handles GET /api/v1/articles/slug/:slug
// @Summary Get one published article by slug
// @Description Unpublished articles are not found here, even with the exact slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} rest.Article
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/articles/slug/{slug} [get]
func (h *Handler) ArticleBySlug(c echo.Context) error {
	article, err := h.portal.ArticleBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// ArticleByID handles GET /api/v1/articles/:id
// @Summary Get one published article by id
// @Tags articles
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/articles/{id} [get]
func (h *Handler) ArticleByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.portal.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if article == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "article not found"})
	}

	return c.JSON(http.StatusOK, NewArticle(*article))
}

// Search handles GET /api/v1/search
// @Summary Search published articles
// @Description Case-insensitive substring match over title, excerpt and content
// @Tags articles
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} rest.Article
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *Handler) Search(c echo.Context) error {
	var req SearchRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request parameters")
	}

	if req.Q == "" {
		return c.JSON(http.StatusOK, []Article{})
	}

	articles, err := h.portal.SearchArticles(c.Request().Context(), req.Q)
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(articles, NewArticle))
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.portal.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategory))
}

// CategoriesWithCount handles GET /api/v1/categories/with-count
// @Summary List categories with published-article counts
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories/with-count [get]
func (h *Handler) CategoriesWithCount(c echo.Context) error {
	categories, err := h.portal.CategoriesWithCount(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(categories, NewCategoryWithCount))
}

// CategoryBySlug handles GET /api/v1/categories/:slug
// @Summary Get one category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} rest.Category
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/categories/{slug} [get]
func (h *Handler) CategoryBySlug(c echo.Context) error {
	category, err := h.portal.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if category == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "category not found"})
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// Authors handles GET /api/v1/authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} rest.Author
// @Failure 500 {object} map[string]string
// @Router /api/v1/authors [get]
func (h *Handler) Authors(c echo.Context) error {
	authors, err := h.portal.Authors(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, Map(authors, NewAuthor))
}

// AdsByPosition handles GET /api/v1/ads/:position
// @Summary List active ads for a placement slot
// @Description Returns active ads whose date window contains now and records one impression per returned ad
// @Tags ads
// @Produce json
// @Param position path string true "Placement slot" Enums(sidebar, homepage-top, homepage-middle, article-bottom)
// @Success 200 {array} rest.Ad
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/ads/{position} [get]
func (h *Handler) AdsByPosition(c echo.Context) error {
	position := c.Param("position")
	if !validAdPosition(position) {
		return h.handleError(c, nil, http.StatusBadRequest, "unknown ad position")
	}

	ads, err := h.portal.AdsByPosition(c.Request().Context(), position, time.Now())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	if len(ads) > 0 {
		ids := make([]uuid.UUID, len(ads))
		for i := range ads {
			ids[i] = ads[i].ID
		}
		if err := h.portal.RecordAdImpressions(c.Request().Context(), ids); err != nil {
			// the ads are still served; losing an impression beats a 500
			h.log.Error("failed to record ad impressions", "error", err)
		}
	}

	return c.JSON(http.StatusOK, Map(ads, NewAd))
}

// AdClick handles POST /api/v1/ads/:id/click
// @Summary Record an ad click
// @Tags ads
// @Param id path string true "Ad ID"
// @Success 204
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/ads/{id}/click [post]
func (h *Handler) AdClick(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	if err := h.portal.RecordAdClick(c.Request().Context(), id); err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.NoContent(http.StatusNoContent)
}

func validAdPosition(position string) bool {
	for _, p := range db.AdPositions {
		if p == position {
			return true
		}
	}
	return false
}
