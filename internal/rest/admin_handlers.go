package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/jsisencao/portal-juridico/internal/admin"
	"github.com/jsisencao/portal-juridico/internal/auth"
	"github.com/jsisencao/portal-juridico/internal/db"
	"github.com/jsisencao/portal-juridico/internal/storage"
)

const maxUploadBytes = 10 << 20

// AdminHandler serves the back-office API: login, content CRUD and image
// upload. Everything except Login sits behind the admin middleware.
type AdminHandler struct {
	admin  *admin.Service
	auth   *auth.Service
	images *storage.ImageStore
	log    *slog.Logger
}

func NewAdminHandler(adminService *admin.Service, authService *auth.Service, images *storage.ImageStore, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		admin:  adminService,
		auth:   authService,
		images: images,
		log:    log,
	}
}

// writeError maps the service error taxonomy onto status codes: validation
// field maps and slug conflicts become 400, missing rows 404, the rest 500.
func (h *AdminHandler) writeError(c echo.Context, err error) error {
	var fields validation.Errors
	switch {
	case errors.As(err, &fields):
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": fields})
	case errors.Is(err, db.ErrSlugTaken):
		return c.JSON(http.StatusBadRequest, map[string]any{
			"errors": map[string]string{"slug": "already in use"},
		})
	case errors.Is(err, admin.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		h.log.Error("admin request failed", "error", err, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Sign in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body rest.LoginRequest true "Credentials"
// @Success 200 {object} rest.LoginResponse
// @Failure 400,401,500 {object} map[string]string
// @Router /api/v1/auth/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	token, err := h.auth.SignIn(c.Request().Context(), req.Email, req.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	} else if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Articles handles GET /api/v1/admin/articles
// @Summary List every article, drafts included
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} rest.Article
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/articles [get]
func (h *AdminHandler) Articles(c echo.Context) error {
	articles, err := h.admin.Articles(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, Map(articles, NewAdminArticle))
}

// ArticleByID handles GET /api/v1/admin/articles/:id
// @Summary Get one article in any publication state
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Article ID"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [get]
func (h *AdminHandler) ArticleByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	article, err := h.admin.ArticleByID(c.Request().Context(), id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewAdminArticle(*article))
}

// CreateArticle handles POST /api/v1/admin/articles
// @Summary Create an article
// @Description Empty slug is derived from the title; publishing stamps the publication time
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param article body admin.ArticleInput true "Article"
// @Success 201 {object} rest.Article
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/articles [post]
func (h *AdminHandler) CreateArticle(c echo.Context) error {
	var in admin.ArticleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	article, err := h.admin.CreateArticle(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	out := NewAdminArticle(*article)
	out.Tags = in.Tags
	if out.Tags == nil {
		out.Tags = []string{}
	}

	return c.JSON(http.StatusCreated, out)
}

// UpdateArticle handles PUT /api/v1/admin/articles/:id
// @Summary Update an article
// @Description Tags are replaced wholesale; re-saving a published article keeps its original publication time
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Article ID"
// @Param article body admin.ArticleInput true "Article"
// @Success 200 {object} rest.Article
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [put]
func (h *AdminHandler) UpdateArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var in admin.ArticleInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	article, err := h.admin.UpdateArticle(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err)
	}

	out := NewAdminArticle(*article)
	out.Tags = in.Tags
	if out.Tags == nil {
		out.Tags = []string{}
	}

	return c.JSON(http.StatusOK, out)
}

// DeleteArticle handles DELETE /api/v1/admin/articles/:id
// @Summary Delete an article and its tags
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/articles/{id} [delete]
func (h *AdminHandler) DeleteArticle(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.admin.DeleteArticle(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Categories handles GET /api/v1/admin/categories
// @Summary List categories
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/categories [get]
func (h *AdminHandler) Categories(c echo.Context) error {
	categories, err := h.admin.Categories(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, Map(categories, NewAdminCategory))
}

// CreateCategory handles POST /api/v1/admin/categories
// @Summary Create a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param category body admin.CategoryInput true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/categories [post]
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var in admin.CategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	category, err := h.admin.CreateCategory(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAdminCategory(*category))
}

// UpdateCategory handles PUT /api/v1/admin/categories/:id
// @Summary Update a category
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body admin.CategoryInput true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [put]
func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var in admin.CategoryInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	category, err := h.admin.UpdateCategory(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewAdminCategory(*category))
}

// DeleteCategory handles DELETE /api/v1/admin/categories/:id
// @Summary Delete a category; its articles keep existing without a category
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{id} [delete]
func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.admin.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Authors handles GET /api/v1/admin/authors
// @Summary List authors
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} rest.Author
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors [get]
func (h *AdminHandler) Authors(c echo.Context) error {
	authors, err := h.admin.Authors(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, Map(authors, NewAdminAuthor))
}

// CreateAuthor handles POST /api/v1/admin/authors
// @Summary Create an author
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param author body admin.AuthorInput true "Author"
// @Success 201 {object} rest.Author
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/authors [post]
func (h *AdminHandler) CreateAuthor(c echo.Context) error {
	var in admin.AuthorInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	author, err := h.admin.CreateAuthor(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAdminAuthor(*author))
}

// UpdateAuthor handles PUT /api/v1/admin/authors/:id
// @Summary Update an author
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Author ID"
// @Param author body admin.AuthorInput true "Author"
// @Success 200 {object} rest.Author
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/authors/{id} [put]
func (h *AdminHandler) UpdateAuthor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var in admin.AuthorInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	author, err := h.admin.UpdateAuthor(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewAdminAuthor(*author))
}

// DeleteAuthor handles DELETE /api/v1/admin/authors/:id
// @Summary Delete an author; their articles keep existing without an author
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Author ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/authors/{id} [delete]
func (h *AdminHandler) DeleteAuthor(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.admin.DeleteAuthor(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Ads handles GET /api/v1/admin/ads
// @Summary List every ad with its counters
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} rest.Ad
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/ads [get]
func (h *AdminHandler) Ads(c echo.Context) error {
	ads, err := h.admin.Ads(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, Map(ads, NewAdminAd))
}

// CreateAd handles POST /api/v1/admin/ads
// @Summary Create an ad
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param ad body admin.AdInput true "Ad"
// @Success 201 {object} rest.Ad
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/ads [post]
func (h *AdminHandler) CreateAd(c echo.Context) error {
	var in admin.AdInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ad, err := h.admin.CreateAd(c.Request().Context(), in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, NewAdminAd(*ad))
}

// UpdateAd handles PUT /api/v1/admin/ads/:id
// @Summary Update an ad
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Ad ID"
// @Param ad body admin.AdInput true "Ad"
// @Success 200 {object} rest.Ad
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/ads/{id} [put]
func (h *AdminHandler) UpdateAd(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var in admin.AdInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	ad, err := h.admin.UpdateAd(c.Request().Context(), id, in)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, NewAdminAd(*ad))
}

// DeleteAd handles DELETE /api/v1/admin/ads/:id
// @Summary Delete an ad
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Ad ID"
// @Success 204
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/admin/ads/{id} [delete]
func (h *AdminHandler) DeleteAd(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.admin.DeleteAd(c.Request().Context(), id); err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Upload handles POST /api/v1/admin/upload
// @Summary Upload an image and get its durable URL
// @Tags admin
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} rest.UploadResponse
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/upload [post]
func (h *AdminHandler) Upload(c echo.Context) error {
	if h.images == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage not configured"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing file"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file too large"})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "only images are accepted"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return h.writeError(c, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		return h.writeError(c, err)
	}

	url, err := h.images.UploadImage(c.Request().Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, UploadResponse{URL: url})
}

// DeleteUpload handles DELETE /api/v1/admin/upload
// @Summary Delete an uploaded image by its URL
// @Tags admin
// @Security BearerAuth
// @Param url query string true "Image URL returned by upload"
// @Success 204
// @Failure 400,401,403,500 {object} map[string]string
// @Router /api/v1/admin/upload [delete]
func (h *AdminHandler) DeleteUpload(c echo.Context) error {
	if h.images == nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage not configured"})
	}

	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing url"})
	}

	err := h.images.DeleteByURL(c.Request().Context(), rawURL)
	if errors.Is(err, storage.ErrForeignURL) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url is not an uploaded image"})
	} else if err != nil {
		return h.writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
