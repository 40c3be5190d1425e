// Package admin is the back-office mutation layer: validated create, update
// and delete for every content entity, slug derivation, publish stamping and
// cache invalidation after each successful write.
package admin

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/cache"
	"github.com/jsisencao/portal-juridico/internal/db"
)

type Service struct {
	store Store
	cache *cache.Store
	log   *slog.Logger
	now   func() time.Time
}

func NewService(store Store, cacheStore *cache.Store, logger *slog.Logger) *Service {
	return &Service{
		store: store,
		cache: cacheStore,
		log:   logger,
		now:   time.Now,
	}
}

// Writers over-invalidate: every cache key that may embed the touched entity
// goes, stale entries are never served.

func (s *Service) invalidateArticles() {
	s.cache.InvalidatePrefix("articles", "article", "categories:withCount", "admin:articles")
}

func (s *Service) invalidateCategories() {
	s.cache.InvalidatePrefix("categories", "category", "articles", "article", "admin:categories")
}

func (s *Service) invalidateAuthors() {
	s.cache.InvalidatePrefix("authors", "articles", "article", "admin:authors")
}

func (s *Service) invalidateAds() {
	s.cache.InvalidatePrefix("ads", "admin:ads")
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			result = append(result, tag)
		}
	}

	return result
}

// Articles lists every article, drafts included, with tags attached.
func (s *Service) Articles(ctx context.Context) ([]db.Article, error) {
	return cache.Through(ctx, s.cache, "admin:articles", func(ctx context.Context) ([]db.Article, error) {
		articles, err := s.store.Articles(ctx)
		if err != nil {
			return nil, err
		}

		return s.fillTags(ctx, articles)
	})
}

func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*db.Article, error) {
	key := "admin:articles:" + id.String()
	return cache.Through(ctx, s.cache, key, func(ctx context.Context) (*db.Article, error) {
		article, err := s.store.ArticleByID(ctx, id)
		if err != nil {
			return nil, err
		} else if article == nil {
			return nil, ErrNotFound
		}

		filled, err := s.fillTags(ctx, []db.Article{*article})
		if err != nil {
			return nil, err
		}

		return &filled[0], nil
	})
}

func (s *Service) fillTags(ctx context.Context, articles []db.Article) ([]db.Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	ids := make([]uuid.UUID, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}

	tags, err := s.store.TagsByArticleIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to articles: %w", err)
	}

	byArticle := make(map[uuid.UUID][]db.ArticleTag, len(articles))
	for _, tag := range tags {
		byArticle[tag.ArticleID] = append(byArticle[tag.ArticleID], tag)
	}

	for i := range articles {
		articles[i].Tags = byArticle[articles[i].ID]
	}

	return articles, nil
}

func (s *Service) CreateArticle(ctx context.Context, in ArticleInput) (*db.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}

	article := &db.Article{
		ID:         uuid.New(),
		Title:      in.Title,
		Slug:       slug,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		Published:  in.Published,
		Featured:   in.Featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if in.Published {
		article.PublishedAt = &now
	}

	if err := s.store.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	if tags := normalizeTags(in.Tags); len(tags) > 0 {
		if err := s.store.ReplaceArticleTags(ctx, article.ID, tags); err != nil {
			return nil, err
		}
	}

	s.invalidateArticles()
	s.log.Info("article created", "id", article.ID, "slug", article.Slug, "published", article.Published)

	return article, nil
}

func (s *Service) UpdateArticle(ctx context.Context, id uuid.UUID, in ArticleInput) (*db.Article, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		return nil, err
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := s.now()
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Title)
	}

	article := &db.Article{
		ID:         id,
		Title:      in.Title,
		Slug:       slug,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		ImageURL:   in.ImageURL,
		CategoryID: in.CategoryID,
		AuthorID:   in.AuthorID,
		Published:  in.Published,
		Featured:   in.Featured,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  now,
	}

	// publishing stamps the timestamp once: re-saving a published article
	// keeps the original stamp, unpublishing clears it
	switch {
	case in.Published && existing.Published:
		article.PublishedAt = existing.PublishedAt
	case in.Published:
		article.PublishedAt = &now
	}

	if err := s.store.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}

	if err := s.store.ReplaceArticleTags(ctx, id, normalizeTags(in.Tags)); err != nil {
		return nil, err
	}

	s.invalidateArticles()

	return article, nil
}

func (s *Service) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.ArticleByID(ctx, id)
	if err != nil {
		return err
	} else if existing == nil {
		return ErrNotFound
	}

	if err := s.store.DeleteArticle(ctx, id); err != nil {
		return err
	}

	s.invalidateArticles()
	s.log.Info("article deleted", "id", id, "slug", existing.Slug)

	return nil
}

func (s *Service) Categories(ctx context.Context) ([]db.Category, error) {
	return cache.Through(ctx, s.cache, "admin:categories", func(ctx context.Context) ([]db.Category, error) {
		return s.store.Categories(ctx)
	})
}

func (s *Service) CreateCategory(ctx context.Context, in CategoryInput) (*db.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}

	category := &db.Category{
		ID:          uuid.New(),
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateCategories()
	s.log.Info("category created", "id", category.ID, "slug", category.Slug)

	return category, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, in CategoryInput) (*db.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return nil, err
	} else if existing == nil {
		return nil, ErrNotFound
	}

	slug := in.Slug
	if slug == "" {
		slug = Slugify(in.Name)
	}

	category := &db.Category{
		ID:          id,
		Name:        in.Name,
		Slug:        slug,
		Description: in.Description,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   s.now(),
	}

	if err := s.store.UpdateCategory(ctx, category); err != nil {
		return nil, err
	}

	s.invalidateCategories()

	return category, nil
}

func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.CategoryByID(ctx, id)
	if err != nil {
		return err
	} else if existing == nil {
		return ErrNotFound
	}

	if err := s.store.DeleteCategory(ctx, id); err != nil {
		return err
	}

	// articles keep existing with a null category; readers render the
	// generic fallback label
	s.invalidateCategories()
	s.log.Info("category deleted", "id", id, "slug", existing.Slug)

	return nil
}

func (s *Service) Authors(ctx context.Context) ([]db.Author, error) {
	return cache.Through(ctx, s.cache, "admin:authors", func(ctx context.Context) ([]db.Author, error) {
		return s.store.Authors(ctx)
	})
}

func (s *Service) CreateAuthor(ctx context.Context, in AuthorInput) (*db.Author, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	author := &db.Author{
		ID:        uuid.New(),
		Name:      in.Name,
		Bio:       in.Bio,
		AvatarURL: in.AvatarURL,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}

	s.invalidateAuthors()
	s.log.Info("author created", "id", author.ID, "name", author.Name)

	return author, nil
}

func (s *Service) UpdateAuthor(ctx context.Context, id uuid.UUID, in AuthorInput) (*db.Author, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.AuthorByID(ctx, id)
	if err != nil {
		return nil, err
	} else if existing == nil {
		return nil, ErrNotFound
	}

	author := &db.Author{
		ID:        id,
		Name:      in.Name,
		Bio:       in.Bio,
		AvatarURL: in.AvatarURL,
		Email:     in.Email,
		CreatedAt: existing.CreatedAt,
		UpdatedAt: s.now(),
	}

	if err := s.store.UpdateAuthor(ctx, author); err != nil {
		return nil, err
	}

	s.invalidateAuthors()

	return author, nil
}

func (s *Service) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.AuthorByID(ctx, id)
	if err != nil {
		return err
	} else if existing == nil {
		return ErrNotFound
	}

	if err := s.store.DeleteAuthor(ctx, id); err != nil {
		return err
	}

	s.invalidateAuthors()
	s.log.Info("author deleted", "id", id, "name", existing.Name)

	return nil
}

func (s *Service) Ads(ctx context.Context) ([]db.Ad, error) {
	return cache.Through(ctx, s.cache, "admin:ads", func(ctx context.Context) ([]db.Ad, error) {
		return s.store.Ads(ctx)
	})
}

func (s *Service) CreateAd(ctx context.Context, in AdInput) (*db.Ad, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ad := &db.Ad{
		ID:        uuid.New(),
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		Position:  in.Position,
		Active:    in.Active,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		CreatedAt: s.now(),
	}

	if err := s.store.CreateAd(ctx, ad); err != nil {
		return nil, err
	}

	s.invalidateAds()
	s.log.Info("ad created", "id", ad.ID, "position", ad.Position)

	return ad, nil
}

func (s *Service) UpdateAd(ctx context.Context, id uuid.UUID, in AdInput) (*db.Ad, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.AdByID(ctx, id)
	if err != nil {
		return nil, err
	} else if existing == nil {
		return nil, ErrNotFound
	}

	ad := &db.Ad{
		ID:          id,
		Title:       in.Title,
		ImageURL:    in.ImageURL,
		LinkURL:     in.LinkURL,
		Position:    in.Position,
		Active:      in.Active,
		Clicks:      existing.Clicks,
		Impressions: existing.Impressions,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CreatedAt:   existing.CreatedAt,
	}

	if err := s.store.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}

	s.invalidateAds()

	return ad, nil
}

func (s *Service) DeleteAd(ctx context.Context, id uuid.UUID) error {
	existing, err := s.store.AdByID(ctx, id)
	if err != nil {
		return err
	} else if existing == nil {
		return ErrNotFound
	}

	if err := s.store.DeleteAd(ctx, id); err != nil {
		return err
	}

	s.invalidateAds()
	s.log.Info("ad deleted", "id", id, "title", existing.Title)

	return nil
}
