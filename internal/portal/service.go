package portal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/cache"
)

// Cache key prefixes. Writers invalidate by these prefixes, so every key a
// read stores must start with the prefix of the data it depends on.
const (
	KeyCategories     = "categories"
	KeyCategoryOne    = "category:"
	KeyAuthors        = "authors"
	KeyArticleLists   = "articles:"
	KeyArticleOne     = "article:"
	KeyAds            = "ads:"
	keyCategoryCounts = "categories:withCount"
)

// Service serves Manager reads through the cache. Each read has a
// deterministic key; concurrent reads of one key share one backend call.
type Service struct {
	m     *Manager
	store *cache.Store
}

func NewService(m *Manager, store *cache.Store) *Service {
	return &Service{
		m:     m,
		store: store,
	}
}

func (s *Service) PublishedArticles(ctx context.Context, limit int) ([]Article, error) {
	key := fmt.Sprintf("articles:published:%d", limit)
	return cache.Through(ctx, s.store, key, func(ctx context.Context) ([]Article, error) {
		return s.m.PublishedArticles(ctx, limit)
	})
}

func (s *Service) FeaturedArticles(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = FeaturedLimitDefault
	}

	key := fmt.Sprintf("articles:featured:%d", limit)
	return cache.Through(ctx, s.store, key, func(ctx context.Context) ([]Article, error) {
		return s.m.FeaturedArticles(ctx, limit)
	})
}

func (s *Service) ArticlesByCategorySlug(ctx context.Context, slug string) ([]Article, error) {
	key := "articles:category:" + slug
	return cache.Through(ctx, s.store, key, func(ctx context.Context) ([]Article, error) {
		return s.m.ArticlesByCategorySlug(ctx, slug)
	})
}

// SearchArticles trims the term before keying and querying, so every term
// that shares a key issues the same backend query. Lowercasing stays
// key-only because ILIKE already matches case-insensitively.
func (s *Service) SearchArticles(ctx context.Context, term string) ([]Article, error) {
	term = strings.TrimSpace(term)
	key := "articles:search:" + strings.ToLower(term)
	return cache.Through(ctx, s.store, key, func(ctx context.Context) ([]Article, error) {
		return s.m.SearchArticles(ctx, term)
	})
}

func (s *Service) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	key := "article:slug:" + slug
	return cache.Through(ctx, s.store, key, func(ctx context.Context) (*Article, error) {
		return s.m.ArticleBySlug(ctx, slug)
	})
}

func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	key := "article:id:" + id.String()
	return cache.Through(ctx, s.store, key, func(ctx context.Context) (*Article, error) {
		return s.m.ArticleByID(ctx, id)
	})
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	return cache.Through(ctx, s.store, KeyCategories, func(ctx context.Context) ([]Category, error) {
		return s.m.Categories(ctx)
	})
}

func (s *Service) CategoriesWithCount(ctx context.Context) ([]Category, error) {
	return cache.Through(ctx, s.store, keyCategoryCounts, func(ctx context.Context) ([]Category, error) {
		return s.m.CategoriesWithCount(ctx)
	})
}

func (s *Service) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	key := KeyCategoryOne + slug
	return cache.Through(ctx, s.store, key, func(ctx context.Context) (*Category, error) {
		return s.m.CategoryBySlug(ctx, slug)
	})
}

func (s *Service) Authors(ctx context.Context) ([]Author, error) {
	return cache.Through(ctx, s.store, KeyAuthors, func(ctx context.Context) ([]Author, error) {
		return s.m.Authors(ctx)
	})
}

// AdsByPosition caches one entry per position. The date-window filter runs
// with the `now` of the load that populated the entry, so an ad crossing its
// start or end date keeps its cached visibility until the next ad mutation
// invalidates the ads prefix.
func (s *Service) AdsByPosition(ctx context.Context, position string, now time.Time) ([]Ad, error) {
	key := KeyAds + position
	return cache.Through(ctx, s.store, key, func(ctx context.Context) ([]Ad, error) {
		return s.m.AdsByPosition(ctx, position, now)
	})
}

// RecordAdImpressions and RecordAdClick are writes and bypass the cache.

func (s *Service) RecordAdImpressions(ctx context.Context, ids []uuid.UUID) error {
	return s.m.RecordAdImpressions(ctx, ids)
}

func (s *Service) RecordAdClick(ctx context.Context, id uuid.UUID) error {
	return s.m.RecordAdClick(ctx, id)
}
