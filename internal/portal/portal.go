// Package portal assembles the denormalized article views the public site
// reads: article + category + author + tag strings, published rows only.
package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/db"
)

// FeaturedLimitDefault is the number of featured articles the homepage shows.
const FeaturedLimitDefault = 2

type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// PublishedArticles returns published articles newest first. A limit of zero
// means no limit.
func (m *Manager) PublishedArticles(ctx context.Context, limit int) ([]Article, error) {
	list, err := m.db.PublishedArticles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get published articles: %w", err)
	}

	return m.fillTags(ctx, NewArticles(list))
}

func (m *Manager) FeaturedArticles(ctx context.Context, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = FeaturedLimitDefault
	}

	list, err := m.db.FeaturedArticles(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get featured articles: %w", err)
	}

	return m.fillTags(ctx, NewArticles(list))
}

// ArticlesByCategorySlug returns the published articles of one category. An
// unknown slug yields an empty list, not an error.
func (m *Manager) ArticlesByCategorySlug(ctx context.Context, slug string) ([]Article, error) {
	category, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if category == nil {
		return []Article{}, nil
	}

	list, err := m.db.PublishedArticlesByCategory(ctx, category.ID)
	if err != nil {
		return nil, fmt.Errorf("db get articles by category: %w", err)
	}

	return m.fillTags(ctx, NewArticles(list))
}

func (m *Manager) ArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	dbArticle, err := m.db.PublishedArticleBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get article by slug: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	articles, err := m.fillTags(ctx, NewArticles([]db.Article{*dbArticle}))
	if err != nil {
		return nil, err
	}

	return &articles[0], nil
}

func (m *Manager) ArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	dbArticle, err := m.db.PublishedArticleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	} else if dbArticle == nil {
		return nil, nil
	}

	articles, err := m.fillTags(ctx, NewArticles([]db.Article{*dbArticle}))
	if err != nil {
		return nil, err
	}

	return &articles[0], nil
}

// SearchArticles matches the term as a case-insensitive substring of title,
// excerpt or content, published rows only.
func (m *Manager) SearchArticles(ctx context.Context, term string) ([]Article, error) {
	list, err := m.db.SearchPublishedArticles(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("db search articles: %w", err)
	}

	return m.fillTags(ctx, NewArticles(list))
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return NewCategories(list), nil
}

// CategoriesWithCount returns every category with its published-article
// count. The counts come from one grouped query, not one count per category.
func (m *Manager) CategoriesWithCount(ctx context.Context) ([]Category, error) {
	categories, err := m.Categories(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := m.db.PublishedCountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("db count articles by category: %w", err)
	}

	for i := range categories {
		categories[i].ArticleCount = counts[categories[i].ID]
	}

	return categories, nil
}

func (m *Manager) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	dbCategory, err := m.db.CategoryBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("db get category by slug: %w", err)
	} else if dbCategory == nil {
		return nil, nil
	}

	category := NewCategory(dbCategory)
	return &category, nil
}

func (m *Manager) Authors(ctx context.Context) ([]Author, error) {
	list, err := m.db.Authors(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get authors: %w", err)
	}

	return NewAuthors(list), nil
}

// AdsByPosition returns the active ads for one placement slot whose date
// window contains now.
func (m *Manager) AdsByPosition(ctx context.Context, position string, now time.Time) ([]Ad, error) {
	list, err := m.db.ActiveAdsByPosition(ctx, position, now)
	if err != nil {
		return nil, fmt.Errorf("db get ads by position: %w", err)
	}

	return NewAds(list), nil
}

// RecordAdImpressions counts one impression per served ad. Not a cached
// read: every delivery increments, even when the ad list itself came from
// the cache.
func (m *Manager) RecordAdImpressions(ctx context.Context, ids []uuid.UUID) error {
	if err := m.db.IncrementAdImpressions(ctx, ids); err != nil {
		return fmt.Errorf("db increment ad impressions: %w", err)
	}

	return nil
}

func (m *Manager) RecordAdClick(ctx context.Context, id uuid.UUID) error {
	if err := m.db.IncrementAdClicks(ctx, id); err != nil {
		return fmt.Errorf("db increment ad clicks: %w", err)
	}

	return nil
}

// fillTags attaches tag strings to a whole article list with a single
// batched query.
func (m *Manager) fillTags(ctx context.Context, articles []Article) ([]Article, error) {
	if len(articles) == 0 {
		return articles, nil
	}

	tags, err := m.db.TagsByArticleIDs(ctx, articleIDs(articles))
	if err != nil {
		return nil, fmt.Errorf("failed to attach tags to articles: %w", err)
	}

	byArticle := make(map[uuid.UUID][]string, len(articles))
	for _, tag := range tags {
		byArticle[tag.ArticleID] = append(byArticle[tag.ArticleID], tag.Tag)
	}

	for i := range articles {
		if list, ok := byArticle[articles[i].ID]; ok {
			articles[i].Tags = list
		}
	}

	return articles, nil
}
