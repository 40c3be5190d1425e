package admin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsisencao/portal-juridico/internal/cache"
	"github.com/jsisencao/portal-juridico/internal/db"
)

// noOpLogger creates a logger that discards all output for tests
func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

// mockStore is a manual stub implementation of Store
type mockStore struct {
	articlesFunc           func(ctx context.Context) ([]db.Article, error)
	articleByIDFunc        func(ctx context.Context, id uuid.UUID) (*db.Article, error)
	createArticleFunc      func(ctx context.Context, article *db.Article) error
	updateArticleFunc      func(ctx context.Context, article *db.Article) error
	deleteArticleFunc      func(ctx context.Context, id uuid.UUID) error
	tagsByArticleIDsFunc   func(ctx context.Context, ids []uuid.UUID) ([]db.ArticleTag, error)
	replaceArticleTagsFunc func(ctx context.Context, id uuid.UUID, tags []string) error

	categoriesFunc     func(ctx context.Context) ([]db.Category, error)
	categoryByIDFunc   func(ctx context.Context, id uuid.UUID) (*db.Category, error)
	createCategoryFunc func(ctx context.Context, category *db.Category) error
	updateCategoryFunc func(ctx context.Context, category *db.Category) error
	deleteCategoryFunc func(ctx context.Context, id uuid.UUID) error

	authorsFunc      func(ctx context.Context) ([]db.Author, error)
	authorByIDFunc   func(ctx context.Context, id uuid.UUID) (*db.Author, error)
	createAuthorFunc func(ctx context.Context, author *db.Author) error
	updateAuthorFunc func(ctx context.Context, author *db.Author) error
	deleteAuthorFunc func(ctx context.Context, id uuid.UUID) error

	adsFunc      func(ctx context.Context) ([]db.Ad, error)
	adByIDFunc   func(ctx context.Context, id uuid.UUID) (*db.Ad, error)
	createAdFunc func(ctx context.Context, ad *db.Ad) error
	updateAdFunc func(ctx context.Context, ad *db.Ad) error
	deleteAdFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockStore) Articles(ctx context.Context) ([]db.Article, error) {
	if m.articlesFunc != nil {
		return m.articlesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) ArticleByID(ctx context.Context, id uuid.UUID) (*db.Article, error) {
	if m.articleByIDFunc != nil {
		return m.articleByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateArticle(ctx context.Context, article *db.Article) error {
	if m.createArticleFunc != nil {
		return m.createArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockStore) UpdateArticle(ctx context.Context, article *db.Article) error {
	if m.updateArticleFunc != nil {
		return m.updateArticleFunc(ctx, article)
	}
	return nil
}

func (m *mockStore) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	if m.deleteArticleFunc != nil {
		return m.deleteArticleFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) TagsByArticleIDs(ctx context.Context, ids []uuid.UUID) ([]db.ArticleTag, error) {
	if m.tagsByArticleIDsFunc != nil {
		return m.tagsByArticleIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockStore) ReplaceArticleTags(ctx context.Context, id uuid.UUID, tags []string) error {
	if m.replaceArticleTagsFunc != nil {
		return m.replaceArticleTagsFunc(ctx, id, tags)
	}
	return nil
}

func (m *mockStore) Categories(ctx context.Context) ([]db.Category, error) {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) CategoryByID(ctx context.Context, id uuid.UUID) (*db.Category, error) {
	if m.categoryByIDFunc != nil {
		return m.categoryByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateCategory(ctx context.Context, category *db.Category) error {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockStore) UpdateCategory(ctx context.Context, category *db.Category) error {
	if m.updateCategoryFunc != nil {
		return m.updateCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if m.deleteCategoryFunc != nil {
		return m.deleteCategoryFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Authors(ctx context.Context) ([]db.Author, error) {
	if m.authorsFunc != nil {
		return m.authorsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) AuthorByID(ctx context.Context, id uuid.UUID) (*db.Author, error) {
	if m.authorByIDFunc != nil {
		return m.authorByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateAuthor(ctx context.Context, author *db.Author) error {
	if m.createAuthorFunc != nil {
		return m.createAuthorFunc(ctx, author)
	}
	return nil
}

func (m *mockStore) UpdateAuthor(ctx context.Context, author *db.Author) error {
	if m.updateAuthorFunc != nil {
		return m.updateAuthorFunc(ctx, author)
	}
	return nil
}

func (m *mockStore) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	if m.deleteAuthorFunc != nil {
		return m.deleteAuthorFunc(ctx, id)
	}
	return nil
}

func (m *mockStore) Ads(ctx context.Context) ([]db.Ad, error) {
	if m.adsFunc != nil {
		return m.adsFunc(ctx)
	}
	return nil, nil
}

func (m *mockStore) AdByID(ctx context.Context, id uuid.UUID) (*db.Ad, error) {
	if m.adByIDFunc != nil {
		return m.adByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockStore) CreateAd(ctx context.Context, ad *db.Ad) error {
	if m.createAdFunc != nil {
		return m.createAdFunc(ctx, ad)
	}
	return nil
}

func (m *mockStore) UpdateAd(ctx context.Context, ad *db.Ad) error {
	if m.updateAdFunc != nil {
		return m.updateAdFunc(ctx, ad)
	}
	return nil
}

func (m *mockStore) DeleteAd(ctx context.Context, id uuid.UUID) error {
	if m.deleteAdFunc != nil {
		return m.deleteAdFunc(ctx, id)
	}
	return nil
}

func newTestService(store Store, now time.Time) (*Service, *cache.Store) {
	cacheStore := cache.New()
	service := NewService(store, cacheStore, noOpLogger())
	service.now = func() time.Time { return now }
	return service, cacheStore
}

func strPtr(s string) *string {
	return &s
}

func TestCreateArticle_DerivesSlugAndStampsPublish(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	var inserted *db.Article
	var replacedTags []string
	store := &mockStore{
		createArticleFunc: func(_ context.Context, article *db.Article) error {
			inserted = article
			return nil
		},
		replaceArticleTagsFunc: func(_ context.Context, _ uuid.UUID, tags []string) error {
			replacedTags = tags
			return nil
		},
	}
	service, _ := newTestService(store, now)

	article, err := service.CreateArticle(ctx, ArticleInput{
		Title:     "Função Pública e Direito à Greve",
		Content:   strPtr("conteúdo"),
		Published: true,
		Tags:      []string{" greve ", "", "função pública"},
	})
	require.NoError(t, err)
	require.NotNil(t, inserted)

	assert.Equal(t, "funcao-publica-e-direito-a-greve", article.Slug)
	require.NotNil(t, article.PublishedAt)
	assert.Equal(t, now, *article.PublishedAt)
	assert.Equal(t, now, article.CreatedAt)
	assert.Equal(t, []string{"greve", "função pública"}, replacedTags)
}

func TestCreateArticle_DraftHasNoPublishStamp(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&mockStore{}, time.Now())

	article, err := service.CreateArticle(ctx, ArticleInput{
		Title:     "Rascunho",
		Published: false,
	})
	require.NoError(t, err)
	assert.Nil(t, article.PublishedAt)
}

func TestCreateArticle_ValidationStopsBeforeStore(t *testing.T) {
	ctx := context.Background()
	storeCalled := false
	store := &mockStore{
		createArticleFunc: func(context.Context, *db.Article) error {
			storeCalled = true
			return nil
		},
	}
	service, _ := newTestService(store, time.Now())

	_, err := service.CreateArticle(ctx, ArticleInput{Title: ""})
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "title")
	assert.False(t, storeCalled, "invalid input must never reach the store")
}

func TestUpdateArticle_PublishTransitions(t *testing.T) {
	ctx := context.Background()
	articleID := uuid.New()
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	firstPublish := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	transitionTests := []struct {
		name          string
		existing      db.Article
		inputPublish  bool
		wantPublished *time.Time
	}{
		{
			name: "PublishingStampsNow",
			existing: db.Article{
				ID: articleID, Title: "t", Slug: "t", CreatedAt: createdAt,
			},
			inputPublish:  true,
			wantPublished: &now,
		},
		{
			name: "RepublishKeepsOriginalStamp",
			existing: db.Article{
				ID: articleID, Title: "t", Slug: "t", Published: true,
				PublishedAt: &firstPublish, CreatedAt: createdAt,
			},
			inputPublish:  true,
			wantPublished: &firstPublish,
		},
		{
			name: "UnpublishClearsStamp",
			existing: db.Article{
				ID: articleID, Title: "t", Slug: "t", Published: true,
				PublishedAt: &firstPublish, CreatedAt: createdAt,
			},
			inputPublish:  false,
			wantPublished: nil,
		},
	}

	for _, tt := range transitionTests {
		t.Run(tt.name, func(t *testing.T) {
			var updated *db.Article
			store := &mockStore{
				articleByIDFunc: func(context.Context, uuid.UUID) (*db.Article, error) {
					existing := tt.existing
					return &existing, nil
				},
				updateArticleFunc: func(_ context.Context, article *db.Article) error {
					updated = article
					return nil
				},
			}
			service, _ := newTestService(store, now)

			article, err := service.UpdateArticle(ctx, articleID, ArticleInput{
				Title:     "Título",
				Published: tt.inputPublish,
			})
			require.NoError(t, err)
			require.NotNil(t, updated)

			if tt.wantPublished == nil {
				assert.Nil(t, article.PublishedAt)
			} else {
				require.NotNil(t, article.PublishedAt)
				assert.Equal(t, *tt.wantPublished, *article.PublishedAt)
			}
			assert.Equal(t, createdAt, article.CreatedAt, "creation time must survive updates")
			assert.Equal(t, now, article.UpdatedAt)
		})
	}
}

func TestUpdateArticle_NotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&mockStore{}, time.Now())

	_, err := service.UpdateArticle(ctx, uuid.New(), ArticleInput{Title: "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateArticle_ReplacesTagsWholesale(t *testing.T) {
	ctx := context.Background()
	articleID := uuid.New()

	var replacedTags []string
	replaced := false
	store := &mockStore{
		articleByIDFunc: func(context.Context, uuid.UUID) (*db.Article, error) {
			return &db.Article{ID: articleID, Title: "t", Slug: "t"}, nil
		},
		replaceArticleTagsFunc: func(_ context.Context, _ uuid.UUID, tags []string) error {
			replaced = true
			replacedTags = tags
			return nil
		},
	}
	service, _ := newTestService(store, time.Now())

	_, err := service.UpdateArticle(ctx, articleID, ArticleInput{Title: "Título", Tags: nil})
	require.NoError(t, err)
	assert.True(t, replaced, "update must rewrite the tag set even when empty")
	assert.Empty(t, replacedTags)
}

func TestCreateArticle_SlugConflictPassedThrough(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{
		createArticleFunc: func(context.Context, *db.Article) error {
			return db.ErrSlugTaken
		},
	}
	service, _ := newTestService(store, time.Now())

	_, err := service.CreateArticle(ctx, ArticleInput{Title: "Título"})
	require.ErrorIs(t, err, db.ErrSlugTaken)
}

func TestMutations_InvalidateDependentKeys(t *testing.T) {
	ctx := context.Background()
	service, cacheStore := newTestService(&mockStore{}, time.Now())

	seed := func(keys ...string) {
		for _, key := range keys {
			_, err := cache.Through(ctx, cacheStore, key, func(context.Context) (string, error) {
				return "cached", nil
			})
			require.NoError(t, err)
		}
	}

	seed("articles:published:0", "article:slug:x", "categories:withCount",
		"categories", "authors", "ads:sidebar", "admin:articles")

	_, err := service.CreateArticle(ctx, ArticleInput{Title: "Título"})
	require.NoError(t, err)

	assert.False(t, cacheStore.Contains("articles:published:0"))
	assert.False(t, cacheStore.Contains("article:slug:x"))
	assert.False(t, cacheStore.Contains("categories:withCount"))
	assert.False(t, cacheStore.Contains("admin:articles"))
	assert.True(t, cacheStore.Contains("categories"), "article writes must not drop the category list")
	assert.True(t, cacheStore.Contains("authors"))
	assert.True(t, cacheStore.Contains("ads:sidebar"))

	seed("authors", "articles:published:0")
	_, err = service.CreateAuthor(ctx, AuthorInput{Name: "Maria"})
	require.NoError(t, err)
	assert.False(t, cacheStore.Contains("authors"))
	assert.False(t, cacheStore.Contains("articles:published:0"))

	seed("ads:sidebar", "admin:ads", "categories")
	_, err = service.CreateAd(ctx, AdInput{
		Title:    "Campanha",
		ImageURL: "https://cdn.example.test/banner.png",
		Position: db.AdPositionSidebar,
	})
	require.NoError(t, err)
	assert.False(t, cacheStore.Contains("ads:sidebar"))
	assert.False(t, cacheStore.Contains("admin:ads"))
	assert.True(t, cacheStore.Contains("categories"), "ad writes must not drop content keys")
}

func TestCreateAd_RejectsUnknownPosition(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&mockStore{}, time.Now())

	_, err := service.CreateAd(ctx, AdInput{
		Title:    "Campanha",
		ImageURL: "https://cdn.example.test/banner.png",
		Position: "footer",
	})
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "position")
}

func TestCreateAd_RejectsInvertedDateWindow(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&mockStore{}, time.Now())

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)
	_, err := service.CreateAd(ctx, AdInput{
		Title:     "Campanha",
		ImageURL:  "https://cdn.example.test/banner.png",
		Position:  db.AdPositionSidebar,
		StartDate: &start,
		EndDate:   &end,
	})
	require.Error(t, err)

	var fields validation.Errors
	require.ErrorAs(t, err, &fields)
	assert.Contains(t, fields, "endDate")
}

func TestDeleteCategory_NotFound(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(&mockStore{}, time.Now())

	err := service.DeleteCategory(ctx, uuid.New())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArticle_BackendErrorPropagates(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	store := &mockStore{
		articleByIDFunc: func(context.Context, uuid.UUID) (*db.Article, error) {
			return &db.Article{ID: uuid.New()}, nil
		},
		deleteArticleFunc: func(context.Context, uuid.UUID) error {
			return boom
		},
	}
	service, _ := newTestService(store, time.Now())

	err := service.DeleteArticle(ctx, uuid.New())
	require.ErrorIs(t, err, boom)
}
