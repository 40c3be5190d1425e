package portal

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/go-pg/pg/v10"
	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/cache"
	"github.com/jsisencao/portal-juridico/internal/db"
)

var (
	testDB      *pg.DB
	testManager *Manager
)

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB(db.MigrationsDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	testDB = database
	testManager = NewManager(db.New(testDB))

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func TestPublishedArticles_Integration(t *testing.T) {
	ctx := context.Background()

	articles, err := testManager.PublishedArticles(ctx, 0)
	if err != nil {
		t.Fatalf("PublishedArticles: %v", err)
	}
	if len(articles) != 4 {
		t.Fatalf("expected 4 published articles, got %d", len(articles))
	}

	byID := map[string]Article{}
	for _, item := range articles {
		if item.ID == db.TestArticleRascunhoID {
			t.Error("draft article leaked into published view")
		}
		if item.Tags == nil {
			t.Errorf("article %q has nil tags, want at least empty slice", item.Title)
		}
		byID[item.ID.String()] = item
	}

	penal := byID[db.TestArticleCodigoPenalID.String()]
	if len(penal.Tags) != 2 {
		t.Errorf("expected 2 tags on penal article, got %v", penal.Tags)
	}
	if penal.Category == nil || penal.Category.Slug != "direito-penal" {
		t.Error("expected category view on article")
	}
	if penal.Author == nil || penal.Author.Name != "Maria da Silva" {
		t.Error("expected author view on article")
	}

	undated := byID[db.TestArticleSemDataID.String()]
	if len(undated.Tags) != 0 {
		t.Errorf("expected no tags on undated article, got %v", undated.Tags)
	}
}

func TestFeaturedArticles_DefaultLimit_Integration(t *testing.T) {
	ctx := context.Background()

	articles, err := testManager.FeaturedArticles(ctx, 0)
	if err != nil {
		t.Fatalf("FeaturedArticles: %v", err)
	}
	if len(articles) != FeaturedLimitDefault {
		t.Fatalf("expected %d featured articles by default, got %d", FeaturedLimitDefault, len(articles))
	}
	for _, item := range articles {
		if !item.Published || !item.Featured {
			t.Errorf("article %q is not featured+published", item.Title)
		}
	}
}

func TestArticlesByCategorySlug_Integration(t *testing.T) {
	ctx := context.Background()

	articles, err := testManager.ArticlesByCategorySlug(ctx, "direito-civil")
	if err != nil {
		t.Fatalf("ArticlesByCategorySlug: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("expected 2 published civil articles, got %d", len(articles))
	}

	// an unknown category is an empty page, not an error
	none, err := testManager.ArticlesByCategorySlug(ctx, "categoria-fantasma")
	if err != nil {
		t.Fatalf("ArticlesByCategorySlug unknown: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("expected empty list for unknown category, got %v", none)
	}
}

func TestArticleBySlug_Integration(t *testing.T) {
	ctx := context.Background()

	article, err := testManager.ArticleBySlug(ctx, "novo-codigo-penal-entra-em-vigor")
	if err != nil {
		t.Fatalf("ArticleBySlug: %v", err)
	}
	if article == nil {
		t.Fatal("expected article, got nil")
	}
	if len(article.Tags) != 2 {
		t.Errorf("expected tags on single article, got %v", article.Tags)
	}

	draft, err := testManager.ArticleBySlug(ctx, "rascunho-sobre-contratos-publicos")
	if err != nil {
		t.Fatalf("ArticleBySlug draft: %v", err)
	}
	if draft != nil {
		t.Error("draft visible through exact slug lookup")
	}
}

func TestSearchArticles_Integration(t *testing.T) {
	ctx := context.Background()

	articles, err := testManager.SearchArticles(ctx, "ARRENDAMENTO")
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(articles) != 1 || articles[0].ID != db.TestArticleArrendamentoID {
		t.Fatalf("expected only the arrendamento article, got %d results", len(articles))
	}
}

func TestSearchArticles_PaddedTermSharesCacheEntry_Integration(t *testing.T) {
	ctx := context.Background()
	service := NewService(testManager, cache.New())

	// both spellings key to articles:search:arrendamento, so the padded term
	// must not cache a result set computed from the raw, padded pattern
	padded, err := service.SearchArticles(ctx, "  Arrendamento  ")
	if err != nil {
		t.Fatalf("SearchArticles padded: %v", err)
	}
	if len(padded) != 1 || padded[0].ID != db.TestArticleArrendamentoID {
		t.Fatalf("expected the arrendamento article for the padded term, got %d results", len(padded))
	}

	exact, err := service.SearchArticles(ctx, "arrendamento")
	if err != nil {
		t.Fatalf("SearchArticles exact: %v", err)
	}
	if len(exact) != 1 || exact[0].ID != db.TestArticleArrendamentoID {
		t.Fatalf("expected the arrendamento article for the exact term, got %d results", len(exact))
	}
}

func TestCategoriesWithCount_Integration(t *testing.T) {
	ctx := context.Background()

	categories, err := testManager.CategoriesWithCount(ctx)
	if err != nil {
		t.Fatalf("CategoriesWithCount: %v", err)
	}
	if len(categories) != 4 {
		t.Fatalf("expected 4 categories, got %d", len(categories))
	}

	counts := map[string]int{}
	for _, category := range categories {
		counts[category.Slug] = category.ArticleCount
	}
	if counts["direito-penal"] != 1 {
		t.Errorf("direito-penal count = %d, want 1", counts["direito-penal"])
	}
	if counts["direito-civil"] != 2 {
		t.Errorf("direito-civil count = %d, want 2", counts["direito-civil"])
	}
	if counts["jurisprudencia"] != 0 {
		t.Errorf("jurisprudencia count = %d, want 0", counts["jurisprudencia"])
	}
}

func TestAdsByPosition_Integration(t *testing.T) {
	ctx := context.Background()

	ads, err := testManager.AdsByPosition(ctx, db.AdPositionHomepageTop, db.BaseTime)
	if err != nil {
		t.Fatalf("AdsByPosition: %v", err)
	}
	if len(ads) != 1 || ads[0].ID != db.TestAdTopID {
		t.Fatalf("expected the in-window top ad only, got %d ads", len(ads))
	}
}

func TestService_CachesReadsUntilInvalidated_Integration(t *testing.T) {
	ctx := context.Background()
	store := cache.New()
	repo := db.New(testDB)
	service := NewService(NewManager(repo), store)

	first, err := service.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories: %v", err)
	}

	extra := &db.Category{
		ID:        uuid.New(),
		Name:      "Direito Fiscal",
		Slug:      "direito-fiscal",
		CreatedAt: db.BaseTime,
		UpdatedAt: db.BaseTime,
	}
	if err := repo.CreateCategory(ctx, extra); err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.DeleteCategory(context.Background(), extra.ID); err != nil {
			t.Errorf("cleanup category: %v", err)
		}
	})

	cached, err := service.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories cached: %v", err)
	}
	if len(cached) != len(first) {
		t.Fatalf("cached read saw the new row: %d vs %d", len(cached), len(first))
	}

	store.InvalidatePrefix(KeyCategories)

	fresh, err := service.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories after invalidation: %v", err)
	}
	if len(fresh) != len(first)+1 {
		t.Errorf("expected fresh read to see the new row: got %d, want %d", len(fresh), len(first)+1)
	}
}
