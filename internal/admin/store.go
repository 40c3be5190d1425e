package admin

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/db"
)

// ErrNotFound is returned when a mutation targets a row that does not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence surface the mutation layer needs. *db.Repository
// satisfies it; tests substitute a mock.
type Store interface {
	Articles(ctx context.Context) ([]db.Article, error)
	ArticleByID(ctx context.Context, id uuid.UUID) (*db.Article, error)
	CreateArticle(ctx context.Context, article *db.Article) error
	UpdateArticle(ctx context.Context, article *db.Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	TagsByArticleIDs(ctx context.Context, articleIDs []uuid.UUID) ([]db.ArticleTag, error)
	ReplaceArticleTags(ctx context.Context, articleID uuid.UUID, tags []string) error

	Categories(ctx context.Context) ([]db.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*db.Category, error)
	CreateCategory(ctx context.Context, category *db.Category) error
	UpdateCategory(ctx context.Context, category *db.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	Authors(ctx context.Context) ([]db.Author, error)
	AuthorByID(ctx context.Context, id uuid.UUID) (*db.Author, error)
	CreateAuthor(ctx context.Context, author *db.Author) error
	UpdateAuthor(ctx context.Context, author *db.Author) error
	DeleteAuthor(ctx context.Context, id uuid.UUID) error

	Ads(ctx context.Context) ([]db.Ad, error)
	AdByID(ctx context.Context, id uuid.UUID) (*db.Ad, error)
	CreateAd(ctx context.Context, ad *db.Ad) error
	UpdateAd(ctx context.Context, ad *db.Ad) error
	DeleteAd(ctx context.Context, id uuid.UUID) error
}
