package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
	"github.com/google/uuid"
)

// ErrSlugTaken reports a unique-constraint violation on a slug column. The
// application derives slugs but uniqueness is enforced by the store.
var ErrSlugTaken = errors.New("slug already in use")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
	}

	return nil
}

func isIntegrityViolation(err error) bool {
	pgErr, ok := err.(pg.Error)
	return ok && pgErr.IntegrityViolation()
}

// Categories returns every category ordered by name.
func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"t"."slug" = ?`, slug).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query category by slug: %w", err)
	}

	return category, nil
}

func (r *Repository) CategoryByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	category := &Category{ID: id}
	err := r.db.ModelContext(ctx, category).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query category by id: %w", err)
	}

	return category, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.ModelContext(ctx, category).Insert()
	if isIntegrityViolation(err) {
		return ErrSlugTaken
	} else if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}

	return nil
}

func (r *Repository) UpdateCategory(ctx context.Context, category *Category) error {
	_, err := r.db.ModelContext(ctx, category).WherePK().Update()
	if isIntegrityViolation(err) {
		return ErrSlugTaken
	} else if err != nil {
		return fmt.Errorf("update category: %w", err)
	}

	return nil
}

// DeleteCategory removes a category. Referencing articles keep existing but
// lose their category reference (FK is ON DELETE SET NULL).
func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Category{ID: id}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	return nil
}

// Authors returns every author ordered by name.
func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"t"."name" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query authors: %w", err)
	}

	return authors, nil
}

func (r *Repository) AuthorByID(ctx context.Context, id uuid.UUID) (*Author, error) {
	author := &Author{ID: id}
	err := r.db.ModelContext(ctx, author).WherePK().Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query author by id: %w", err)
	}

	return author, nil
}

func (r *Repository) CreateAuthor(ctx context.Context, author *Author) error {
	if _, err := r.db.ModelContext(ctx, author).Insert(); err != nil {
		return fmt.Errorf("insert author: %w", err)
	}

	return nil
}

func (r *Repository) UpdateAuthor(ctx context.Context, author *Author) error {
	if _, err := r.db.ModelContext(ctx, author).WherePK().Update(); err != nil {
		return fmt.Errorf("update author: %w", err)
	}

	return nil
}

func (r *Repository) DeleteAuthor(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Author{ID: id}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}

	return nil
}

func (r *Repository) publishedArticles(ctx context.Context, articles *[]Article) *orm.Query {
	return r.db.ModelContext(ctx, articles).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = TRUE`).
		OrderExpr(`"t"."published_at" DESC NULLS LAST`)
}

// PublishedArticles returns published articles with category and author,
// newest first. Articles with no publication timestamp sort last. A limit of
// zero means no limit.
func (r *Repository) PublishedArticles(ctx context.Context, limit int) ([]Article, error) {
	var articles []Article
	query := r.publishedArticles(ctx, &articles)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("query published articles: %w", err)
	}

	return articles, nil
}

// FeaturedArticles returns published articles flagged as featured, newest
// first. The featured flag alone never makes an article visible.
func (r *Repository) FeaturedArticles(ctx context.Context, limit int) ([]Article, error) {
	var articles []Article
	query := r.publishedArticles(ctx, &articles).
		Where(`"t"."featured" = TRUE`)
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Select(); err != nil {
		return nil, fmt.Errorf("query featured articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) PublishedArticlesByCategory(ctx context.Context, categoryID uuid.UUID) ([]Article, error) {
	var articles []Article
	err := r.publishedArticles(ctx, &articles).
		Where(`"t"."category_id" = ?`, categoryID).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query articles by category: %w", err)
	}

	return articles, nil
}

// PublishedArticleBySlug returns one published article or nil. Unpublished
// articles are invisible here even when the exact slug is known; this is the
// access-control boundary of the public site.
func (r *Repository) PublishedArticleBySlug(ctx context.Context, slug string) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = TRUE`).
		Where(`"t"."slug" = ?`, slug).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query article by slug: %w", err)
	}

	return article, nil
}

func (r *Repository) PublishedArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."published" = TRUE`).
		Where(`"t"."id" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query article by id: %w", err)
	}

	return article, nil
}

// SearchPublishedArticles matches the term as a case-insensitive substring of
// title, excerpt or content.
func (r *Repository) SearchPublishedArticles(ctx context.Context, term string) ([]Article, error) {
	pattern := "%" + term + "%"

	var articles []Article
	err := r.publishedArticles(ctx, &articles).
		WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."title" ILIKE ?`, pattern).
				WhereOr(`"t"."excerpt" ILIKE ?`, pattern).
				WhereOr(`"t"."content" ILIKE ?`, pattern)
			return q, nil
		}).
		Select()
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}

	return articles, nil
}

// PublishedCountByCategory returns the number of published articles per
// category in a single grouped query.
func (r *Repository) PublishedCountByCategory(ctx context.Context) (map[uuid.UUID]int, error) {
	var rows []struct {
		CategoryID uuid.UUID `pg:"category_id"`
		Count      int       `pg:"count"`
	}
	_, err := r.db.QueryContext(ctx, &rows, `
		SELECT category_id, COUNT(*) AS count
		FROM articles
		WHERE published = TRUE AND category_id IS NOT NULL
		GROUP BY category_id`)
	if err != nil {
		return nil, fmt.Errorf("count articles by category: %w", err)
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.CategoryID] = row.Count
	}

	return counts, nil
}

// Articles returns every article regardless of publication state, newest
// created first. Admin back-office listing.
func (r *Repository) Articles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		Relation("Category").
		Relation("Author").
		OrderExpr(`"t"."created_at" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	return articles, nil
}

// ArticleByID returns one article in any publication state, or nil.
func (r *Repository) ArticleByID(ctx context.Context, id uuid.UUID) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Relation("Category").
		Relation("Author").
		Where(`"t"."id" = ?`, id).
		Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("query article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) CreateArticle(ctx context.Context, article *Article) error {
	_, err := r.db.ModelContext(ctx, article).Insert()
	if isIntegrityViolation(err) {
		return ErrSlugTaken
	} else if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}

	return nil
}

func (r *Repository) UpdateArticle(ctx context.Context, article *Article) error {
	_, err := r.db.ModelContext(ctx, article).WherePK().Update()
	if isIntegrityViolation(err) {
		return ErrSlugTaken
	} else if err != nil {
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ModelContext(ctx, &Article{ID: id}).WherePK().Delete()
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}

	return nil
}

// TagsByArticleIDs fetches the tag rows for a whole batch of articles in one
// query, ordered by creation so tag order is stable.
func (r *Repository) TagsByArticleIDs(ctx context.Context, articleIDs []uuid.UUID) ([]ArticleTag, error) {
	if len(articleIDs) == 0 {
		return []ArticleTag{}, nil
	}

	var tags []ArticleTag
	err := r.db.ModelContext(ctx, &tags).
		Where(`"t"."article_id" IN (?)`, pg.In(articleIDs)).
		OrderExpr(`"t"."created_at" ASC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("query tags by article ids: %w", err)
	}

	return tags, nil
}

// ReplaceArticleTags rewrites the tag set of an article. Duplicate tag
// strings are collapsed before writing.
func (r *Repository) ReplaceArticleTags(ctx context.Context, articleID uuid.UUID, tags []string) error {
	_, err := r.db.ModelContext(ctx, (*ArticleTag)(nil)).
		Where(`"t"."article_id" = ?`, articleID).
		Delete()
	if err != nil {
		return fmt.Errorf("delete article tags: %w", err)
	}

	seen := make(map[string]struct{}, len(tags))
	rows := make([]ArticleTag, 0, len(tags))
	now := time.Now()
	for _, tag := range tags {
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		rows = append(rows, ArticleTag{
			ID:        uuid.New(),
			ArticleID: articleID,
			Tag:       tag,
			CreatedAt: now,
		})
	}

	if len(rows) == 0 {
		return nil
	}

	if _, err := r.db.ModelContext(ctx, &rows).Insert(); err != nil {
		return fmt.Errorf("insert article tags: %w", err)
	}

	return nil
}
