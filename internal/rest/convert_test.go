package rest

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jsisencao/portal-juridico/internal/db"
	"github.com/jsisencao/portal-juridico/internal/portal"
)

func TestNewArticle_NilTagsSerializeAsEmptyList(t *testing.T) {
	out := NewArticle(portal.Article{})

	assert.NotNil(t, out.Tags)
	assert.Empty(t, out.Tags)
}

func TestNewArticle_CarriesCategoryAndAuthorViews(t *testing.T) {
	categoryID := uuid.New()
	authorID := uuid.New()

	in := portal.Article{
		Article: db.Article{
			ID:         uuid.New(),
			Title:      "Novo Código Penal",
			Slug:       "novo-codigo-penal",
			CategoryID: &categoryID,
			AuthorID:   &authorID,
		},
		Category: &portal.Category{Category: db.Category{ID: categoryID, Name: "Direito Penal"}},
		Author:   &portal.Author{Author: db.Author{ID: authorID, Name: "Maria Silva"}},
		Tags:     []string{"penal", "reforma"},
	}

	out := NewArticle(in)

	assert.Equal(t, in.Title, out.Title)
	if assert.NotNil(t, out.Category) {
		assert.Equal(t, "Direito Penal", out.Category.Name)
		assert.Nil(t, out.Category.ArticleCount)
	}
	if assert.NotNil(t, out.Author) {
		assert.Equal(t, "Maria Silva", out.Author.Name)
	}
	assert.Equal(t, []string{"penal", "reforma"}, out.Tags)
}

func TestNewCategoryWithCount_SetsCount(t *testing.T) {
	out := NewCategoryWithCount(portal.Category{
		Category:     db.Category{Name: "Direito Civil", Slug: "direito-civil"},
		ArticleCount: 7,
	})

	if assert.NotNil(t, out.ArticleCount) {
		assert.Equal(t, 7, *out.ArticleCount)
	}
}

func TestNewAdminArticle_FlattensTagRows(t *testing.T) {
	out := NewAdminArticle(db.Article{
		Title: "Rascunho",
		Tags: []db.ArticleTag{
			{Tag: "trabalho"},
			{Tag: "greve"},
		},
	})

	assert.Equal(t, []string{"trabalho", "greve"}, out.Tags)

	empty := NewAdminArticle(db.Article{Title: "Sem tags"})
	assert.NotNil(t, empty.Tags)
	assert.Empty(t, empty.Tags)
}
