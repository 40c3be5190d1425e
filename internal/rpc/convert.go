package rpc

import "github.com/jsisencao/portal-juridico/internal/portal"

func NewCategory(c portal.Category) Category {
	return Category{
		ID:           c.ID,
		Name:         c.Name,
		Slug:         c.Slug,
		ArticleCount: c.ArticleCount,
	}
}

func NewAuthor(a portal.Author) Author {
	return Author{
		ID:   a.ID,
		Name: a.Name,
		Bio:  a.Bio,
	}
}

func NewArticle(a portal.Article) Article {
	article := Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		Featured:    a.Featured,
		PublishedAt: a.PublishedAt,
		Tags:        a.Tags,
	}
	if a.Category != nil {
		category := NewCategory(*a.Category)
		article.Category = &category
	}
	if a.Author != nil {
		author := NewAuthor(*a.Author)
		article.Author = &author
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	return article
}

func NewArticleSummary(a portal.Article) ArticleSummary {
	summary := ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		ImageURL:    a.ImageURL,
		Featured:    a.Featured,
		PublishedAt: a.PublishedAt,
		Tags:        a.Tags,
	}
	if a.Category != nil {
		category := NewCategory(*a.Category)
		summary.Category = &category
	}
	if a.Author != nil {
		author := NewAuthor(*a.Author)
		summary.Author = &author
	}
	if summary.Tags == nil {
		summary.Tags = []string{}
	}

	return summary
}
