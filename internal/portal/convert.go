package portal

import (
	"github.com/jsisencao/portal-juridico/internal/db"
)

func NewCategory(c *db.Category) Category {
	return Category{Category: *c}
}

func NewAuthor(a *db.Author) Author {
	return Author{Author: *a}
}

func NewAd(a *db.Ad) Ad {
	return Ad{Ad: *a}
}

func NewArticle(a *db.Article) Article {
	inner := *a
	inner.Category = nil
	inner.Author = nil
	inner.Tags = nil

	article := Article{
		Article: inner,
		Tags:    []string{},
	}

	if a.Category != nil {
		category := NewCategory(a.Category)
		article.Category = &category
	}

	if a.Author != nil {
		author := NewAuthor(a.Author)
		article.Author = &author
	}

	return article
}
