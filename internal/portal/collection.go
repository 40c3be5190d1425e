package portal

import (
	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/db"
)

func NewArticles(list []db.Article) []Article {
	articles := make([]Article, len(list))
	for i := range list {
		articles[i] = NewArticle(&list[i])
	}

	return articles
}

func NewCategories(list []db.Category) []Category {
	categories := make([]Category, len(list))
	for i := range list {
		categories[i] = NewCategory(&list[i])
	}

	return categories
}

func NewAuthors(list []db.Author) []Author {
	authors := make([]Author, len(list))
	for i := range list {
		authors[i] = NewAuthor(&list[i])
	}

	return authors
}

func NewAds(list []db.Ad) []Ad {
	ads := make([]Ad, len(list))
	for i := range list {
		ads[i] = NewAd(&list[i])
	}

	return ads
}

func articleIDs(articles []Article) []uuid.UUID {
	ids := make([]uuid.UUID, len(articles))
	for i := range articles {
		ids[i] = articles[i].ID
	}

	return ids
}
