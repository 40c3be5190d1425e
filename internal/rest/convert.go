package rest

import (
	"github.com/jsisencao/portal-juridico/internal/db"
	"github.com/jsisencao/portal-juridico/internal/portal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c portal.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func NewCategoryWithCount(c portal.Category) Category {
	category := NewCategory(c)
	count := c.ArticleCount
	category.ArticleCount = &count

	return category
}

func NewAuthor(a portal.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
		Email:     a.Email,
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
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
		Published:   a.Published,
		Featured:    a.Featured,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Tags:        a.Tags,
	}
	if article.Tags == nil {
		article.Tags = []string{}
	}

	if a.Category != nil {
		category := NewCategory(*a.Category)
		article.Category = &category
	}

	if a.Author != nil {
		author := NewAuthor(*a.Author)
		article.Author = &author
	}

	return article
}

func NewAd(a portal.Ad) Ad {
	return Ad{
		ID:          a.ID,
		Title:       a.Title,
		ImageURL:    a.ImageURL,
		LinkURL:     a.LinkURL,
		Position:    a.Position,
		Active:      a.Active,
		Clicks:      a.Clicks,
		Impressions: a.Impressions,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		CreatedAt:   a.CreatedAt,
	}
}

// Admin endpoints expose rows straight from the store, tags included.

func NewAdminArticle(a db.Article) Article {
	article := Article{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
		Published:   a.Published,
		Featured:    a.Featured,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		Tags:        make([]string, 0, len(a.Tags)),
	}
	for _, tag := range a.Tags {
		article.Tags = append(article.Tags, tag.Tag)
	}

	return article
}

func NewAdminCategory(c db.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func NewAdminAuthor(a db.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		Bio:       a.Bio,
		AvatarURL: a.AvatarURL,
		Email:     a.Email,
	}
}

func NewAdminAd(a db.Ad) Ad {
	return NewAd(portal.Ad{Ad: a})
}
