package rpc

import (
	"time"

	"github.com/google/uuid"
)

type ArticlesFilter struct {
	//categorySlug optional category filter
	CategorySlug *string `json:"categorySlug,omitempty"`
	//search optional case-insensitive search term
	Search *string `json:"search,omitempty"`
	//limit=0 maximum number of articles (0 = all)
	Limit *int `json:"limit,omitempty"`
}

type FeaturedRequest struct {
	//limit=2 maximum number of articles
	Limit *int `json:"limit,omitempty"`
}

type ArticleBySlugRequest struct {
	//slug article slug
	Slug string `json:"slug"`
}

type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ArticleCount int       `json:"articleCount"`
}

type Author struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Bio  *string   `json:"bio,omitempty"`
}

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Author      *Author    `json:"author,omitempty"`
	Tags        []string   `json:"tags"`
}

// ArticleSummary is the listing shape, without the body.
type ArticleSummary struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Category    *Category  `json:"category,omitempty"`
	Author      *Author    `json:"author,omitempty"`
	Tags        []string   `json:"tags"`
}
