package rest

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	// ArticleCount is only present on the with-count listing.
	ArticleCount *int `json:"articleCount,omitempty"`
}

type Author struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Email     *string   `json:"email,omitempty"`
}

type Article struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Content     *string    `json:"content,omitempty"`
	ImageURL    *string    `json:"imageUrl,omitempty"`
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	AuthorID    *uuid.UUID `json:"authorId,omitempty"`
	Published   bool       `json:"published"`
	Featured    bool       `json:"featured"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	Category    *Category  `json:"category,omitempty"`
	Author      *Author    `json:"author,omitempty"`
	Tags        []string   `json:"tags"`
}

type Ad struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	ImageURL    string     `json:"imageUrl"`
	LinkURL     *string    `json:"linkUrl,omitempty"`
	Position    string     `json:"position"`
	Active      bool       `json:"active"`
	Clicks      int        `json:"clicks"`
	Impressions int        `json:"impressions"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
