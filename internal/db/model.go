package db

import (
	"time"

	"github.com/google/uuid"
)

// Ad placement slots. The public read path only serves ads whose position
// matches one of these values.
const (
	AdPositionSidebar        = "sidebar"
	AdPositionHomepageTop    = "homepage-top"
	AdPositionHomepageMiddle = "homepage-middle"
	AdPositionArticleBottom  = "article-bottom"
)

// AdPositions lists every valid ad placement slot.
var AdPositions = []string{
	AdPositionSidebar,
	AdPositionHomepageTop,
	AdPositionHomepageMiddle,
	AdPositionArticleBottom,
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          uuid.UUID `pg:"id,pk,type:uuid"`
	Name        string    `pg:"name,use_zero"`
	Slug        string    `pg:"slug,use_zero"`
	Description *string   `pg:"description"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
	UpdatedAt   time.Time `pg:"updated_at,use_zero"`
}

type Author struct {
	tableName struct{} `pg:"authors,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"id,pk,type:uuid"`
	Name      string    `pg:"name,use_zero"`
	Bio       *string   `pg:"bio"`
	AvatarURL *string   `pg:"avatar_url"`
	Email     *string   `pg:"email"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
	UpdatedAt time.Time `pg:"updated_at,use_zero"`
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          uuid.UUID  `pg:"id,pk,type:uuid"`
	Title       string     `pg:"title,use_zero"`
	Slug        string     `pg:"slug,use_zero"`
	Excerpt     *string    `pg:"excerpt"`
	Content     *string    `pg:"content"`
	ImageURL    *string    `pg:"image_url"`
	CategoryID  *uuid.UUID `pg:"category_id,type:uuid"`
	AuthorID    *uuid.UUID `pg:"author_id,type:uuid"`
	Published   bool       `pg:"published,use_zero"`
	Featured    bool       `pg:"featured,use_zero"`
	PublishedAt *time.Time `pg:"published_at"`
	CreatedAt   time.Time  `pg:"created_at,use_zero"`
	UpdatedAt   time.Time  `pg:"updated_at,use_zero"`

	Category *Category `pg:"fk:category_id,rel:has-one"`
	Author   *Author   `pg:"fk:author_id,rel:has-one"`

	// Tags are attached by the read layer in a separate batched query.
	Tags []ArticleTag `pg:"-"`
}

type ArticleTag struct {
	tableName struct{} `pg:"article_tags,alias:t,discard_unknown_columns"`

	ID        uuid.UUID `pg:"id,pk,type:uuid"`
	ArticleID uuid.UUID `pg:"article_id,type:uuid,use_zero"`
	Tag       string    `pg:"tag,use_zero"`
	CreatedAt time.Time `pg:"created_at,use_zero"`
}

type Ad struct {
	tableName struct{} `pg:"ads,alias:t,discard_unknown_columns"`

	ID          uuid.UUID  `pg:"id,pk,type:uuid"`
	Title       string     `pg:"title,use_zero"`
	ImageURL    string     `pg:"image_url,use_zero"`
	LinkURL     *string    `pg:"link_url"`
	Position    string     `pg:"position,use_zero"`
	Active      bool       `pg:"active,use_zero"`
	Clicks      int        `pg:"clicks,use_zero"`
	Impressions int        `pg:"impressions,use_zero"`
	StartDate   *time.Time `pg:"start_date"`
	EndDate     *time.Time `pg:"end_date"`
	CreatedAt   time.Time  `pg:"created_at,use_zero"`
}

type User struct {
	tableName struct{} `pg:"users,alias:t,discard_unknown_columns"`

	ID           uuid.UUID `pg:"id,pk,type:uuid"`
	Email        string    `pg:"email,use_zero"`
	PasswordHash string    `pg:"password_hash,use_zero"`
	CreatedAt    time.Time `pg:"created_at,use_zero"`
}

type UserRole struct {
	tableName struct{} `pg:"user_roles,alias:t,discard_unknown_columns"`

	ID     uuid.UUID `pg:"id,pk,type:uuid"`
	UserID uuid.UUID `pg:"user_id,type:uuid,use_zero"`
	Role   string    `pg:"role,use_zero"`
}
