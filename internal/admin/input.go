package admin

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/jsisencao/portal-juridico/internal/db"
)

type ArticleInput struct {
	Title      string     `json:"title"`
	Slug       string     `json:"slug"`
	Excerpt    *string    `json:"excerpt"`
	Content    *string    `json:"content"`
	ImageURL   *string    `json:"imageUrl"`
	CategoryID *uuid.UUID `json:"categoryId"`
	AuthorID   *uuid.UUID `json:"authorId"`
	Published  bool       `json:"published"`
	Featured   bool       `json:"featured"`
	Tags       []string   `json:"tags"`
}

func (i ArticleInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&i.Slug, validation.Match(slugPattern)),
		validation.Field(&i.ImageURL, is.URL),
		validation.Field(&i.Tags, validation.Each(validation.Required, validation.Length(1, 100))),
	)
}

type CategoryInput struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

func (i CategoryInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&i.Slug, validation.Match(slugPattern)),
	)
}

type AuthorInput struct {
	Name      string  `json:"name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatarUrl"`
	Email     *string `json:"email"`
}

func (i AuthorInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&i.AvatarURL, is.URL),
		validation.Field(&i.Email, is.Email),
	)
}

type AdInput struct {
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl"`
	LinkURL   *string    `json:"linkUrl"`
	Position  string     `json:"position"`
	Active    bool       `json:"active"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

func (i AdInput) Validate() error {
	positions := make([]interface{}, len(db.AdPositions))
	for n, position := range db.AdPositions {
		positions[n] = position
	}

	return validation.ValidateStruct(&i,
		validation.Field(&i.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&i.ImageURL, validation.Required, is.URL),
		validation.Field(&i.LinkURL, is.URL),
		validation.Field(&i.Position, validation.Required, validation.In(positions...)),
		validation.Field(&i.EndDate, validation.By(func(interface{}) error {
			if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
				return validation.NewError("validation_date_window", "end date must not precede start date")
			}
			return nil
		})),
	)
}
