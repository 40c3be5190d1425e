package portal

import (
	"github.com/jsisencao/portal-juridico/internal/db"
)

type Category struct {
	db.Category
	// ArticleCount is the number of published articles, filled only by
	// CategoriesWithCount.
	ArticleCount int
}

type Author struct {
	db.Author
}

type Article struct {
	db.Article
	Category *Category
	Author   *Author
	Tags     []string
}

type Ad struct {
	db.Ad
}
