package rpc

import "github.com/jsisencao/portal-juridico/internal/portal"

type (
	Articles         []Article
	ArticleSummaries []ArticleSummary
	Categories       []Category
	Authors          []Author
)

func NewArticles(in []portal.Article) Articles {
	out := make(Articles, len(in))
	for i := range in {
		out[i] = NewArticle(in[i])
	}
	return out
}

func NewArticleSummaries(in []portal.Article) ArticleSummaries {
	out := make(ArticleSummaries, len(in))
	for i := range in {
		out[i] = NewArticleSummary(in[i])
	}
	return out
}

func NewCategories(in []portal.Category) Categories {
	out := make(Categories, len(in))
	for i := range in {
		out[i] = NewCategory(in[i])
	}
	return out
}

func NewAuthors(in []portal.Author) Authors {
	out := make(Authors, len(in))
	for i := range in {
		out[i] = NewAuthor(in[i])
	}
	return out
}
