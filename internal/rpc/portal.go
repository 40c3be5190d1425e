package rpc

import (
	"context"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/jsisencao/portal-juridico/internal/portal"
)

//go:generate zenrpc

// PortalService exposes the public read model over JSON-RPC. All methods go
// through the same cached reads as the REST handlers.
type PortalService struct {
	zenrpc.Service
	portal *portal.Service
}

func NewPortalService(service *portal.Service) *PortalService {
	return &PortalService{portal: service}
}

// Articles lists published articles, optionally filtered by category slug or a
// search term. Summaries carry category, author and tags but no body.
//
//zenrpc:categorySlug optional category filter
//zenrpc:search optional case-insensitive search term
//zenrpc:limit=0 maximum number of articles (0 = all)
//zenrpc:return list of article summaries
//zenrpc:500 internal server error
func (s *PortalService) Articles(ctx context.Context, filter ArticlesFilter) (ArticleSummaries, error) {
	switch {
	case filter.Search != nil && *filter.Search != "":
		articles, err := s.portal.SearchArticles(ctx, *filter.Search)
		return NewArticleSummaries(articles), err
	case filter.CategorySlug != nil && *filter.CategorySlug != "":
		articles, err := s.portal.ArticlesByCategorySlug(ctx, *filter.CategorySlug)
		return NewArticleSummaries(articles), err
	default:
		limit := 0
		if filter.Limit != nil {
			limit = *filter.Limit
		}
		articles, err := s.portal.PublishedArticles(ctx, limit)
		return NewArticleSummaries(articles), err
	}
}

// Featured lists published articles flagged as featured, newest first.
//
//zenrpc:limit=2 maximum number of articles
//zenrpc:return list of article summaries
//zenrpc:500 internal server error
func (s *PortalService) Featured(ctx context.Context, req FeaturedRequest) (ArticleSummaries, error) {
	limit := 0
	if req.Limit != nil {
		limit = *req.Limit
	}

	articles, err := s.portal.FeaturedArticles(ctx, limit)
	return NewArticleSummaries(articles), err
}

// BySlug retrieves a single published article with its full content.
//
//zenrpc:slug article slug
//zenrpc:return article with full content
//zenrpc:400 slug must not be empty
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s *PortalService) BySlug(ctx context.Context, req ArticleBySlugRequest) (*Article, error) {
	if req.Slug == "" {
		return nil, zenrpc.NewStringError(400, "slug must not be empty")
	}

	portalArticle, err := s.portal.ArticleBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}

	if portalArticle == nil {
		return nil, zenrpc.NewStringError(404, "article not found")
	}

	article := NewArticle(*portalArticle)
	return &article, nil
}

// Categories retrieves all categories with their published-article counts,
// name ASC.
//
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *PortalService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.portal.CategoriesWithCount(ctx)
	if err != nil {
		return nil, err
	}

	return NewCategories(categories), nil
}

// Authors retrieves all authors, name ASC.
//
//zenrpc:return list of authors
//zenrpc:500 internal server error
func (s *PortalService) Authors(ctx context.Context) (Authors, error) {
	authors, err := s.portal.Authors(ctx)
	if err != nil {
		return nil, err
	}

	return NewAuthors(authors), nil
}
