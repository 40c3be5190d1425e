// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	PortalService struct{ Articles, Featured, BySlug, Categories, Authors string }
}{
	PortalService: struct{ Articles, Featured, BySlug, Categories, Authors string }{
		Articles:   "articles",
		Featured:   "featured",
		BySlug:     "byslug",
		Categories: "categories",
		Authors:    "authors",
	},
}

func (PortalService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"Articles": {
				Description: `Articles lists published articles, optionally filtered by category slug or a
search term. Summaries carry category, author and tags but no body.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "ArticlesFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categorySlug",
								Optional:    true,
								Description: `categorySlug optional category filter`,
								Type:        smd.String,
							},
							{
								Name:        "search",
								Optional:    true,
								Description: `search optional case-insensitive search term`,
								Type:        smd.String,
							},
							{
								Name:        "limit",
								Optional:    true,
								Description: `limit=0 maximum number of articles (0 = all)`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of article summaries`,
					Type:        smd.Object,
					TypeName:    "ArticleSummaries",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Featured": {
				Description: `Featured lists published articles flagged as featured, newest first.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "FeaturedRequest",
						Properties: smd.PropertyList{
							{
								Name:        "limit",
								Optional:    true,
								Description: `limit=2 maximum number of articles`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of article summaries`,
					Type:        smd.Object,
					TypeName:    "ArticleSummaries",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"BySlug": {
				Description: `BySlug retrieves a single published article with its full content.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "ArticleBySlugRequest",
						Properties: smd.PropertyList{
							{
								Name:        "slug",
								Description: `slug article slug`,
								Type:        smd.String,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `article with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Article",
					Properties: smd.PropertyList{
						{
							Name: "id",
							Ref:  "#/definitions/uuid.UUID",
							Type: smd.Object,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "slug",
							Type: smd.String,
						},
						{
							Name:     "excerpt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "content",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "imageUrl",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "featured",
							Type: smd.Boolean,
						},
						{
							Name:     "publishedAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name:     "category",
							Optional: true,
							Ref:      "#/definitions/Category",
							Type:     smd.Object,
						},
						{
							Name:     "author",
							Optional: true,
							Ref:      "#/definitions/Author",
							Type:     smd.Object,
						},
						{
							Name: "tags",
							Type: smd.Array,
							Items: map[string]string{
								"type": smd.String,
							},
						},
					},
					Definitions: map[string]smd.Definition{
						"uuid.UUID": {
							Type:       "object",
							Properties: smd.PropertyList{},
						},
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Ref:  "#/definitions/uuid.UUID",
									Type: smd.Object,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name: "slug",
									Type: smd.String,
								},
								{
									Name: "articleCount",
									Type: smd.Integer,
								},
							},
						},
						"Author": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "id",
									Ref:  "#/definitions/uuid.UUID",
									Type: smd.Object,
								},
								{
									Name: "name",
									Type: smd.String,
								},
								{
									Name:     "bio",
									Optional: true,
									Type:     smd.String,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "slug must not be empty",
					404: "article not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories with their published-article counts,
name ASC.`,
				Parameters: []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Object,
					TypeName:    "Categories",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Authors": {
				Description: `Authors retrieves all authors, name ASC.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of authors`,
					Type:        smd.Object,
					TypeName:    "Authors",
					Properties:  smd.PropertyList{},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s PortalService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.PortalService.Articles:
		var args = struct {
			Filter ArticlesFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Articles(ctx, args.Filter))

	case RPC.PortalService.Featured:
		var args = struct {
			Req FeaturedRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Featured(ctx, args.Req))

	case RPC.PortalService.BySlug:
		var args = struct {
			Req ArticleBySlugRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.BySlug(ctx, args.Req))

	case RPC.PortalService.Categories:
		resp.Set(s.Categories(ctx))

	case RPC.PortalService.Authors:
		resp.Set(s.Authors(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
