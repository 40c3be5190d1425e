// Package docs holds the swagger specification registered at startup.
// Regenerate with `swag init -g cmd/app/main.go` after changing handler
// annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/articles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List published articles",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of articles (0 = all)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Article"}}}
                }
            }
        },
        "/api/v1/articles/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List featured articles",
                "parameters": [
                    {"type": "integer", "description": "Maximum number of articles (default 2)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Article"}}}
                }
            }
        },
        "/api/v1/articles/category/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "List published articles of a category",
                "parameters": [
                    {"type": "string", "description": "Category slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Article"}}}
                }
            }
        },
        "/api/v1/articles/slug/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Get one published article by slug",
                "parameters": [
                    {"type": "string", "description": "Article slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.Article"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["articles"],
                "summary": "Search published articles",
                "parameters": [
                    {"type": "string", "description": "Search term", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Article"}}}
                }
            }
        },
        "/api/v1/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Category"}}}
                }
            }
        },
        "/api/v1/categories/with-count": {
            "get": {
                "produces": ["application/json"],
                "tags": ["categories"],
                "summary": "List categories with published-article counts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Category"}}}
                }
            }
        },
        "/api/v1/authors": {
            "get": {
                "produces": ["application/json"],
                "tags": ["authors"],
                "summary": "List authors",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Author"}}}
                }
            }
        },
        "/api/v1/ads/{position}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ads"],
                "summary": "List active ads for a placement slot",
                "parameters": [
                    {"enum": ["sidebar", "homepage-top", "homepage-middle", "article-bottom"], "type": "string", "description": "Placement slot", "name": "position", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/rest.Ad"}}},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/ads/{id}/click": {
            "post": {
                "tags": ["ads"],
                "summary": "Record an ad click",
                "parameters": [
                    {"type": "string", "description": "Ad ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/api/v1/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in with email and password",
                "parameters": [
                    {"description": "Credentials", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/rest.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/rest.LoginResponse"}},
                    "401": {"description": "Unauthorized"}
                }
            }
        }
    },
    "definitions": {
        "rest.Article": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "slug": {"type": "string"},
                "excerpt": {"type": "string"},
                "content": {"type": "string"},
                "imageUrl": {"type": "string"},
                "categoryId": {"type": "string"},
                "authorId": {"type": "string"},
                "published": {"type": "boolean"},
                "featured": {"type": "boolean"},
                "publishedAt": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "category": {"$ref": "#/definitions/rest.Category"},
                "author": {"$ref": "#/definitions/rest.Author"},
                "tags": {"type": "array", "items": {"type": "string"}}
            }
        },
        "rest.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "slug": {"type": "string"},
                "description": {"type": "string"},
                "articleCount": {"type": "integer"}
            }
        },
        "rest.Author": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "bio": {"type": "string"},
                "avatarUrl": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "rest.Ad": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "imageUrl": {"type": "string"},
                "linkUrl": {"type": "string"},
                "position": {"type": "string"},
                "active": {"type": "boolean"},
                "clicks": {"type": "integer"},
                "impressions": {"type": "integer"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "rest.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "rest.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Portal Jurídico API",
	Description:      "Legal news portal for Angola: public reads, admin back office and JSON-RPC",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
