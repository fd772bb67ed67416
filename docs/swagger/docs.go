// Package swagger holds the OpenAPI document served at /docs.
package swagger

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
        "/api/v1/playlists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "List playlists",
                "responses": {
                    "200": {"description": "All playlists"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Create playlist",
                "responses": {
                    "201": {"description": "Created playlist"},
                    "400": {"description": "Invalid request"}
                }
            }
        },
        "/api/v1/playlists/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Refresh playlists",
                "responses": {
                    "200": {"description": "Reloaded"}
                }
            }
        },
        "/api/v1/playlists/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Get playlist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Playlist"},
                    "404": {"description": "Playlist not found"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Update playlist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Updated playlist"},
                    "400": {"description": "Disallowed field or invalid value"},
                    "404": {"description": "Playlist not found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Delete playlist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Deleted"},
                    "404": {"description": "Playlist not found"}
                }
            }
        },
        "/api/v1/playlists/{id}/duplicate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["playlists"],
                "summary": "Duplicate playlist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Duplicated playlist"},
                    "404": {"description": "Playlist not found"}
                }
            }
        },
        "/api/v1/playlists/{id}/clips": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clips"],
                "summary": "Add clip to playlist",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Added clip"},
                    "400": {"description": "Invalid request"},
                    "404": {"description": "Playlist not found"}
                }
            }
        },
        "/api/v1/playlists/{id}/clips/reorder": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clips"],
                "summary": "Reorder clips",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Playlist with the new order"},
                    "400": {"description": "Invalid request"},
                    "404": {"description": "Playlist not found"}
                }
            }
        },
        "/api/v1/playlists/{id}/clips/{clipId}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clips"],
                "summary": "Update clip",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "clipId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated clip"},
                    "400": {"description": "Invalid request"},
                    "404": {"description": "Playlist or clip not found"}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["clips"],
                "summary": "Remove clip",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "clipId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Removed"},
                    "404": {"description": "Playlist or clip not found"}
                }
            }
        },
        "/api/v1/playlists/{id}/timeline": {
            "get": {
                "produces": ["application/json"],
                "tags": ["timeline"],
                "summary": "Get timeline view",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Timeline view"},
                    "404": {"description": "Playlist not found"}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Service and store status"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Review Playlist API",
	Description:      "API for managing review session playlists, clips and timelines",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
