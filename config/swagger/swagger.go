// Package swagger registers the OpenAPI document served at /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/ping": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/rooms": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["room"],
                "summary": "Creates a new room",
                "responses": {
                    "200": {"description": "room code, player id and token"},
                    "400": {"description": "validation error"}
                }
            }
        },
        "/rooms/{room_code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["room"],
                "summary": "Public snapshot of a room",
                "parameters": [{"type": "string", "name": "room_code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "room snapshot"},
                    "404": {"description": "room not found"}
                }
            }
        },
        "/rooms/{room_code}/join": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["room"],
                "summary": "Joins or rejoins a room",
                "parameters": [{"type": "string", "name": "room_code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "player id and token"},
                    "404": {"description": "room not found"},
                    "409": {"description": "game already started"}
                }
            }
        },
        "/auth/rooms/{room_code}/leave": {
            "post": {
                "produces": ["application/json"],
                "tags": ["room"],
                "summary": "Leaves a room (soft removal)",
                "parameters": [
                    {"type": "string", "name": "Authorization", "in": "header", "required": true},
                    {"type": "string", "name": "room_code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "left room"},
                    "401": {"description": "unauthorized"}
                }
            }
        },
        "/games/{room_code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "Archived results of finished games in a room",
                "parameters": [{"type": "string", "name": "room_code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "list of archived games"},
                    "404": {"description": "no games recorded"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Center Coin API",
	Description:      "Gin-Gonic server for the Center Coin betting game",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
