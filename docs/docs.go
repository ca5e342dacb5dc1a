// Package docs holds the generated Swagger specification for the Idea Board API
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "description": "Reports whether the service can reach its database",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/token": {
            "post": {
                "description": "Exchange an email and password for a bearer access token valid for 30 minutes",
                "consumes": ["application/x-www-form-urlencoded"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in",
                "parameters": [
                    {"type": "string", "description": "User email", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "User password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.TokenResponse"}},
                    "401": {"description": "Incorrect email or password", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Missing form fields", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/users/": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get every registered user",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.User"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "description": "Create a regular user account. Name defaults to the email local part.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "Registration data", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "400": {"description": "Email already registered", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Get the user the bearer token belongs to",
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/users/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Delete a regular user and their ideas. Admin only; admins cannot be deleted.",
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [
                    {"type": "integer", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Operation not permitted or target is an admin", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/ideas/": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Admins get every idea, other users only their own. Newest first.",
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "List ideas",
                "parameters": [
                    {"type": "integer", "description": "Number of ideas to skip, default: 0", "name": "skip", "in": "query"},
                    {"type": "integer", "description": "Maximum number of ideas, default: 100, max: 1000", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Idea"}}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Invalid skip or limit", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Post a new idea owned by the caller",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Create an idea",
                "parameters": [
                    {"description": "Idea content, at most 1000 characters", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateIdeaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Idea"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "422": {"description": "Invalid idea", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/ideas/{id}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Delete an idea the caller owns. Admins may delete any idea.",
                "produces": ["application/json"],
                "tags": ["ideas"],
                "summary": "Delete an idea",
                "parameters": [
                    {"type": "integer", "description": "Idea ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "401": {"description": "Not authenticated", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "403": {"description": "Not authorized to delete this idea", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Idea not found", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.CreateIdeaRequest": {
            "type": "object",
            "required": ["idea"],
            "properties": {"idea": {"type": "string", "maxLength": 1000}}
        },
        "models.Idea": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "idea": {"type": "string"},
                "user_id": {"type": "integer"},
                "created_at": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"},
                "password": {"type": "string", "minLength": 8}
            }
        },
        "models.TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "name": {"type": "string"},
                "is_admin": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Idea Board API",
	Description:      "Multi-user idea board: registration, bearer token login, users and ideas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
