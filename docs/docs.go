// Package docs holds the Swagger document served at /swagger.
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
        "/api/get_users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/user.User"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/presenter.FailureResponse"}
                    }
                }
            }
        },
        "/api/post_user": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["users"],
                "summary": "Create user",
                "parameters": [
                    {"type": "string", "description": "display name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "unique username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "admin, operator or player", "name": "level", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "redirect to /admin"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.FailureResponse"}}
                }
            }
        },
        "/api/edit_user/{username}": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["users"],
                "summary": "Edit user",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true},
                    {"type": "string", "description": "display name", "name": "name", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "description": "admin, operator or player", "name": "level", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "redirect to /admin"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.FailureResponse"}}
                }
            }
        },
        "/api/delete_user/{username}": {
            "post": {
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "302": {"description": "redirect to /admin"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/presenter.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.FailureResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "consumes": ["application/x-www-form-urlencoded"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [
                    {"type": "string", "description": "username", "name": "username", "in": "formData", "required": true},
                    {"type": "string", "description": "password", "name": "password", "in": "formData", "required": true}
                ],
                "responses": {
                    "302": {"description": "redirect to the level's home page, or back to /login with a flash message"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/presenter.FailureResponse"}}
                }
            }
        },
        "/logout": {
            "get": {
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {"302": {"description": "redirect to /login"}}
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "presenter.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "presenter.FailureResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "user.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "username": {"type": "string"},
                "password": {"type": "string"},
                "level": {"type": "string", "enum": ["admin", "operator", "player"]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "rolepanel API",
	Description:      "Role-based user management: session login and an admin CRUD panel for user records.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
