// Package docs registers the OpenAPI document served at /api/swagger.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/auth/signup": {"post": {"tags": ["auth"], "summary": "Create an account", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Log in", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "404": {"description": "Not Found"}, "429": {"description": "Too Many Requests"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Log out", "responses": {"200": {"description": "OK"}}}},
        "/auth/forgot-password": {"post": {"tags": ["auth"], "summary": "Request a password reset", "responses": {"200": {"description": "OK"}}}},
        "/auth/reset-password": {"post": {"tags": ["auth"], "summary": "Reset a password with a reset token", "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}},
        "/auth/verify": {"get": {"security": [{"CookieAuth": []}], "tags": ["auth"], "summary": "Verify the current token", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}}},
        "/personal-details-form": {"post": {"security": [{"CookieAuth": []}], "tags": ["profile"], "summary": "Submit personal details", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}},
        "/personal-information": {"get": {"security": [{"CookieAuth": []}], "tags": ["profile"], "summary": "Get own personal details", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/personal-information/{userId}": {"get": {"security": [{"CookieAuth": []}], "tags": ["profile"], "summary": "Get a student's public identity", "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/profile-picture": {"post": {"security": [{"CookieAuth": []}], "consumes": ["multipart/form-data"], "tags": ["profile"], "summary": "Upload a profile picture", "parameters": [{"type": "file", "name": "picture", "in": "formData", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "403": {"description": "Forbidden"}, "413": {"description": "Request Entity Too Large"}}}},
        "/recruiter/profile": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["recruiter"], "summary": "Get own recruiter profile", "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"CookieAuth": []}], "tags": ["recruiter"], "summary": "Create or update own recruiter profile", "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}, "400": {"description": "Bad Request"}}}
        },
        "/recruiter/jobs": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["jobs"], "summary": "List own job postings", "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}},
            "post": {"security": [{"CookieAuth": []}], "tags": ["jobs"], "summary": "Create a job posting", "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}}
        },
        "/recruiter/jobs/{jobId}": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["jobs"], "summary": "Get an owned job posting", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"CookieAuth": []}], "tags": ["jobs"], "summary": "Update an owned job posting", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/recruiter/jobs/{jobId}/status": {"patch": {"security": [{"CookieAuth": []}], "tags": ["jobs"], "summary": "Change a job's status", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/recruiter/jobs/{jobId}/applications": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["applications"], "summary": "List applications for an owned job", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"CookieAuth": []}], "tags": ["applications"], "summary": "Add or update a student's application to a job", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/recruiter/jobs/{jobId}/applications/export": {"get": {"security": [{"CookieAuth": []}], "tags": ["applications"], "summary": "Download a job's applications", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}, {"type": "string", "name": "format", "in": "query"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/recruiter/jobs/{jobId}/applications/{applicationId}": {"patch": {"security": [{"CookieAuth": []}], "tags": ["applications"], "summary": "Update an application's stage, status or notes", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}, {"type": "integer", "name": "applicationId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}},
        "/recruiter/jobs/{jobId}/applications/{applicationId}/screenings": {
            "get": {"security": [{"CookieAuth": []}], "tags": ["screenings"], "summary": "List the screening log of an application", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}, {"type": "integer", "name": "applicationId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "post": {"security": [{"CookieAuth": []}], "tags": ["screenings"], "summary": "Append a screening event to an application", "parameters": [{"type": "integer", "name": "jobId", "in": "path", "required": true}, {"type": "integer", "name": "applicationId", "in": "path", "required": true}], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}}
        },
        "/recruiter/students": {"get": {"security": [{"CookieAuth": []}], "tags": ["students"], "summary": "Search students", "parameters": [{"type": "string", "name": "search", "in": "query"}], "responses": {"200": {"description": "OK"}}}},
        "/recruiter/students/{userId}": {"get": {"security": [{"CookieAuth": []}], "tags": ["students"], "summary": "Get a student's full profile", "parameters": [{"type": "integer", "name": "userId", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/health": {"get": {"tags": ["health"], "summary": "Health check", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}}
    },
    "securityDefinitions": {
        "CookieAuth": {"type": "apiKey", "name": "token", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Placement Portal API",
	Description:      "Student profiles, recruiter job postings and application tracking.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
