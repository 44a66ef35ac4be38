// Package docs registers the OpenAPI document served under /swagger.
package docs

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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/login": {"post": {"tags": ["auth"], "summary": "Exchange an authorization code for a session", "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}}}},
        "/auth/refresh": {"post": {"tags": ["auth"], "summary": "Re-issue the session token", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/auth/logout": {"post": {"tags": ["auth"], "summary": "Clear the session cookie", "responses": {"200": {"description": "OK"}}}},
        "/users/me": {"get": {"tags": ["users"], "summary": "Current user profile", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/users/{userId}": {"get": {"tags": ["users"], "summary": "User profile by id", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Forbidden"}, "404": {"description": "Not Found"}}}},
        "/courses": {"get": {"tags": ["courses"], "summary": "List courses", "responses": {"200": {"description": "OK"}}}},
        "/courses/{id}": {"get": {"tags": ["courses"], "summary": "Course detail", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}},
        "/modules/{courseId}": {"get": {"tags": ["courses"], "summary": "Modules of a course", "parameters": [{"name": "courseId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/modules/{moduleId}": {"get": {"tags": ["courses"], "summary": "Module with media as data URIs", "security": [{"BearerAuth": []}], "parameters": [{"name": "moduleId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/modules/{moduleId}/quiz": {"get": {"tags": ["quiz"], "summary": "Quiz questions without answers", "security": [{"BearerAuth": []}], "parameters": [{"name": "moduleId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/modules/{moduleId}/quiz/draft": {"post": {"tags": ["quiz"], "summary": "Draft questions with Gemini", "security": [{"BearerAuth": []}], "parameters": [{"name": "moduleId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "503": {"description": "Drafting disabled"}}}},
        "/add-course": {"post": {"tags": ["authoring"], "summary": "Create a course with modules and quizzes", "security": [{"BearerAuth": []}], "consumes": ["application/json", "multipart/form-data"], "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}}},
        "/delete-course/{id}": {"delete": {"tags": ["authoring"], "summary": "Delete a course and everything under it", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/delete-module/{id}": {"delete": {"tags": ["authoring"], "summary": "Delete a module", "security": [{"BearerAuth": []}], "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/next-incomplete-module/{userId}/{courseId}": {"get": {"tags": ["progress"], "summary": "First module the user has not completed", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}, {"name": "courseId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}, "404": {"description": "No modules found"}}}},
        "/module-completion/{userId}/{courseId}": {"get": {"tags": ["progress"], "summary": "Completed and total module counts", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}, {"name": "courseId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/submit-quiz": {"post": {"tags": ["progress"], "summary": "Grade a quiz and record the module", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid answer"}}}},
        "/api/complete-course": {"post": {"tags": ["progress"], "summary": "Mark the enrollment completed", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not enrolled"}}}},
        "/api/enroll": {"post": {"tags": ["progress"], "summary": "Enroll in a course", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/enrollment/{userId}/{courseId}": {"get": {"tags": ["progress"], "summary": "Enrollment state", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}, {"name": "courseId", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK"}}}},
        "/api/restart-course": {"post": {"tags": ["progress"], "summary": "Clear completions and restart", "security": [{"BearerAuth": []}], "responses": {"200": {"description": "OK"}}}},
        "/api/user-progress/{userId}": {"get": {"tags": ["progress"], "summary": "Progress across enrolled courses", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/api/feedback": {"post": {"tags": ["feedback"], "summary": "Leave feedback on a course", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}}}},
        "/api/certificates": {"post": {"tags": ["certificates"], "summary": "Issue a certificate for a completed course", "security": [{"BearerAuth": []}], "responses": {"201": {"description": "Created"}, "409": {"description": "Course not completed"}}}},
        "/api/certificates/{userId}": {"get": {"tags": ["certificates"], "summary": "Certificates of a user", "security": [{"BearerAuth": []}], "parameters": [{"name": "userId", "in": "path", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}}}},
        "/certificates/verify": {"get": {"tags": ["certificates"], "summary": "Verify a certificate code", "parameters": [{"name": "code", "in": "query", "required": true, "type": "string"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}}
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Skillverse API",
	Description:      "Courses, modules, quizzes and learner progress.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
