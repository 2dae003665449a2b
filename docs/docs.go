// Package docs содержит описание API для swagger UI.
// Регенерация: swag init -g cmd/server/main.go -o docs
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Регистрация",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Вход по email и паролю",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/auth/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Обновление пары токенов",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/auth.RefreshRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.LoginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Текущий пользователь",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.AccountResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Обновить аккаунт",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/user.AccountUpdateRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.AccountResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Удалить аккаунт",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/admin/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Список пользователей",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/user.UserListResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/users/me/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Фитнес-профиль текущего пользователя",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profile.ProfileResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Создать или обновить фитнес-профиль",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/profile.ProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/profile.ProfileResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/training-plans": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["training-plans"],
                "summary": "Планы текущего пользователя",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/plan.PlanListResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training-plans"],
                "summary": "Сохранить план, составленный вручную",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/plan.CreatePlanRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/plan.PlanResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/training-plans/generate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Строит план через модель по фитнес-профилю пользователя и сохраняет его.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training-plans"],
                "summary": "Сгенерировать план по профилю",
                "parameters": [{"in": "body", "name": "body", "schema": {"$ref": "#/definitions/plan.GeneratePlanRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/plan.PlanResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        },
        "/training-plans/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["training-plans"],
                "summary": "План по идентификатору",
                "parameters": [{"type": "string", "description": "ID плана", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/plan.PlanResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["training-plans"],
                "summary": "Обновить план",
                "parameters": [
                    {"type": "string", "description": "ID плана", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/plan.UpdatePlanRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/plan.PlanResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["training-plans"],
                "summary": "Удалить план",
                "parameters": [{"type": "string", "description": "ID плана", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "auth.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string", "example": "athlete@example.com"},
                "password": {"type": "string", "minLength": 8},
                "username": {"type": "string", "minLength": 3, "maxLength": 32}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "auth.RefreshRequest": {
            "type": "object",
            "required": ["refresh_token"],
            "properties": {"refresh_token": {"type": "string"}}
        },
        "auth.TokenPair": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "refresh_token": {"type": "string"}
            }
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "tokens": {"$ref": "#/definitions/auth.TokenPair"}
            }
        },
        "user.AccountResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "user.AccountUpdateRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "username": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "user.UserListResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/user.AccountResponse"}},
                "total": {"type": "integer"}
            }
        },
        "profile.ProfileRequest": {
            "type": "object",
            "properties": {
                "gender": {"type": "string", "enum": ["M", "F"]},
                "weight": {"type": "number"},
                "height": {"type": "number"},
                "age": {"type": "integer"},
                "experience_level": {"type": "string", "enum": ["BEG", "INT", "ADV"]},
                "fitness_goal": {"type": "string", "enum": ["HYPERTROPHY", "STRENGTH", "ENDURANCE", "WEIGHT_LOSS", "MAINTENANCE"]},
                "available_days": {"type": "integer", "minimum": 1, "maximum": 7},
                "health_conditions": {"type": "string"}
            }
        },
        "profile.ProfileResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "gender": {"type": "string"},
                "weight": {"type": "number"},
                "height": {"type": "number"},
                "age": {"type": "integer"},
                "experience_level": {"type": "string"},
                "fitness_goal": {"type": "string"},
                "available_days": {"type": "integer"},
                "health_conditions": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "plan.CreatePlanRequest": {
            "type": "object",
            "required": ["plan_type", "difficulty", "exercises"],
            "properties": {
                "plan_type": {"type": "string", "enum": ["STRENGTH", "CARDIO", "HIIT", "MIXED"]},
                "difficulty": {"type": "string", "enum": ["BEG", "INT", "ADV"]},
                "exercises": {"$ref": "#/definitions/training.Document"},
                "is_active": {"type": "boolean"}
            }
        },
        "plan.UpdatePlanRequest": {
            "type": "object",
            "properties": {
                "plan_type": {"type": "string"},
                "difficulty": {"type": "string"},
                "exercises": {"$ref": "#/definitions/training.Document"},
                "is_active": {"type": "boolean"}
            }
        },
        "plan.GeneratePlanRequest": {
            "type": "object",
            "properties": {"plan_type": {"type": "string", "enum": ["STRENGTH", "CARDIO", "HIIT", "MIXED"]}}
        },
        "plan.PlanResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "plan_type": {"type": "string"},
                "difficulty": {"type": "string"},
                "exercises": {"$ref": "#/definitions/training.Document"},
                "created_at": {"type": "string"},
                "is_active": {"type": "boolean"}
            }
        },
        "plan.PlanListResponse": {
            "type": "object",
            "properties": {
                "plans": {"type": "array", "items": {"$ref": "#/definitions/plan.PlanResponse"}},
                "total": {"type": "integer"}
            }
        },
        "training.Document": {
            "type": "object",
            "properties": {
                "days": {"type": "array", "items": {"$ref": "#/definitions/training.Day"}}
            }
        },
        "training.Day": {
            "type": "object",
            "properties": {
                "day": {"type": "string"},
                "exercises": {"type": "array", "items": {"$ref": "#/definitions/training.Exercise"}}
            }
        },
        "training.Exercise": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "sets": {"type": "integer"},
                "reps": {"type": "string"},
                "rest": {"type": "string"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {}
            }
        },
        "response.ErrorEnvelope": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/response.ErrorBody"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
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
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fitness App API",
	Description:      "Профили, тренировочные планы и их генерация.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
