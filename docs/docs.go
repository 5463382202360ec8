// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/weather-favorites/main.go
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
		"/create-user": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Create a user",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.CredentialsDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "Invalid payload or duplicate username",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/remove-user": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Soft delete a user",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "user",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.UsernameDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/change-password": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Change the password of a user",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.CredentialsDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/login": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Check credentials and open a session",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "credentials",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.CredentialsDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.LoginResult"
						}
					},
					"400": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					},
					"401": {
						"description": "Wrong password",
						"schema": {
							"$ref": "#/definitions/model.LoginResult"
						}
					}
				}
			}
		},
		"/logout": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"account"
				],
				"summary": "Persist favorites and close the session",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "Session not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					},
					"401": {
						"description": "Missing header",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/health": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"health"
				],
				"summary": "Health of the application components",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.HealthResponse"
						}
					},
					"503": {
						"description": "Some component is down",
						"schema": {
							"$ref": "#/definitions/model.HealthResponse"
						}
					}
				}
			}
		},
		"/add-favorite": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"favorites"
				],
				"summary": "Add a favorite location",
				"consumes": [
					"application/json"
				],
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "favorite",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/model.AddFavoriteDTO"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "Invalid payload",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					},
					"401": {
						"description": "Login required",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/remove-favorite/{location}": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"favorites"
				],
				"summary": "Remove a favorite location",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/clear-favorites": {
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"favorites"
				],
				"summary": "Remove every favorite location",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.StatusResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"favorites"
				],
				"summary": "List favorite locations",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "string"
							}
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-favorite-weather/{location}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Refresh the current weather of a favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.WeatherRecord"
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-favorite-historical/{location}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Weather of the 4 days before today",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.HistoricalReport"
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-favorites-forecast/{location}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Forecast of tomorrow",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.ForecastReport"
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-favorite-alerts/{location}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Active alerts of a favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"type": "object"
							}
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-favorite-coordinates/{location}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Coordinates of a favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					},
					{
						"name": "location",
						"in": "path",
						"required": true,
						"type": "string",
						"description": "Location"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.CoordinateReport"
						}
					},
					"400": {
						"description": "Location not found",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites-current-weather": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Refresh every favorite and return its temperature",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "Result or failure payload per location",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites-historical": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Historical weather of every favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "Result or failure payload per location",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites-forecast": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Forecast of tomorrow for every favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "Result or failure payload per location",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites-alerts": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Active alerts of every favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "Result or failure payload per location",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		},
		"/get-all-favorites-coordinates": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"weather"
				],
				"summary": "Coordinates of every favorite",
				"parameters": [
					{
						"name": "X-User-Id",
						"in": "header",
						"required": true,
						"type": "string",
						"description": "User id returned by login"
					}
				],
				"responses": {
					"200": {
						"description": "Result or failure payload per location",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					},
					"404": {
						"description": "No favorites",
						"schema": {
							"$ref": "#/definitions/model.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"model.CredentialsDTO": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			},
			"required": [
				"username",
				"password"
			]
		},
		"model.UsernameDTO": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				}
			},
			"required": [
				"username"
			]
		},
		"model.AddFavoriteDTO": {
			"type": "object",
			"properties": {
				"location": {
					"type": "string"
				},
				"temperature": {
					"type": "number"
				},
				"wind_speed": {
					"type": "number"
				},
				"precipitation": {
					"type": "number"
				},
				"humidity": {
					"type": "integer"
				}
			},
			"required": [
				"location"
			]
		},
		"model.LoginResult": {
			"type": "object",
			"properties": {
				"success": {
					"type": "boolean"
				},
				"message": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				}
			}
		},
		"model.StatusResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"username": {
					"type": "string"
				},
				"location": {
					"type": "string"
				},
				"user_id": {
					"type": "string"
				}
			}
		},
		"model.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"model.Failure": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"model.WeatherRecord": {
			"type": "object",
			"properties": {
				"temperature": {
					"type": "number"
				},
				"wind_speed": {
					"type": "number"
				},
				"precipitation": {
					"type": "number"
				},
				"humidity": {
					"type": "integer"
				}
			}
		},
		"model.HistoricalReport": {
			"type": "object",
			"additionalProperties": {
				"$ref": "#/definitions/model.WeatherRecord"
			}
		},
		"model.ForecastReport": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"max_temperature": {
					"type": "number"
				},
				"min_temperature": {
					"type": "number"
				}
			}
		},
		"model.CoordinateReport": {
			"type": "object",
			"properties": {
				"latitude": {
					"type": "number"
				},
				"longitude": {
					"type": "number"
				}
			}
		},
		"model.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string"
				},
				"components": {
					"type": "object",
					"additionalProperties": {
						"type": "object",
						"properties": {
							"status": {
								"type": "string"
							},
							"details": {
								"type": "object",
								"additionalProperties": {
									"type": "string"
								}
							}
						}
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Weather Favorites API",
	Description:      "Accounts, per-user favorite locations and weather lookups backed by WeatherAPI.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
