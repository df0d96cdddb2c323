// Package docs registers the OpenAPI description of the JSON API with swag.
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
        "/api/forecast": {
            "get": {
                "description": "Look the city up on OpenWeatherMap and return one entry per day, temperatures in Celsius",
                "produces": ["application/json"],
                "tags": ["forecast"],
                "summary": "Get the five day forecast of a city",
                "parameters": [
                    {
                        "type": "string",
                        "description": "City name, optionally with a country code (e.g. London,GB)",
                        "name": "city",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "City, country and one entry per day",
                        "schema": {"$ref": "#/definitions/entity.Forecast"}
                    },
                    "400": {
                        "description": "City is missing or blank",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "404": {
                        "description": "City not found",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    },
                    "429": {
                        "description": "Too many searches",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report whether the weather provider and the search rate limiter are reachable",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "Every component is up",
                        "schema": {"$ref": "#/definitions/model.HealthResponse"}
                    },
                    "503": {
                        "description": "At least one component is down",
                        "schema": {"$ref": "#/definitions/model.HealthResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "entity.Forecast": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "country": {"type": "string"},
                "forecasts": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/entity.ForecastEntry"}
                }
            }
        },
        "entity.ForecastEntry": {
            "type": "object",
            "properties": {
                "sequenceIndex": {"type": "integer"},
                "label": {"type": "string"},
                "temperatureCelsius": {"type": "integer"},
                "description": {"type": "string"},
                "iconReference": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "status": {"$ref": "#/definitions/model.HealthStatus"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"$ref": "#/definitions/model.HealthStatus"},
                "provider": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "rateLimiter": {"$ref": "#/definitions/model.ComponentHealthStatus"}
            }
        },
        "model.HealthStatus": {
            "type": "string",
            "enum": ["UP", "DOWN", "UNKNOWN"]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Weather Finder API",
	Description:      "Five day forecast lookup backed by OpenWeatherMap.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
