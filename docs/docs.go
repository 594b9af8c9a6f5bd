// Package docs is the swagger document served at /swagger/index.html.
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
        "/forecast": {
            "get": {
                "description": "Geocode the city and return current, hourly (24 h) and daily conditions",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get the forecast for a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true},
                    {"type": "string", "description": "Country used to disambiguate the city", "name": "country", "in": "query"},
                    {"type": "integer", "default": 7, "description": "Forecast days (1-16)", "name": "days", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Forecast snapshot", "schema": {"$ref": "#/definitions/entity.WeatherSnapshot"}},
                    "400": {"description": "Missing city", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Report the status of the snapshot event transport",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Health status", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        },
        "/icon/{name}": {
            "get": {
                "description": "Render a weather icon identifier as a PNG",
                "produces": ["image/png"],
                "tags": ["icon"],
                "summary": "Weather icon",
                "parameters": [
                    {"type": "string", "description": "Icon identifier, optionally ending in .png", "name": "name", "in": "path", "required": true},
                    {"type": "integer", "default": 64, "description": "Edge length in pixels (16-256)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "PNG image"},
                    "400": {"description": "Invalid size", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Unknown icon", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/search": {
            "get": {
                "description": "Return up to ten places matching free text, in relevance order",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Search places",
                "parameters": [
                    {"type": "string", "description": "Search text", "name": "q", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Candidate places", "schema": {"type": "array", "items": {"$ref": "#/definitions/entity.Place"}}},
                    "400": {"description": "Empty query", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/weather": {
            "get": {
                "description": "Geocode the city and return its current conditions",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current weather for a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true},
                    {"type": "string", "description": "Country used to disambiguate the city", "name": "country", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Snapshot with current conditions", "schema": {"$ref": "#/definitions/entity.WeatherSnapshot"}},
                    "400": {"description": "Missing city", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "City not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        },
        "/weather/coordinates": {
            "get": {
                "description": "Return current conditions at a coordinate",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current weather for a coordinate",
                "parameters": [
                    {"type": "number", "description": "Latitude (-90..90)", "name": "lat", "in": "query", "required": true},
                    {"type": "number", "description": "Longitude (-180..180)", "name": "lon", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Snapshot with current conditions", "schema": {"$ref": "#/definitions/entity.WeatherSnapshot"}},
                    "400": {"description": "Invalid coordinate", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "502": {"description": "Upstream failure", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "entity.Coordinate": {
            "type": "object",
            "properties": {
                "latitude": {"type": "number"},
                "longitude": {"type": "number"}
            }
        },
        "entity.Place": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "country": {"type": "string"},
                "region": {"type": "string"},
                "timezone": {"type": "string"},
                "coordinate": {"$ref": "#/definitions/entity.Coordinate"}
            }
        },
        "entity.CurrentConditions": {
            "type": "object",
            "properties": {
                "temperature": {"type": "number"},
                "apparentTemperature": {"type": "number"},
                "humidity": {"type": "integer"},
                "windSpeed": {"type": "number"},
                "windDirection": {"type": "number"},
                "pressure": {"type": "number"},
                "precipitation": {"type": "number"},
                "cloudCover": {"type": "integer"},
                "weatherCode": {"type": "integer"},
                "isDay": {"type": "boolean"},
                "condition": {"type": "string"},
                "icon": {"type": "string"},
                "capturedAt": {"type": "string", "format": "date-time"}
            }
        },
        "entity.HourlyPoint": {
            "type": "object",
            "properties": {
                "time": {"type": "string", "format": "date-time"},
                "temperature": {"type": "number"},
                "precipitationProbability": {"type": "integer"},
                "weatherCode": {"type": "integer"},
                "icon": {"type": "string"}
            }
        },
        "entity.DailyPoint": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date-time"},
                "maxTemperature": {"type": "number"},
                "minTemperature": {"type": "number"},
                "precipitationSum": {"type": "number"},
                "weatherCode": {"type": "integer"},
                "condition": {"type": "string"},
                "icon": {"type": "string"},
                "sunrise": {"type": "string", "format": "date-time"},
                "sunset": {"type": "string", "format": "date-time"}
            }
        },
        "entity.WeatherSnapshot": {
            "type": "object",
            "properties": {
                "city": {"type": "string"},
                "country": {"type": "string"},
                "coordinate": {"$ref": "#/definitions/entity.Coordinate"},
                "timezone": {"type": "string"},
                "current": {"$ref": "#/definitions/entity.CurrentConditions"},
                "hourly": {"type": "array", "items": {"$ref": "#/definitions/entity.HourlyPoint"}},
                "daily": {"type": "array", "items": {"$ref": "#/definitions/entity.DailyPoint"}},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "events": {"type": "object"}
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
	Title:            "YourWeather API",
	Description:      "Open-Meteo backed current weather, forecasts, place search and weather icons.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
