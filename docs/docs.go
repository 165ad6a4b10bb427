// Package docs registers the Swagger document of the widget API served at /swagger/*.
// Keep it in sync with the controller annotations.
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
        "/": {
            "get": {
                "description": "Full HTML page of the session's widget. A city parameter searches it first, like pressing Enter in the search box.",
                "produces": ["text/html"],
                "tags": ["widget"],
                "summary": "Widget page",
                "parameters": [
                    {"type": "string", "description": "City to search", "name": "city", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "HTML page", "schema": {"type": "string"}}
                }
            }
        },
        "/api/panels": {
            "get": {
                "description": "HTML fragments of every page element keyed by element id",
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Rendered panels",
                "responses": {
                    "200": {"description": "Panels by element id", "schema": {"type": "object", "additionalProperties": {"type": "object"}}}
                }
            }
        },
        "/api/recent": {
            "get": {
                "description": "Most recent first; the entry equal to the current city is active",
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Recent searches",
                "responses": {
                    "200": {"description": "Recent searches", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.RecentSearchDTO"}}}
                }
            }
        },
        "/api/recent/select": {
            "post": {
                "description": "Searches a city from the recent list",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Select a recent search",
                "parameters": [
                    {"description": "Chosen city", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SelectCityDTO"}}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/entity.WidgetState"}},
                    "400": {"description": "Invalid request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Weather API failure", "schema": {"$ref": "#/definitions/model.ErrorStateDTO"}}
                }
            }
        },
        "/api/state": {
            "get": {
                "description": "Snapshot of the session's widget state",
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Widget state",
                "responses": {
                    "200": {"description": "Current state", "schema": {"$ref": "#/definitions/entity.WidgetState"}}
                }
            }
        },
        "/api/suggestions": {
            "get": {
                "description": "Autocomplete for the typed query. Queries shorter than two characters hide the list.",
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "City suggestions",
                "parameters": [
                    {"type": "string", "description": "Typed query", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Suggestions", "schema": {"$ref": "#/definitions/model.SuggestionsDTO"}},
                    "409": {"description": "Superseded by a newer query", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "description": "Closes the suggestion dropdown (blur, click outside)",
                "tags": ["widget"],
                "summary": "Hide suggestions",
                "responses": {
                    "204": {"description": "Hidden"}
                }
            }
        },
        "/api/suggestions/select": {
            "post": {
                "description": "Hides the dropdown and searches the chosen city",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Select a suggestion",
                "parameters": [
                    {"description": "Chosen city", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.SelectCityDTO"}}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/entity.WidgetState"}},
                    "400": {"description": "Invalid request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Weather API failure", "schema": {"$ref": "#/definitions/model.ErrorStateDTO"}}
                }
            }
        },
        "/api/unit": {
            "put": {
                "description": "Switches between C and F and re-renders every panel",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Set temperature unit",
                "parameters": [
                    {"description": "Unit", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/model.UnitDTO"}}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/entity.WidgetState"}},
                    "400": {"description": "Unknown unit", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/weather": {
            "get": {
                "description": "Fetches the forecast for a city and makes it the active view",
                "produces": ["application/json"],
                "tags": ["widget"],
                "summary": "Search a city",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/entity.WidgetState"}},
                    "400": {"description": "City missing", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Superseded by a newer search", "schema": {"$ref": "#/definitions/model.ErrorStateDTO"}},
                    "502": {"description": "Weather API failure", "schema": {"$ref": "#/definitions/model.ErrorStateDTO"}}
                }
            }
        },
        "/api/weather/current": {
            "get": {
                "description": "Current conditions for a city. Does not change the widget state.",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Get current conditions",
                "parameters": [
                    {"type": "string", "description": "City name", "name": "city", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Current conditions", "schema": {"$ref": "#/definitions/entity.CurrentWeather"}},
                    "400": {"description": "City missing", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Weather API failure", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports the session store and search event queue status",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "All components healthy", "schema": {"$ref": "#/definitions/model.HealthResponse"}},
                    "503": {"description": "A component is down", "schema": {"$ref": "#/definitions/model.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entity.Condition": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "icon": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "entity.CurrentConditions": {
            "type": "object",
            "properties": {
                "condition": {"$ref": "#/definitions/entity.Condition"},
                "feelsLikeC": {"type": "number"},
                "humidity": {"type": "integer"},
                "isDay": {"type": "boolean"},
                "lastUpdated": {"type": "string"},
                "temperatureC": {"type": "number"},
                "ultraViolet": {"type": "number"},
                "windKph": {"type": "number"}
            }
        },
        "entity.CurrentWeather": {
            "type": "object",
            "properties": {
                "current": {"$ref": "#/definitions/entity.CurrentConditions"},
                "location": {"$ref": "#/definitions/entity.Location"}
            }
        },
        "entity.ForecastDay": {
            "type": "object",
            "properties": {
                "condition": {"$ref": "#/definitions/entity.Condition"},
                "date": {"type": "string"},
                "maxTempC": {"type": "number"},
                "minTempC": {"type": "number"}
            }
        },
        "entity.Location": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "lat": {"type": "number"},
                "localTime": {"type": "string"},
                "lon": {"type": "number"},
                "name": {"type": "string"},
                "region": {"type": "string"},
                "timeZone": {"type": "string"}
            }
        },
        "entity.Suggestion": {
            "type": "object",
            "properties": {
                "country": {"type": "string"},
                "name": {"type": "string"},
                "region": {"type": "string"}
            }
        },
        "entity.WeatherView": {
            "type": "object",
            "properties": {
                "current": {"$ref": "#/definitions/entity.CurrentConditions"},
                "days": {"type": "array", "items": {"$ref": "#/definitions/entity.ForecastDay"}},
                "location": {"$ref": "#/definitions/entity.Location"}
            }
        },
        "entity.WidgetState": {
            "type": "object",
            "properties": {
                "activeView": {"$ref": "#/definitions/entity.WeatherView"},
                "currentCity": {"type": "string"},
                "lastError": {"type": "string"},
                "loading": {"type": "boolean"},
                "recentSearches": {"type": "array", "items": {"type": "string"}},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/entity.Suggestion"}},
                "suggestionsVisible": {"type": "boolean"},
                "unit": {"type": "string"}
            }
        },
        "model.ComponentHealthStatus": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "status": {"type": "string"}
            }
        },
        "model.ErrorStateDTO": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "state": {"$ref": "#/definitions/entity.WidgetState"}
            }
        },
        "model.HealthResponse": {
            "type": "object",
            "properties": {
                "events": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "sessionStore": {"$ref": "#/definitions/model.ComponentHealthStatus"},
                "status": {"type": "string"}
            }
        },
        "model.RecentSearchDTO": {
            "type": "object",
            "properties": {
                "active": {"type": "boolean"},
                "name": {"type": "string"}
            }
        },
        "model.SelectCityDTO": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string"}
            }
        },
        "model.SuggestionsDTO": {
            "type": "object",
            "properties": {
                "query": {"type": "string"},
                "suggestions": {"type": "array", "items": {"$ref": "#/definitions/entity.Suggestion"}},
                "visible": {"type": "boolean"}
            }
        },
        "model.UnitDTO": {
            "type": "object",
            "required": ["unit"],
            "properties": {
                "unit": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/weather-widget",
	Schemes:          []string{},
	Title:            "Weather Widget API",
	Description:      "Session scoped weather lookup widget backed by WeatherAPI.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
