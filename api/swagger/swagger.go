package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Docket API",
        "description": "Supreme Court docket status derivation and conference reporting",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Admin authentication"},
        {"name": "Dockets", "description": "Per-docket status and event streams"},
        {"name": "Conferences", "description": "Conference reports and exports"},
        {"name": "Ingest", "description": "Docket ingestion"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Exchange admin credentials for an access token",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/dockets/{docket}": {
            "get": {
                "tags": ["Dockets"],
                "summary": "Derived status for one docket",
                "parameters": [
                    {"name": "docket", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Docket not found"}
                }
            }
        },
        "/dockets/{docket}/events": {
            "get": {
                "tags": ["Dockets"],
                "summary": "Tagged event stream for one docket",
                "parameters": [
                    {"name": "docket", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/dockets/{docket}/conference/{date}": {
            "get": {
                "tags": ["Dockets"],
                "summary": "Outcome of one conference for one docket",
                "parameters": [
                    {"name": "docket", "in": "path", "required": true, "type": "string"},
                    {"name": "date", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conferences/{date}": {
            "get": {
                "tags": ["Conferences"],
                "summary": "Resolve every docket against one conference date",
                "parameters": [
                    {"name": "date", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/conferences/{date}/export": {
            "get": {
                "tags": ["Conferences"],
                "summary": "Render a conference report to CSV or PDF",
                "parameters": [
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/terms/{term}/conferences": {
            "get": {
                "tags": ["Conferences"],
                "summary": "List the conference dates of a term",
                "parameters": [
                    {"name": "term", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{token}": {
            "get": {
                "tags": ["Conferences"],
                "summary": "Download a rendered conference report",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        },
        "/ingest": {
            "post": {
                "tags": ["Ingest"],
                "summary": "Queue a docket number range for ingestion",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/IngestRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Unauthorized"}
                },
                "security": [{"BearerAuth": []}]
            }
        },
        "/pipeline/run": {
            "post": {
                "tags": ["Pipelines"],
                "summary": "Run a batch report pipeline over the local docket mirror",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/PipelineRequest"}}
                ],
                "responses": {
                    "200": {"description": "Rendered report lines", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown stage or bad arguments"},
                    "401": {"description": "Unauthorized"}
                },
                "security": [{"BearerAuth": []}]
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["username", "password"]
        },
        "IngestRequest": {
            "type": "object",
            "properties": {
                "term": {"type": "integer"},
                "start": {"type": "integer"},
                "end": {"type": "integer"},
                "applications": {"type": "boolean"}
            },
            "required": ["start", "end"]
        },
        "PipelineRequest": {
            "type": "object",
            "properties": {
                "source": {"$ref": "#/definitions/PipelineStage"},
                "filters": {"type": "array", "items": {"$ref": "#/definitions/PipelineStage"}},
                "queries": {"type": "array", "items": {"$ref": "#/definitions/PipelineStage"}},
                "output": {"$ref": "#/definitions/PipelineStage"}
            }
        },
        "PipelineStage": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "args": {"type": "object"}
            }
        },
        "StatusResponse": {
            "type": "object",
            "properties": {
                "docket": {"type": "string"},
                "term": {"type": "integer"},
                "case_name": {"type": "string"},
                "case_type": {"type": "string"},
                "current_status": {"type": "string"},
                "flags": {"type": "object"},
                "distributions": {"type": "array", "items": {"type": "object"}}
            }
        },
        "ConferenceReportRow": {
            "type": "object",
            "properties": {
                "docket": {"type": "string"},
                "case_name": {"type": "string"},
                "case_type": {"type": "string"},
                "current_status": {"type": "string"},
                "action": {"type": "string"},
                "distribution_count": {"type": "integer"},
                "reschedule_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
