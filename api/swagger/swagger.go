package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Campus Admin API",
        "description": "Faculty lifecycle management for the campus administration system",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Faculties", "description": "Faculty directory management"},
        {"name": "Faculty Requests", "description": "Two-phase faculty approval workflow"},
        {"name": "Departments", "description": "Read-only department directory"}
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
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/api/v1/faculties": {
            "get": {
                "tags": ["Faculties"],
                "summary": "List faculty records",
                "parameters": [
                    {"name": "department", "in": "query", "type": "string", "description": "Exact department name"}
                ],
                "responses": {
                    "200": {"description": "List of faculty records", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Faculties"],
                "summary": "Create one faculty record",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateFacultyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created faculty", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing required fields"},
                    "404": {"description": "Unknown department"},
                    "409": {"description": "Employee code already exists"}
                }
            }
        },
        "/api/v1/faculties/bulk": {
            "post": {
                "tags": ["Faculties"],
                "summary": "Create faculty records in bulk",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/BulkCreateFacultyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Per-item report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "patch": {
                "tags": ["Faculties"],
                "summary": "Update faculty records in bulk",
                "responses": {
                    "200": {"description": "Per-item report", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/faculties/suggestions": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Suggest faculty matches for a partial name or employee code",
                "parameters": [
                    {"name": "q", "in": "query", "type": "string", "required": true},
                    {"name": "department", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Up to ten projected matches", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/faculties/{empCode}": {
            "get": {
                "tags": ["Faculties"],
                "summary": "Get one faculty record",
                "parameters": [
                    {"name": "empCode", "in": "path", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Faculty record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Faculty not found"}
                }
            },
            "patch": {
                "tags": ["Faculties"],
                "summary": "Partially update one faculty record",
                "parameters": [
                    {"name": "empCode", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateFacultyRequest"}}
                ],
                "responses": {
                    "200": {"description": "Changed field names", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Faculty or department not found"}
                }
            }
        },
        "/api/v1/faculties/{empCode}/subjects": {
            "post": {
                "tags": ["Faculties"],
                "summary": "Assign subject codes to a faculty member",
                "parameters": [
                    {"name": "empCode", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AssignSubjectsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Confirmation", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Empty subject list"},
                    "404": {"description": "Faculty not found"}
                }
            }
        },
        "/api/v1/faculty-requests": {
            "get": {
                "tags": ["Faculty Requests"],
                "summary": "List approval requests, newest first",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["pending", "approved", "rejected"]}
                ],
                "responses": {
                    "200": {"description": "Approval requests", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid status filter"}
                }
            },
            "post": {
                "tags": ["Faculty Requests"],
                "summary": "Submit a faculty approval request",
                "responses": {
                    "201": {"description": "Pending request", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/faculty-requests/{id}/process": {
            "post": {
                "tags": ["Faculty Requests"],
                "summary": "Approve or reject a pending request",
                "parameters": [
                    {"name": "id", "in": "path", "type": "string", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProcessApprovalRequest"}}
                ],
                "responses": {
                    "200": {"description": "Decision outcome", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing action or rejection reason"},
                    "404": {"description": "Request not found"},
                    "409": {"description": "Request already processed"}
                }
            }
        },
        "/api/v1/departments": {
            "get": {
                "tags": ["Departments"],
                "summary": "List departments",
                "responses": {
                    "200": {"description": "Departments", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateFacultyRequest": {
            "type": "object",
            "required": ["empCode", "name", "department"],
            "properties": {
                "empCode": {"type": "string"},
                "name": {"type": "string"},
                "department": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "BulkCreateFacultyRequest": {
            "type": "object",
            "properties": {
                "faculties": {"type": "array", "items": {"$ref": "#/definitions/CreateFacultyRequest"}}
            }
        },
        "UpdateFacultyRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "department": {"type": "string"}
            }
        },
        "AssignSubjectsRequest": {
            "type": "object",
            "required": ["subjects"],
            "properties": {
                "subjects": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ProcessApprovalRequest": {
            "type": "object",
            "required": ["action"],
            "properties": {
                "action": {"type": "string", "enum": ["approve", "reject"]},
                "reason": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
                "pagination": {"$ref": "#/definitions/Pagination"},
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
