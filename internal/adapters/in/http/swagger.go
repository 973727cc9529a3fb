package http

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "basePath": "{{.BasePath}}",
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/api/orders": {
            "post": {
                "summary": "Place an order",
                "parameters": [
                    {"name": "order", "in": "body", "required": true, "schema": {"$ref": "#/definitions/NewOrder"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Order"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "get": {
                "summary": "List orders",
                "parameters": [
                    {"name": "page", "in": "query", "type": "integer", "default": 0},
                    {"name": "size", "in": "query", "type": "integer", "default": 10, "maximum": 100},
                    {"name": "sortBy", "in": "query", "type": "string", "default": "createdAt"},
                    {"name": "sortDirection", "in": "query", "type": "string", "enum": ["ASC", "DESC"], "default": "DESC"},
                    {"name": "status", "in": "query", "type": "string", "enum": ["PENDING", "PROCESSING", "PROCESSED"]},
                    {"name": "customerName", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderPage"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders/{id}": {
            "get": {
                "summary": "Get an order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/orders/{id}/status": {
            "get": {
                "summary": "Get the status of an order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OrderStatus"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "put": {
                "summary": "Override the status of an order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"},
                    {"name": "status", "in": "query", "required": true, "type": "string", "enum": ["PENDING", "PROCESSING", "PROCESSED"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Order"}},
                    "400": {"description": "Invalid status", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/queue": {
            "get": {
                "summary": "Queue depth and capacity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/QueueStatus"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "NewOrderItem": {
            "type": "object",
            "required": ["name", "quantity", "price"],
            "properties": {
                "name": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1},
                "price": {"type": "number"}
            }
        },
        "NewOrder": {
            "type": "object",
            "required": ["customerName", "items", "totalAmount"],
            "properties": {
                "customerName": {"type": "string", "minLength": 2, "maxLength": 100},
                "items": {"type": "array", "minItems": 1, "items": {"$ref": "#/definitions/NewOrderItem"}},
                "totalAmount": {"type": "number"}
            }
        },
        "OrderItem": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "number"}
            }
        },
        "Order": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "customerName": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/OrderItem"}},
                "totalAmount": {"type": "number"},
                "orderTime": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["PENDING", "PROCESSING", "PROCESSED"]},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "OrderPage": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/Order"}},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "totalElements": {"type": "integer", "format": "int64"},
                "totalPages": {"type": "integer"}
            }
        },
        "OrderStatus": {
            "type": "object",
            "properties": {
                "orderId": {"type": "integer", "format": "int64"},
                "status": {"type": "string", "enum": ["PENDING", "PROCESSING", "PROCESSED"]},
                "timestamp": {"type": "integer", "format": "int64"}
            }
        },
        "QueueStatus": {
            "type": "object",
            "properties": {
                "size": {"type": "integer"},
                "capacity": {"type": "integer"},
                "remaining": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo describes the order API served under /swagger/.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/",
	Title:            "Food Delivery Order API",
	Description:      "Places orders, tracks their processing status and reports the queue.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
