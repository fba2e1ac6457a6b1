// Package docs registra la definición OpenAPI servida en /swagger/*.
// Se mantiene a mano junto con las anotaciones de los handlers.
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
        "/api/users": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Registrar usuario",
                "parameters": [
                    {"description": "Dueño o paseador", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/users.registerUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "409": {"description": "username or email taken", "schema": {"type": "string"}}
                }
            }
        },
        "/api/dogs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Listar perros con su dueño",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dogs.dogListingResponse"}}},
                    "503": {"description": "service unavailable", "schema": {"type": "string"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Registrar perro",
                "parameters": [
                    {"description": "Perro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dogs.createDogRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dogs.dogResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "404": {"description": "owner not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/dogs/{dogID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dogs"],
                "summary": "Obtener perro",
                "parameters": [
                    {"type": "integer", "description": "ID del perro", "name": "dogID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dogs.dogResponse"}},
                    "404": {"description": "dog not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkrequests": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["walkrequests"],
                "summary": "Crear pedido de paseo",
                "parameters": [
                    {"description": "requested_time en RFC3339", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/walks.createRequestRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/walks.requestResponse"}},
                    "400": {"description": "invalid input", "schema": {"type": "string"}},
                    "404": {"description": "dog not found", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkrequests/open": {
            "get": {
                "description": "Solo pedidos con status open, con el nombre del perro y el username del dueño.",
                "produces": ["application/json"],
                "tags": ["walkrequests"],
                "summary": "Pedidos de paseo abiertos",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/walks.openRequestResponse"}}},
                    "503": {"description": "service unavailable", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkrequests/{requestID}/applications": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["walkrequests"],
                "summary": "Postularse a un pedido",
                "parameters": [
                    {"type": "integer", "description": "ID del pedido", "name": "requestID", "in": "path", "required": true},
                    {"description": "Paseador que se postula", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/walks.applyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/walks.applicationResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "request not open / already applied", "schema": {"type": "string"}}
                }
            }
        },
        "/api/applications/{applicationID}/accept": {
            "post": {
                "description": "Acepta la postulación, rechaza las demás pending y pasa el pedido a accepted.",
                "produces": ["application/json"],
                "tags": ["applications"],
                "summary": "Aceptar postulación",
                "parameters": [
                    {"type": "integer", "description": "ID de la postulación", "name": "applicationID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/walks.applicationResponse"}},
                    "404": {"description": "not found", "schema": {"type": "string"}},
                    "409": {"description": "request already accepted", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkrequests/{requestID}/complete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["walkrequests"],
                "summary": "Marcar paseo como completado",
                "parameters": [
                    {"type": "integer", "description": "ID del pedido", "name": "requestID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/walks.requestResponse"}},
                    "409": {"description": "request not accepted / walk not finished", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkrequests/{requestID}/rating": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["walkrequests"],
                "summary": "Calificar paseo",
                "parameters": [
                    {"type": "integer", "description": "ID del pedido", "name": "requestID", "in": "path", "required": true},
                    {"description": "rating entre 1 y 5", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/walks.rateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/walks.ratingResponse"}},
                    "400": {"description": "rating out of range", "schema": {"type": "string"}},
                    "409": {"description": "request not completed / already rated", "schema": {"type": "string"}}
                }
            }
        },
        "/api/walkers/summary": {
            "get": {
                "description": "average_rating es null cuando el paseador no tiene calificaciones.",
                "produces": ["application/json"],
                "tags": ["walkers"],
                "summary": "Resumen de reputación por paseador",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/reputation.summaryResponse"}}},
                    "503": {"description": "service unavailable", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "users.registerUserRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role": {"type": "string", "enum": ["owner", "walker"]}
            }
        },
        "users.userResponse": {
            "type": "object",
            "properties": {
                "user_id": {"type": "integer"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dogs.dogListingResponse": {
            "type": "object",
            "properties": {
                "dog_name": {"type": "string"},
                "size": {"type": "string"},
                "owner_username": {"type": "string"}
            }
        },
        "dogs.createDogRequest": {
            "type": "object",
            "properties": {
                "owner_id": {"type": "integer"},
                "name": {"type": "string"},
                "size": {"type": "string", "enum": ["small", "medium", "large"]}
            }
        },
        "dogs.dogResponse": {
            "type": "object",
            "properties": {
                "dog_id": {"type": "integer"},
                "owner_id": {"type": "integer"},
                "name": {"type": "string"},
                "size": {"type": "string"}
            }
        },
        "walks.createRequestRequest": {
            "type": "object",
            "properties": {
                "dog_id": {"type": "integer"},
                "requested_time": {"type": "string"},
                "duration_minutes": {"type": "integer", "minimum": 1, "maximum": 1440},
                "location": {"type": "string"}
            }
        },
        "walks.requestResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "integer"},
                "dog_id": {"type": "integer"},
                "requested_time": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "location": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "walks.openRequestResponse": {
            "type": "object",
            "properties": {
                "request_id": {"type": "integer"},
                "dog_name": {"type": "string"},
                "requested_time": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "location": {"type": "string"},
                "owner_username": {"type": "string"}
            }
        },
        "walks.applyRequest": {
            "type": "object",
            "properties": {
                "walker_id": {"type": "integer"}
            }
        },
        "walks.applicationResponse": {
            "type": "object",
            "properties": {
                "application_id": {"type": "integer"},
                "request_id": {"type": "integer"},
                "walker_id": {"type": "integer"},
                "status": {"type": "string"}
            }
        },
        "walks.rateRequest": {
            "type": "object",
            "properties": {
                "rating": {"type": "integer"},
                "comment": {"type": "string"}
            }
        },
        "walks.ratingResponse": {
            "type": "object",
            "properties": {
                "rating_id": {"type": "integer"},
                "application_id": {"type": "integer"},
                "rating": {"type": "integer"},
                "comment": {"type": "string"}
            }
        },
        "reputation.summaryResponse": {
            "type": "object",
            "properties": {
                "walker_username": {"type": "string"},
                "total_ratings": {"type": "integer"},
                "average_rating": {"type": "number", "x-nullable": true},
                "completed_walks": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Dog Walk Service API",
	Description:      "Matching de paseos de perros y reputación de paseadores.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
