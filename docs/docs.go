// Package docs holds the Swagger document served under /docs/. It follows the
// swag layout but is maintained by hand alongside the handler annotations.
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
        "/auth/callback": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Google"],
                "summary": "Exchange the Google authorization code for a session credential",
                "parameters": [
                    {"type": "string", "description": "Authorization code", "name": "code", "in": "query", "required": true},
                    {"type": "string", "description": "State issued by /auth/init", "name": "state", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.GatewayPayload"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.GatewayPayload"}}
                }
            }
        },
        "/auth/init": {
            "get": {
                "tags": ["Google"],
                "summary": "Start the Google Drive consent flow",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/drive/upload": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Google"],
                "summary": "Relay a file to the session user's Google Drive",
                "parameters": [
                    {"type": "file", "description": "File to upload", "name": "file", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.GatewayPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.GatewayPayload"}}
                }
            }
        },
        "/gallery": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "List gallery items, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/serializers.GalleryItemResponse"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Add a photo to the gallery by URL or by a presigned upload key",
                "parameters": [
                    {"description": "Gallery item", "name": "item", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GalleryInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/serializers.GalleryItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/gallery/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Retrieve a gallery item",
                "parameters": [
                    {"type": "string", "description": "Gallery item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GalleryItemResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Replace a gallery item",
                "parameters": [
                    {"type": "string", "description": "Gallery item id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GalleryInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GalleryItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Update some fields of a gallery item",
                "parameters": [
                    {"type": "string", "description": "Gallery item id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GalleryInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GalleryItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Delete a gallery item",
                "parameters": [
                    {"type": "string", "description": "Gallery item id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/gallery/presign": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Get a presigned URL to upload a photo straight to object storage",
                "parameters": [
                    {"description": "File description", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.PresignInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.presignResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/gallery/upload": {
            "post": {
                "description": "Stages the file, stores it in the configured backend (Drive or R2) and records the gallery item.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Gallery"],
                "summary": "Upload a photo and add it to the gallery",
                "parameters": [
                    {"type": "file", "description": "Photo", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Caption", "name": "caption", "in": "formData"},
                    {"type": "string", "description": "Guest id", "name": "guest_id", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/serializers.GalleryItemResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/gifts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "List gifts, alphabetically",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/serializers.GiftResponse"}}}
                }
            }
        },
        "/gifts/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "Retrieve a gift",
                "parameters": [
                    {"type": "string", "description": "Gift id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GiftResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "Replace a gift",
                "parameters": [
                    {"type": "string", "description": "Gift id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GiftInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GiftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "Update some fields of a gift",
                "parameters": [
                    {"type": "string", "description": "Gift id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GiftInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GiftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "Delete a gift",
                "parameters": [
                    {"type": "string", "description": "Gift id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/gifts/{id}/reserve": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Gifts"],
                "summary": "Reserve a gift for a guest",
                "parameters": [
                    {"type": "string", "description": "Gift id", "name": "id", "in": "path", "required": true},
                    {"description": "Reserving guest", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GiftReserveInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GiftResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/guests": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "List guests",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/serializers.GuestResponse"}}}
                }
            }
        },
        "/guests/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "Retrieve a guest",
                "parameters": [
                    {"type": "string", "description": "Guest id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GuestResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "Replace a guest",
                "parameters": [
                    {"type": "string", "description": "Guest id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GuestInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GuestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "Update some fields of a guest",
                "parameters": [
                    {"type": "string", "description": "Guest id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GuestInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.GuestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "Delete a guest",
                "parameters": [
                    {"type": "string", "description": "Guest id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/guests/rsvp": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Guests"],
                "summary": "Create a guest (RSVP)",
                "parameters": [
                    {"description": "Guest", "name": "guest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.GuestInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/serializers.GuestResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Obtain a staff access/refresh token pair",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.tokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/token/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Exchange a refresh token for a new access token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handlers.tokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "/uploads": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Google"],
                "summary": "List files relayed to Drive",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.UploadedFile"}}}
                }
            }
        },
        "/wishes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Wishes"],
                "summary": "Leave a wish for the couple",
                "parameters": [
                    {"description": "Wish", "name": "wish", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.WishInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/serializers.WishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.presignResponse": {
            "type": "object",
            "properties": {
                "expires_in": {"type": "integer"},
                "image_url": {"type": "string"},
                "key": {"type": "string"},
                "upload_url": {"type": "string"}
            }
        },
        "/wishes/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Wishes"],
                "summary": "Retrieve a wish",
                "parameters": [
                    {"type": "string", "description": "Wish id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.WishResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Wishes"],
                "summary": "Replace a wish",
                "parameters": [
                    {"type": "string", "description": "Wish id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.WishInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.WishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Wishes"],
                "summary": "Update some fields of a wish",
                "parameters": [
                    {"type": "string", "description": "Wish id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/serializers.WishInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/serializers.WishResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Wishes"],
                "summary": "Delete a wish",
                "parameters": [
                    {"type": "string", "description": "Wish id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/utils.ErrorPayload"}}
                }
            }
        },
        "handlers.tokenPair": {
            "type": "object",
            "properties": {
                "access": {"type": "string"},
                "refresh": {"type": "string"}
            }
        },
        "models.UploadedFile": {
            "type": "object",
            "properties": {
                "drive_id": {"type": "string"},
                "drive_link": {"type": "string"},
                "filename": {"type": "string"},
                "id": {"type": "integer"},
                "uploaded_at": {"type": "string"}
            }
        },
        "serializers.GalleryInput": {
            "type": "object",
            "properties": {
                "caption": {"type": "string"},
                "guest_id": {"type": "string"},
                "image": {"type": "string"},
                "upload_key": {"type": "string"}
            }
        },
        "serializers.GalleryItemResponse": {
            "type": "object",
            "properties": {
                "caption": {"type": "string"},
                "guest": {"$ref": "#/definitions/serializers.GuestResponse"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "uploaded_at": {"type": "string"}
            }
        },
        "serializers.GiftInput": {
            "type": "object",
            "properties": {
                "image": {"type": "string"},
                "link": {"type": "string"},
                "price": {"type": "number"},
                "title": {"type": "string"}
            }
        },
        "serializers.GiftReserveInput": {
            "type": "object",
            "properties": {
                "guest_id": {"type": "string"}
            }
        },
        "serializers.GiftResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "link": {"type": "string"},
                "price": {"type": "number"},
                "reserved": {"type": "boolean"},
                "reserved_by": {"$ref": "#/definitions/serializers.GuestResponse"},
                "title": {"type": "string"}
            }
        },
        "serializers.GuestInput": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "meal_preference": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "rsvp_status": {"type": "boolean"}
            }
        },
        "serializers.GuestResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "meal_preference": {"type": "string"},
                "name": {"type": "string"},
                "phone": {"type": "string"},
                "rsvp_status": {"type": "boolean"}
            }
        },
        "serializers.PresignInput": {
            "type": "object",
            "properties": {
                "content_type": {"type": "string"},
                "filename": {"type": "string"}
            }
        },
        "serializers.WishInput": {
            "type": "object",
            "properties": {
                "guest_id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "serializers.WishResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "guest": {"$ref": "#/definitions/serializers.GuestResponse"},
                "id": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "utils.ErrorPayload": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "utils.GatewayPayload": {
            "type": "object",
            "properties": {
                "details": {},
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wedding API",
	Description:      "Guests, RSVPs, gift reservations, wishes and the photo gallery, with a Google Drive upload relay.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
