// Package docs registers the generated OpenAPI document served by
// gin-swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/work": {
            "get": {
                "produces": ["application/json"],
                "tags": ["work"],
                "summary": "List income entries",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "page_size", "in": "query"}
                ],
                "responses": {"200": {"description": "Paginated entries"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["work"],
                "summary": "Record income",
                "responses": {
                    "201": {"description": "Entry created"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/work/weeks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["work"],
                "summary": "Week buckets",
                "parameters": [
                    {"type": "string", "name": "month", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Week buckets"},
                    "400": {"description": "Invalid month key"}
                }
            }
        },
        "/work/{id}": {
            "delete": {
                "tags": ["work"],
                "summary": "Delete income entry",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Entry not found"}
                }
            }
        },
        "/subscriptions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "List subscriptions",
                "responses": {"200": {"description": "Subscriptions"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Create subscription",
                "responses": {
                    "201": {"description": "Subscription created"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/subscriptions/top": {
            "get": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Top subscriptions",
                "parameters": [
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "Ranked subscriptions"}}
            }
        },
        "/subscriptions/{id}": {
            "delete": {
                "tags": ["subscriptions"],
                "summary": "Delete subscription",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Subscription not found"}
                }
            }
        },
        "/subscriptions/{id}/toggle": {
            "post": {
                "produces": ["application/json"],
                "tags": ["subscriptions"],
                "summary": "Toggle subscription",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated subscription"},
                    "404": {"description": "Subscription not found"}
                }
            }
        },
        "/groups": {
            "get": {
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "List groups",
                "responses": {"200": {"description": "Groups"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Create group",
                "responses": {
                    "201": {"description": "Group created"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/groups/{id}": {
            "delete": {
                "tags": ["groups"],
                "summary": "Delete group",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "404": {"description": "Group not found"}
                }
            }
        },
        "/groups/{id}/apply": {
            "post": {
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Apply group",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Applied group"},
                    "404": {"description": "Group not found"}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Get settings",
                "responses": {"200": {"description": "Settings"}}
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Update settings",
                "responses": {
                    "200": {"description": "Updated settings"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/settings/active-group": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["groups"],
                "summary": "Set active group",
                "responses": {
                    "200": {"description": "Updated settings"},
                    "404": {"description": "Group not found"}
                }
            }
        },
        "/rollup": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rollup"],
                "summary": "Monthly rollup",
                "parameters": [
                    {"type": "string", "name": "month", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Rollup"},
                    "400": {"description": "Invalid month key"}
                }
            }
        },
        "/rollup/trend": {
            "get": {
                "produces": ["application/json"],
                "tags": ["rollup"],
                "summary": "Rollup trend",
                "parameters": [
                    {"type": "string", "name": "month", "in": "query"},
                    {"type": "integer", "name": "months", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Trend points"},
                    "400": {"description": "Invalid input"}
                }
            }
        },
        "/reports": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "List reports",
                "responses": {"200": {"description": "Paginated history"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Create report",
                "responses": {
                    "201": {"description": "Report entry"},
                    "400": {"description": "Invalid month key"}
                }
            },
            "delete": {
                "tags": ["reports"],
                "summary": "Clear report history",
                "responses": {"204": {"description": "Cleared"}}
            }
        },
        "/reports/{id}/payload": {
            "get": {
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Report payload",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Renderer payload"},
                    "404": {"description": "Report not found"}
                }
            }
        },
        "/state/export": {
            "get": {
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Export state",
                "responses": {"200": {"description": "Full state"}}
            }
        },
        "/state/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Import state",
                "responses": {
                    "200": {"description": "Imported state and corrections"},
                    "400": {"description": "Unreadable body"}
                }
            }
        },
        "/state/reset": {
            "post": {
                "tags": ["state"],
                "summary": "Reset state",
                "responses": {"204": {"description": "Reset"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "SpendWise API",
	Description:      "SpendWise tracks irregular work income, subscription expenses, and a savings target, and derives monthly financial rollups for dashboards and reports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
