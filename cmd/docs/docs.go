// Package docs holds the Swagger template served in non-production builds.
// It is maintained by hand alongside the handler annotations.
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
        "/bank-accounts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "List bank accounts with their live balances", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Create a bank account", "responses": {"201": {"description": "Created"}}}
        },
        "/bank-accounts/{bankAccountID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Get a bank account with its live balance", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Update a bank account", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Deactivate a bank account", "responses": {"204": {"description": "No Content"}}}
        },
        "/bank-accounts/{bankAccountID}/balance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Net balance of a bank account", "responses": {"200": {"description": "OK"}}}
        },
        "/bank-accounts/{bankAccountID}/transactions": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "List the ledger of a bank account", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Record a manual credit or debit", "responses": {"201": {"description": "Created"}}}
        },
        "/bank-transactions/{transactionID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["bank-accounts"], "summary": "Get a bank transaction", "responses": {"200": {"description": "OK"}}}
        },
        "/expense-categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "List expense categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Create an expense category", "responses": {"201": {"description": "Created"}}}
        },
        "/expense-categories/{categoryID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Get an expense category", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Rename an expense category", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Delete an expense category", "responses": {"204": {"description": "No Content"}}}
        },
        "/expense-sub-categories": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "List expense sub-categories", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Create an expense sub-category", "responses": {"201": {"description": "Created"}}}
        },
        "/expense-sub-categories/{subCategoryID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Get an expense sub-category", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expense-categories"], "summary": "Rename or move an expense sub-category", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List expenses", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Create an expense or payment request", "responses": {"201": {"description": "Created"}}}
        },
        "/expenses/approve": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Approve pending payment requests", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/paid": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Mark approved payment requests as paid", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/reject": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Reject pending payment requests", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/total": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Sum expense amounts", "responses": {"200": {"description": "OK"}}}
        },
        "/expenses/{expenseID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Get an expense", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Update an expense", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Delete an expense", "responses": {"204": {"description": "No Content"}}}
        },
        "/forecasts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "List forecasts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "Create a forecast or a fiscal-year group", "responses": {"201": {"description": "Created"}}}
        },
        "/forecasts/total": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "Sum forecast amounts", "responses": {"200": {"description": "OK"}}}
        },
        "/forecasts/{forecastID}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "Get a forecast", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "Update a forecast or its whole group", "responses": {"200": {"description": "OK"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["forecasts"], "summary": "Delete a forecast or its whole group", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "security": [{"BearerAuth": []}]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Expense Ledger API",
	Description:      "Company expenses, payment requests, forecasts and bank ledgers.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
