package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the booking API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>sparkleclean-bookings — Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document for the public submission and admin endpoints.
// Admin routes take the shared secret via the `token` query parameter or the
// `x-admin-token` header.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "sparkleclean-bookings", "version": "v0.1.0" },
  "paths": {
    "/api/bookings": {
      "post": {
        "summary": "Submit a booking request",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","additionalProperties":true,"properties":{"type":{"type":"string"},"location":{"type":"string"}}}}}},
        "responses": { "200": { "description": "booking accepted, returns bookingId" }, "400": { "description": "unparseable body" } }
      }
    },
    "/api/admin/bookings": {
      "get": { "summary": "List all bookings (admin)", "parameters": [{"name":"token","in":"query","schema":{"type":"string"}}], "responses": { "200": { "description": "array of bookings" }, "401": { "description": "bad or missing token" } } }
    },
    "/api/admin/bookings/{id}": {
      "patch": { "summary": "Update booking status and notes (admin)", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"status":{"type":"string"},"notes":{"type":"string"}}}}}}, "responses": { "200": { "description": "updated booking" }, "404": { "description": "unknown id" } } },
      "delete": { "summary": "Delete a booking (admin)", "parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string"}}], "responses": { "200": { "description": "deleted" }, "404": { "description": "unknown id" } } }
    },
    "/api/admin/stats": {
      "get": { "summary": "Aggregate booking statistics (admin)", "responses": { "200": { "description": "totals, per-status/type/location counts, 10 newest" } } }
    },
    "/api/admin/backup": {
      "post": { "summary": "Upload a collection snapshot to object storage (admin)", "responses": { "200": { "description": "snapshot stored" }, "503": { "description": "backup storage not configured" } } }
    }
  }
}`
