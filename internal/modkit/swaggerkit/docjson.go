// Package swaggerkit provides OpenAPI swagger UI integration for HTTP services
package swaggerkit

import "net/http"

// docReader returns the served OpenAPI document.
// Hand-kept rather than generated; the surface is small and read only.
var docReader = func() string {
	return `{
  "openapi": "3.0.3",
  "info": {"title": "Sensutv", "version": "0.1.0"},
  "paths": {
    "/healthz": {"get": {"summary": "Liveness probe", "responses": {"200": {"description": "ok"}}}},
    "/meta/health": {"get": {"summary": "Health envelope", "responses": {"200": {"description": "ok"}}}},
    "/meta/ready": {"get": {"summary": "Readiness incl. record store ping", "responses": {"200": {"description": "ok"}}}},
    "/meta/version": {"get": {"summary": "Build metadata", "responses": {"200": {"description": "ok"}}}},
    "/meta/service": {"get": {"summary": "Service info and mounted modules", "responses": {"200": {"description": "ok"}}}},
    "/api/models": {"get": {"summary": "Registered model profiles", "responses": {"200": {"description": "ok"}}}},
    "/api/uploads": {"get": {"summary": "Upload records, oldest first", "responses": {"200": {"description": "ok"}}}},
    "/feed": {"get": {"summary": "Recent uploads, newest first", "parameters": [{"name": "tier", "in": "query", "schema": {"type": "string"}}], "responses": {"200": {"description": "ok"}}}},
    "/premium": {"get": {"summary": "Payment link redirect data", "responses": {"200": {"description": "ok"}, "400": {"description": "pay link not configured"}}}}
  }
}`
}

// serveDocJSON serves the document so the UI can load without a generator
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docReader()))
	}
}
