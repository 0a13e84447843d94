package rest

import (
	"net/http"

	"github.com/heartmarshall/result-tracker/internal/transport/middleware"
)

// NewRouter registers the API routes. callbackLimit wraps the screenshot
// callback, the one route the screenshot service calls without a token.
func NewRouter(results *ResultHandler, health *HealthHandler, callbackLimit middleware.Middleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("POST /results", results.Create)
	mux.HandleFunc("GET /results/{id}", results.Get)
	mux.HandleFunc("PATCH /results/{id}", results.Update)
	mux.HandleFunc("DELETE /results/{id}", results.Delete)
	mux.HandleFunc("GET /results/{id}/events", results.Events)
	mux.Handle("POST /results/{id}/screenshot", callbackLimit(http.HandlerFunc(results.ScreenshotCallback)))

	return mux
}
