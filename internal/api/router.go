package api

import (
	"hos-log-service/internal/api/handlers"
	"hos-log-service/internal/ports"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.TripRepository) http.Handler {
	mux := http.NewServeMux()

	tripHandler := &handlers.TripHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/trips", tripHandler.Plan)
	mux.HandleFunc("/trips/", tripHandler.Detail)

	return loggingMiddleware(mux)
}
