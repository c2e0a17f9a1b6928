package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"dconn.dev/islands/internal/config"
	"dconn.dev/islands/internal/middleware"
	"dconn.dev/islands/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, islandService *services.IslandService, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))

	islandHandler := NewIslandHandler(islandService, cfg.Season, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/islands", islandHandler.Generate)
		r.Post("/islands/refresh", islandHandler.Refresh)
		r.Post("/islands/resize", islandHandler.Resize)
		r.Get("/islands/{session}", islandHandler.Current)
		r.Get("/seasons", islandHandler.Seasons)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Rendered layouts
	r.Get("/islands.{format}", islandHandler.Render)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html at root
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("encoding JSON", "err", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
