package router

import (
	"net/http"

	"moviles/internal/handler"
	"moviles/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(productoHandler *handler.ProductoHandler, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Applied in order: Recovery -> RequestID -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	r.Use(chimw.StripSlashes)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api/productos", func(r chi.Router) {
		r.Get("/", productoHandler.List)
		r.Post("/", productoHandler.Create)
		r.Get("/{id}", productoHandler.Get)
		r.Put("/{id}", productoHandler.Update)
		r.Delete("/{id}", productoHandler.Delete)
	})

	return r
}
