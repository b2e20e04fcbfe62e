package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/varela/foro-api/internal/api/handlers"
	"github.com/varela/foro-api/internal/api/middleware"
	"github.com/varela/foro-api/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Authenticate(services.Auth))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	topicHandler := handlers.NewTopicHandler(services.Topic)

	// Public routes: login and user registration
	r.Post("/login", authHandler.Login)
	r.Post("/usuario", userHandler.Create)

	// Everything else requires an authenticated principal
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		// Method routes rather than a subrouter: POST /usuario is public
		// and already registered above.
		r.Get("/usuario", userHandler.List)
		r.Get("/usuario/{id}", userHandler.Get)
		r.Put("/usuario/{id}", userHandler.Update)
		r.Delete("/usuario/{id}", userHandler.Delete)

		r.Route("/topico", func(r chi.Router) {
			r.Post("/", topicHandler.Create)
			r.Get("/", topicHandler.List)
			r.Get("/{id}", topicHandler.Get)
			r.Put("/{id}", topicHandler.Update)
			r.Delete("/{id}", topicHandler.Delete)
		})
	})

	return r
}
