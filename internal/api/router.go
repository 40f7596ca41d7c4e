package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mvachon/userd/internal/api/handlers"
	"github.com/mvachon/userd/internal/api/middleware"
	"github.com/mvachon/userd/internal/repository"
	"github.com/mvachon/userd/internal/service"
	"github.com/mvachon/userd/internal/session"
)

func NewRouter(services *service.Services, sessions *session.Manager, repos *repository.Repositories) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.Auth, services.User)

	r.Route("/users", func(r chi.Router) {
		r.Post("/auth", authHandler.Auth)
		r.Post("/logout", authHandler.Logout)
		r.Post("/", userHandler.Create)

		// Session-gated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(sessions, repos.User))
			r.Get("/list", userHandler.List)
		})

		r.Get("/{id}", userHandler.Get)
		r.Delete("/{id}", userHandler.Delete)
	})

	return r
}
