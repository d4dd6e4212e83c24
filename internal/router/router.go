package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"car-fleet-api/internal/config"
	"car-fleet-api/internal/handler"
	"car-fleet-api/internal/middleware"
)

type Handlers struct {
	Auth   *handler.AuthHandler
	Cars   *handler.CarHandler
	Stats  *handler.StatsHandler
	Health *handler.HealthHandler
}

func New(cfg *config.Config, authMiddleware *middleware.AuthMiddleware, handlers Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.Get("/health", handlers.Health.Check)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Post("/auth/register", handlers.Auth.Register)
		api.Post("/auth/login", handlers.Auth.Login)

		api.Get("/public/stats", handlers.Stats.Stats)

		api.Route("/cars", func(cars chi.Router) {
			cars.Use(authMiddleware.RequireAuth)
			cars.Get("/", handlers.Cars.List)
			cars.Post("/", handlers.Cars.Create)
			cars.Get("/{id}", handlers.Cars.Get)
			cars.Put("/{id}", handlers.Cars.Update)
			cars.Delete("/{id}", handlers.Cars.Delete)
		})
	})

	// The browser frontend.
	if cfg.WebRoot != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.WebRoot)))
	}

	return r
}
