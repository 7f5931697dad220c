package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/santoshmanaguli/finpay-dashboard/internal/handlers"
)

// New wires the router. CORS is restricted to the configured browser
// origins; TLS termination happens ahead of this process.
func New(h *handlers.Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/users/{id}", h.GetUser)
		r.Get("/users/{id}/cards", h.ListUserCards)
		r.Get("/users/{id}/rewards", h.ListUserRewards)
		r.Get("/cards/{id}/transactions", h.ListCardTransactions)
		r.Get("/transactions/{id}", h.GetTransaction)
	})

	return r
}
