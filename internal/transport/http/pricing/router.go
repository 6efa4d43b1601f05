package pricing

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the pricing API routes.
func NewRouter(h *Handler, log *logrus.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	r.Get("/healthz", h.handleHealth)

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", h.handleListProducts)

		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", h.handleGetProduct)
			r.Get("/tier", h.handleResolveTier)
			r.Post("/validate", h.handleValidateConfiguration)
			r.Post("/quote", h.handleQuotePrice)
			r.Post("/tiers/generate", h.handleGenerateTiers)
		})
	})

	return r
}
