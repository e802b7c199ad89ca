package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Account routes are served both at the root and
// under /api/user.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withTracing, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.MethodNotAllowed(methodNotAllowed(router))

	router.Get("/healthz", h.healthz)
	h.accountRoutes(router)
	router.Route("/api/user", h.accountRoutes)

	return router
}

func (h *Handler) accountRoutes(r chi.Router) {
	// routes without authorization
	r.Post("/register", h.register)
	r.Post("/login", h.login)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/{userID}/info", h.info)
	})
}
