package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/signup", h.signup)
		r.Post("/auth/signin", h.signin)
	})

	// routes behind bearer-token authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users/me", h.me)
	})

	// hotel inquiry routes
	router.Group(func(r chi.Router) {
		r.Post("/submit", h.submit)
		r.Get("/records/{id}", h.record)
		r.Put("/update/{id}", h.update)
		r.Delete("/delete/{id}", h.remove)
	})

	return router
}
