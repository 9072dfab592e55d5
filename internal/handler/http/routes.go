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

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Post("/auth/refresh", h.refresh)

		r.Post("/auth/password/forgot", h.passwordForgot)
		r.Post("/auth/password/reset", h.passwordReset)

		r.Post("/auth/failed-login", h.failedLogin)

		r.Get("/auth/user/{id}", h.getUser)
		r.Put("/auth/user/{id}", h.updateUser)

		r.Get("/user/validate-token/{token}", h.validateToken)
	})

	return router
}
