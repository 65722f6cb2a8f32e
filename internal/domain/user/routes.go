package user

import (
	"github.com/go-chi/chi/v5"

	"github.com/foundit/foundit-api/internal/middleware"
	"github.com/foundit/foundit-api/internal/pkg/jwt"
)

// Routes registers user management routes
func Routes(r chi.Router, handler *Handler, jwtService *jwt.Service) {
	r.Route("/users", func(r chi.Router) {
		r.Use(middleware.Auth(jwtService))
		r.Use(middleware.RequireAdmin())

		r.Get("/", handler.List)
	})
}
