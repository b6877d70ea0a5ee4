// internal/app/features/auth/routes.go
package auth

import (
	sysauth "github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts registration and session routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(sysauth.RequireSignedIn)
		r.Get("/me", h.Me)
	})
}
