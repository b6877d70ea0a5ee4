// internal/app/features/posts/routes.go
package posts

import (
	"github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts all post routes on the given router. Every route
// requires a signed-in user; identity arrives via the session middleware.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)

		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Delete("/{id}", h.Delete)

		r.Put("/like/{id}", h.Like)
		r.Put("/unlike/{id}", h.Unlike)

		r.Post("/comment/{id}", h.AddComment)
		r.Delete("/comment/{id}/{commentID}", h.RemoveComment)
	})
}
