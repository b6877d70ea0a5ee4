// internal/app/features/profiles/routes.go
package profiles

import (
	"github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// MountRoutes mounts the profile routes. The directory, per-user lookup,
// and GitHub repo lookup are public; everything that touches the caller's
// own profile requires a signed-in user.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Get("/user/{userID}", h.GetByUser)
	r.Get("/github/{username}", h.GithubRepos)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireSignedIn)

		r.Post("/", h.Upsert)
		r.Get("/me", h.Me)
		r.Delete("/", h.DeleteAccount)

		r.Put("/experience", h.AddExperience)
		r.Delete("/experience/{expID}", h.RemoveExperience)

		r.Put("/education", h.AddEducation)
		r.Delete("/education/{eduID}", h.RemoveEducation)
	})
}
