// internal/app/features/profiles/githubrepos.go
package profiles

import (
	"context"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// GithubRepos handles GET /api/profile/github/{username}: the user's five
// most recently created public repositories. Any lookup failure comes back
// as not-found.
func (h *Handler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	repos, err := h.Repos.ListRepos(ctx, username)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, repos)
}
