// internal/app/features/posts/create.go
package posts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/sanitize"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/post"
	"go.uber.org/zap"
)

type createRequest struct {
	Text string `json:"text"`
}

// Create handles POST /api/posts.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	created, err := h.Store.Create(ctx, identity, sanitize.Text(req.Text))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("create post failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, created)
}

// requestIdentity builds the denormalized author snapshot from the session
// user. The snapshot is copied into posts and comments at creation and
// never refreshed afterwards.
func requestIdentity(r *http.Request) (post.Identity, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return post.Identity{}, false
	}
	id, err := u.UserID()
	if err != nil {
		return post.Identity{}, false
	}
	return post.Identity{ID: id, Name: u.Name, Avatar: u.Avatar}, true
}
