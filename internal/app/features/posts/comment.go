// internal/app/features/posts/comment.go
package posts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/sanitize"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type commentRequest struct {
	Text string `json:"text"`
}

// AddComment handles POST /api/posts/comment/{id}.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.NotFound("post not found"))
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.AddComment(ctx, id, identity, sanitize.Text(req.Text))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("add comment failed", zap.Error(err), zap.String("post_id", id.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, updated.Comments)
}

// RemoveComment handles DELETE /api/posts/comment/{id}/{commentID}.
// Only the comment's own author may remove it, even on someone else's
// post.
func (h *Handler) RemoveComment(w http.ResponseWriter, r *http.Request) {
	identity, ok := requestIdentity(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, apperr.NotFound("post not found"))
		return
	}
	commentID := chi.URLParam(r, "commentID")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	updated, err := h.Store.RemoveComment(ctx, id, identity.ID, commentID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("remove comment failed", zap.Error(err), zap.String("post_id", id.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, updated.Comments)
}
