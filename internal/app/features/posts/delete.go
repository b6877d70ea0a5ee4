// internal/app/features/posts/delete.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Delete handles DELETE /api/posts/{id}. Only the post's author may
// delete it.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Delete(ctx, id, identity.ID); err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("delete post failed", zap.Error(err), zap.String("post_id", id.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"msg": "post removed"})
}
