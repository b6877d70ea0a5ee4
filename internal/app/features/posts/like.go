// internal/app/features/posts/like.go
package posts

import (
	"context"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Like handles PUT /api/posts/like/{id}. Liking a post twice is a
// conflict, not a no-op.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, h.Store.Like, "like post failed")
}

// Unlike handles PUT /api/posts/unlike/{id}. The post must currently
// carry the caller's like.
func (h *Handler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.toggleLike(w, r, h.Store.Unlike, "unlike post failed")
}

func (h *Handler) toggleLike(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id, userID primitive.ObjectID) (models.Post, error),
	failMsg string,
) {
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

	updated, err := op(ctx, id, identity.ID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn(failMsg, zap.Error(err), zap.String("post_id", id.Hex()))
		}
		respond.Error(w, err)
		return
	}

	// The client only needs the refreshed likes array.
	respond.JSON(w, http.StatusOK, updated.Likes)
}
