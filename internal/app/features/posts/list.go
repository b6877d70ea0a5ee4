// internal/app/features/posts/list.go
package posts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// feedPageSize is the default number of posts per feed page.
const feedPageSize = 50

// List handles GET /api/posts: the feed, newest first. An optional
// "after" cursor continues a previous page; "limit" caps the page size.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	afterID := primitive.NilObjectID
	if after := r.URL.Query().Get("after"); after != "" {
		if c, ok := wafflemongo.DecodeCursor(after); ok {
			afterID = c.ID
		}
	}

	limit := int64(feedPageSize)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 && n <= feedPageSize {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	posts, err := h.Store.List(ctx, afterID, limit)
	if err != nil {
		h.Log.Warn("list posts failed", zap.Error(err))
		respond.Error(w, err)
		return
	}

	next := ""
	if int64(len(posts)) == limit {
		last := posts[len(posts)-1]
		next = wafflemongo.EncodeCursor("", last.ID)
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"posts": posts,
		"next":  next,
	})
}

// Get handles GET /api/posts/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		// A malformed id can never name a post.
		respond.Error(w, apperr.NotFound("post not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("get post failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}
