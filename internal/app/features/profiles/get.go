// internal/app/features/profiles/get.go
package profiles

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

// Me handles GET /api/profile/me: the caller's own profile.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByUser(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("load own profile failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// List handles GET /api/profile: the public developer directory.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	profiles, err := h.Store.List(ctx)
	if err != nil {
		h.Log.Warn("list profiles failed", zap.Error(err))
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, profiles)
}

// GetByUser handles GET /api/profile/user/{userID}: a public lookup by
// the owning user's id.
func (h *Handler) GetByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		// A malformed id can never name a profile.
		respond.Error(w, apperr.NotFound("profile not found"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	p, err := h.Store.GetByUser(ctx, userID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("load profile failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}
