// internal/app/features/auth/session.go
package auth

import (
	"context"
	"net/http"

	sysauth "github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"go.uber.org/zap"
)

// Logout handles POST /api/auth/logout.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("sign out failed", zap.Error(err))
	}
	respond.JSON(w, http.StatusOK, map[string]string{"msg": "logged out"})
}

// Me handles GET /api/auth/me: the signed-in user's record, fresh from
// the store rather than the session snapshot.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	su, ok := sysauth.CurrentUser(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}
	id, err := su.UserID()
	if err != nil {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("load current user failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, u)
}
