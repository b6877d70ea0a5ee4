// internal/app/features/profiles/delete.go
package profiles

import (
	"context"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"go.uber.org/zap"
)

// DeleteAccount handles DELETE /api/profile: it removes the caller's
// profile and user record together. Posts survive with their author
// snapshot intact.
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Store.DeleteWithUser(ctx, userID); err != nil {
		h.Log.Warn("delete account failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"msg": "user deleted"})
}
