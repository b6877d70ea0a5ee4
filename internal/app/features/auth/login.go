// internal/app/features/auth/login.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	sysauth "github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. An unknown email and a wrong
// password produce the same response, so the endpoint never confirms
// whether an address is registered.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(w, apperr.Validation("email and password are required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			respond.Error(w, apperr.Unauthorized("invalid credentials"))
			return
		}
		h.Log.Warn("login lookup failed", zap.Error(err))
		respond.Error(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		respond.Error(w, apperr.Unauthorized("invalid credentials"))
		return
	}

	if err := h.signIn(w, r, u); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", u.ID.Hex()))
		respond.Error(w, apperr.Persistence("create session", err))
		return
	}

	h.Log.Info("user logged in", zap.String("user_id", u.ID.Hex()))
	respond.JSON(w, http.StatusOK, u)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, u *models.User) error {
	return h.SessionMgr.SignIn(w, r, &sysauth.SessionUser{
		ID:     u.ID.Hex(),
		Name:   u.FullName,
		Email:  u.Email,
		Avatar: u.Avatar,
	})
}
