// internal/app/features/auth/register.go
package auth

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/devlink/internal/app/store/users"
	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost trades hash time for resistance to offline cracking.
const bcryptCost = 12

const minPasswordLen = 6

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /api/auth/register: create the account, start a
// session, and return the public user record.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}

	if len(req.Password) < minPasswordLen {
		respond.Error(w, apperr.Validation(
			fmt.Sprintf("password must be at least %d characters", minPasswordLen)))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.Log.Error("hash password failed", zap.Error(err))
		respond.Error(w, apperr.Persistence("hash password", err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	u, err := h.Users.Create(ctx, models.User{
		FullName:     req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Avatar:       gravatarURL(req.Email),
	})
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			respond.Error(w, apperr.Conflict("user already exists"))
			return
		}
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("register failed", zap.Error(err))
		}
		respond.Error(w, err)
		return
	}

	if err := h.signIn(w, r, &u); err != nil {
		h.Log.Error("save session after register failed", zap.Error(err),
			zap.String("user_id", u.ID.Hex()))
		respond.Error(w, apperr.Persistence("create session", err))
		return
	}

	h.Log.Info("user registered", zap.String("user_id", u.ID.Hex()))
	respond.JSON(w, http.StatusOK, u)
}

// gravatarURL derives the avatar from the email the way Gravatar expects:
// md5 of the trimmed, lowercased address. Size 200, PG rating, identicon
// fallback for addresses without a Gravatar account.
func gravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", sum)
}
