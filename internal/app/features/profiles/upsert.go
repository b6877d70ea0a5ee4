// internal/app/features/profiles/upsert.go
package profiles

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/auth"
	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/sanitize"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/profile"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// upsertRequest mirrors the profile form. Absent fields decode to nil and
// leave the stored value alone; present fields overwrite, empty string
// included. Skills arrives comma-separated.
type upsertRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GithubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	Youtube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	Linkedin       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// Upsert handles POST /api/profile: create the caller's profile, or merge
// the provided fields into it.
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}

	fields := profile.UpsertFields{
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            sanitized(req.Bio),
		Status:         req.Status,
		GithubUsername: req.GithubUsername,
		Skills:         req.Skills,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Store.Upsert(ctx, userID, fields)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("upsert profile failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// requestUserID extracts the caller's ObjectID from the session user.
func requestUserID(r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := u.UserID()
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

// sanitized strips markup from an optional free-text field, preserving the
// nil-means-untouched contract.
func sanitized(s *string) *string {
	if s == nil {
		return nil
	}
	clean := sanitize.Text(*s)
	return &clean
}
