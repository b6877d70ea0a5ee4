// internal/app/features/profiles/education.go
package profiles

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/sanitize"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/profile"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type educationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// AddEducation handles PUT /api/profile/education.
func (h *Handler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	var req educationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperr.Validation("invalid request body"))
		return
	}

	from, err := parseDate(req.From)
	if err != nil {
		respond.Error(w, apperr.Validation("from date is invalid"))
		return
	}
	to, err := parseOptionalDate(req.To)
	if err != nil {
		respond.Error(w, apperr.Validation("to date is invalid"))
		return
	}

	in := profile.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  sanitize.Text(req.Description),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Store.AddEducation(ctx, userID, in)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("add education failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// RemoveEducation handles DELETE /api/profile/education/{eduID} with the
// same no-op-on-miss contract as experience removal.
func (h *Handler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Store.RemoveEducation(ctx, userID, chi.URLParam(r, "eduID"))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("remove education failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}
