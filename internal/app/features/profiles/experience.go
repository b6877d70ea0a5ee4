// internal/app/features/profiles/experience.go
package profiles

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dalemusser/devlink/internal/app/system/respond"
	"github.com/dalemusser/devlink/internal/app/system/sanitize"
	"github.com/dalemusser/devlink/internal/app/system/timeouts"
	"github.com/dalemusser/devlink/internal/domain/apperr"
	"github.com/dalemusser/devlink/internal/domain/profile"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type experienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// AddExperience handles PUT /api/profile/experience.
func (h *Handler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	var req experienceRequest
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

	in := profile.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: sanitize.Text(req.Description),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Store.AddExperience(ctx, userID, in)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("add experience failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// RemoveExperience handles DELETE /api/profile/experience/{expID}.
// Removing an id the profile does not carry succeeds and returns the
// unchanged profile.
func (h *Handler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(r)
	if !ok {
		respond.Error(w, apperr.Unauthorized("authorization required"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p, err := h.Store.RemoveExperience(ctx, userID, chi.URLParam(r, "expID"))
	if err != nil {
		if apperr.KindOf(err) == apperr.KindPersistence {
			h.Log.Warn("remove experience failed", zap.Error(err), zap.String("user_id", userID.Hex()))
		}
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, p)
}

// parseDate accepts the date forms clients actually send: full RFC 3339
// timestamps and bare yyyy-mm-dd dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func parseOptionalDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
