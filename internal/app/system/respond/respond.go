// internal/app/system/respond/respond.go

// Package respond writes JSON responses and maps domain error kinds to
// HTTP statuses. Handlers never inspect error kinds themselves; they hand
// the error here and log what they need.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/devlink/internal/domain/apperr"
)

// errorBody is the JSON shape for every rejected request.
type errorBody struct {
	Msg string `json:"msg"`
}

// JSON writes v with the given status. Encoding failures are ignored; the
// status line is already on the wire by then.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Status returns the HTTP status for a domain error kind.
func Status(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as a JSON error body with the mapped status. Unknown
// and persistence errors surface as a generic 500 so internals never leak.
func Error(w http.ResponseWriter, err error) {
	status := Status(err)
	msg := "server error"
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	JSON(w, status, errorBody{Msg: msg})
}
