package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"neoauth/internal/domain"
	"neoauth/internal/dto"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Default().Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, dto.ErrorResponse{Error: message})
}

// writeServiceError maps domain errors onto HTTP statuses. oneTimeMessage is
// the message used for ErrOneTimeInvalid, which differs between the reset and
// 2FA endpoints.
func writeServiceError(w http.ResponseWriter, err error, oneTimeMessage string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrUserExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, domain.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrUserDisabled):
		writeError(w, http.StatusForbidden, "Account disabled")
	case errors.Is(err, domain.ErrInvalidRole):
		writeError(w, http.StatusBadRequest, "Invalid role")
	case errors.Is(err, domain.ErrInvalidProvider):
		writeError(w, http.StatusBadRequest, "Invalid provider")
	case errors.Is(err, domain.ErrOneTimeInvalid):
		writeError(w, http.StatusBadRequest, oneTimeMessage)
	default:
		slog.Default().Error("internal error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
