package http

import (
	"net/http"
	"strings"

	"neoauth/internal/dto"
	"neoauth/internal/netutil"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	resp, err := h.auth.Register(r.Context(), req, netutil.ClientIP(r))
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password required")
		return
	}

	resp, err := h.auth.Login(r.Context(), req, netutil.ClientIP(r))
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	profile, err := h.auth.Profile(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileResponse{User: *profile})
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.ProfileUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	p, _ := PrincipalFrom(r.Context())
	profile, err := h.auth.UpdateProfile(r.Context(), p.UserID, req)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, dto.ProfileResponse{User: *profile})
}

func (h *Handler) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "Email required")
		return
	}

	resp, err := h.auth.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetConfirmRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "Token and new password required")
		return
	}

	if err := h.auth.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "Password reset successful"})
}
