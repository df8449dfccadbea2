package http

import (
	"errors"
	"net/http"

	"neoauth/internal/domain"
	"neoauth/internal/dto"
)

func (h *Handler) twoFactorEnable(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	secret, err := h.twoFactor.Enable(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, dto.TwoFactorEnableResponse{
		Message: "2FA setup initiated",
		Secret:  secret,
	})
}

func (h *Handler) twoFactorGenerateCode(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	code, ttl, err := h.twoFactor.GenerateCode(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, dto.GenerateCodeResponse{
		Code:             code,
		ExpiresInMinutes: int(ttl.Minutes()),
	})
}

func (h *Handler) twoFactorConfirm(w http.ResponseWriter, r *http.Request) {
	var req dto.TwoFactorCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Code required")
		return
	}
	p, _ := PrincipalFrom(r.Context())
	if err := h.twoFactor.Confirm(r.Context(), p.UserID, req.Code); err != nil {
		writeServiceError(w, err, "Invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "2FA enabled successfully"})
}

func (h *Handler) twoFactorVerify(w http.ResponseWriter, r *http.Request) {
	var req dto.TwoFactorCodeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Code required")
		return
	}
	p, _ := PrincipalFrom(r.Context())
	err := h.twoFactor.Verify(r.Context(), p.UserID, req.Code)
	if err == nil {
		writeJSON(w, http.StatusOK, dto.VerifyResponse{Verified: true})
		return
	}
	if errors.Is(err, domain.ErrOneTimeInvalid) {
		writeJSON(w, http.StatusBadRequest, dto.VerifyResponse{
			Verified: false,
			Error:    "Invalid or expired code",
		})
		return
	}
	writeServiceError(w, err, "Invalid or expired code")
}

func (h *Handler) twoFactorDisable(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	if err := h.twoFactor.Disable(r.Context(), p.UserID); err != nil {
		writeServiceError(w, err, "Invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: "2FA disabled"})
}

func (h *Handler) twoFactorStatus(w http.ResponseWriter, r *http.Request) {
	p, _ := PrincipalFrom(r.Context())
	enabled, err := h.twoFactor.Status(r.Context(), p.UserID)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired code")
		return
	}
	writeJSON(w, http.StatusOK, dto.TwoFactorStatusResponse{TwoFactorEnabled: enabled})
}
