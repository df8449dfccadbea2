package http

import (
	"net/http"

	"neoauth/internal/dto"
	"neoauth/internal/netutil"
)

func (h *Handler) oauthInit(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")
	callbackURL := r.URL.Query().Get("callback_url")

	authURL, err := h.oauth.AuthURL(provider, callbackURL)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, dto.OAuthInitResponse{AuthURL: authURL})
}

func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	provider := r.URL.Query().Get("provider")

	var req dto.OAuthCallbackRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "Authorization code required")
		return
	}

	resp, err := h.oauth.Callback(r.Context(), provider, req.Code, req.CallbackURL, netutil.ClientIP(r))
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
