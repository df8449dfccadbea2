package http

import (
	"net/http"
	"strconv"

	"neoauth/internal/dto"
)

func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) adminListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.admin.ListUsers(r.Context(), pageParam(r))
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) adminUpdateRole(w http.ResponseWriter, r *http.Request) {
	var req dto.RoleUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 {
		writeError(w, http.StatusBadRequest, "User ID required")
		return
	}
	resp, err := h.admin.UpdateRole(r.Context(), req.UserID, req.Role)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) adminUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.UserID == 0 || req.IsActive == nil {
		writeError(w, http.StatusBadRequest, "User ID required")
		return
	}
	resp, err := h.admin.UpdateStatus(r.Context(), req.UserID, *req.IsActive)
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) adminActivityLog(w http.ResponseWriter, r *http.Request) {
	resp, err := h.admin.ActivityLog(r.Context(), pageParam(r))
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	resp, err := h.admin.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "Invalid or expired token")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
