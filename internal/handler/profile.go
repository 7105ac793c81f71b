package handler

import (
	"errors"
	"net/http"

	"github.com/tylerhq/tyler-go/internal/middleware"
	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/service"
)

// ProfileHandler handles the authenticated profile endpoints.
type ProfileHandler struct {
	service *service.AuthService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.AuthService) *ProfileHandler {
	return &ProfileHandler{service: svc}
}

// HandleGetProfile handles GET /api/profile requests.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("missing credential"))
		return
	}

	resp, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdateProfile handles PUT /api/profile requests.
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("missing credential"))
		return
	}

	var req model.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
