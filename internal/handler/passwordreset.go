package handler

import (
	"errors"
	"net/http"

	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/service"
)

// PasswordResetHandler handles the forgot-password endpoints. They are
// deliberately outside the token gate: the caller cannot log in.
type PasswordResetHandler struct {
	service *service.PasswordResetService
}

// NewPasswordResetHandler creates a new PasswordResetHandler.
func NewPasswordResetHandler(svc *service.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{service: svc}
}

// HandleGenerateOTP handles POST /api/auth/generate-otp requests.
func (h *PasswordResetHandler) HandleGenerateOTP(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.RequestCode(r.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrEmailNotFound):
			// Unlike signin, this endpoint is specific about unknown
			// emails. Kept as-is from the original product behavior.
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		case errors.Is(err, service.ErrSendFailed):
			writeJSON(w, http.StatusInternalServerError, errorResponse(service.ErrSendFailed.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to generate OTP"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("OTP sent successfully"))
}

// HandleConfirmOTP handles POST /api/auth/confirm-otp requests. A
// successful confirmation returns the single-use reset ticket that
// reset-password requires.
func (h *PasswordResetHandler) HandleConfirmOTP(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmOTPRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ticket, err := h.service.ConfirmCode(r.Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, service.ErrOTPInvalid) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to confirm OTP"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":     "OTP verified successfully",
		"resetTicket": ticket,
	})
}

// HandleResetPassword handles POST /api/auth/reset-password requests.
func (h *PasswordResetHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req model.ResetPasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email, req.ResetTicket, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrTicketInvalid):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrUserNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("user not found"))
		case errors.Is(err, service.ErrSamePassword):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to reset password"))
		}
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("Password reset successfully"))
}
