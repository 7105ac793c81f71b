package handler

import (
	"errors"
	"net/http"

	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/service"
)

// PaymentHandler handles the authenticated payment endpoints.
type PaymentHandler struct {
	service *service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(svc *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{service: svc}
}

// HandlePriceDetails handles GET /api/payments/price-details requests.
func (h *PaymentHandler) HandlePriceDetails(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.PriceDetails(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("failed to fetch payment details"))
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleCreateIntent handles POST /api/payments/create-payment-intent
// requests.
func (h *PaymentHandler) HandleCreateIntent(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePaymentIntentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.CreateIntent(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCustomerDetailsRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusBadGateway, errorResponse("failed to create payment intent"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
