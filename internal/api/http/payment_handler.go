package http

import (
	"net/http"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type PaymentHandler struct {
	svc service.PaymentService
}

func NewPaymentHandler(svc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

type createIntentRequest struct {
	AgreementID int32  `json:"id"`
	Month       string `json:"month"`
	Coupon      string `json:"coupon"`
}

// CreateIntent handles POST /create-payment-intent
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := h.svc.CreatePaymentIntent(r.Context(), req.AgreementID, req.Month, req.Coupon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type validateCouponRequest struct {
	Coupon string `json:"coupon"`
}

// ValidateCoupon handles POST /validate-coupon
func (h *PaymentHandler) ValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var req validateCouponRequest
	if !decodeBody(w, r, &req) {
		return
	}

	claims, _ := IdentityFromContext(r.Context())
	email := ""
	if claims != nil {
		email = claims.Email
	}

	validation, err := h.svc.ValidateCoupon(r.Context(), email, req.Coupon)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validation)
}

// History handles GET /paymenthistory?email
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	payments, err := h.svc.GetPaymentHistory(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
