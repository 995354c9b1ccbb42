package http

import (
	"net/http"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type CouponHandler struct {
	svc service.CouponService
}

func NewCouponHandler(svc service.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

// List handles GET /coupons and GET /allcoupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.svc.ListCoupons(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if coupons == nil {
		coupons = []domain.Coupon{}
	}
	writeJSON(w, http.StatusOK, coupons)
}

type addCouponRequest struct {
	Code        string  `json:"code"`
	Discount    int32   `json:"discount"`
	Description string  `json:"description"`
	CreatedBy   string  `json:"createdBy"`
	ExpiresOn   *string `json:"expires_on"`
}

// Add handles POST /addcoupons
func (h *CouponHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCouponRequest
	if !decodeBody(w, r, &req) {
		return
	}

	coupon := &domain.Coupon{
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		ExpiresOn:   req.ExpiresOn,
	}
	if err := h.svc.AddCoupon(r.Context(), coupon); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, coupon)
}
