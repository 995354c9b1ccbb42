package http

import (
	"net/http"
	"strconv"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type ApartmentHandler struct {
	svc service.ApartmentService
}

func NewApartmentHandler(svc service.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{svc: svc}
}

type apartmentPage struct {
	Apartments []domain.Apartment `json:"apartments"`
	TotalPages int32              `json:"totalPages"`
}

// ListApartments handles GET /apartments?page&limit&minRent&maxRent
func (h *ApartmentHandler) ListApartments(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", service.DefaultPage)
	limit := queryInt(r, "limit", service.DefaultLimit)
	minRent := queryInt(r, "minRent", 0)
	maxRent := queryInt(r, "maxRent", 0) // 0 means unbounded

	apartments, totalPages, err := h.svc.ListApartments(r.Context(), page, limit, minRent, maxRent)
	if err != nil {
		writeError(w, err)
		return
	}
	if apartments == nil {
		apartments = []domain.Apartment{}
	}
	writeJSON(w, http.StatusOK, apartmentPage{Apartments: apartments, TotalPages: totalPages})
}

// DashboardStats handles GET /dashboard-stats
func (h *ApartmentHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetDashboardStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func queryInt(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return int32(val)
}
