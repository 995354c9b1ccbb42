package http

import (
	"net/http"
	"strconv"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type AgreementHandler struct {
	svc service.AgreementService
}

func NewAgreementHandler(svc service.AgreementService) *AgreementHandler {
	return &AgreementHandler{svc: svc}
}

type submitAgreementRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ApartmentID int32  `json:"apartment_id"`
	FloorNo     int32  `json:"floor_no"`
	BlockName   string `json:"block_name"`
	ApartmentNo string `json:"apartment_no"`
	Rent        int32  `json:"rent"`
}

// SubmitApplication handles POST /addagreement
func (h *AgreementHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req submitAgreementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	agreement, err := h.svc.SubmitApplication(r.Context(), &domain.Agreement{
		Name:        req.Name,
		Email:       req.Email,
		ApartmentID: req.ApartmentID,
		FloorNo:     req.FloorNo,
		BlockName:   req.BlockName,
		ApartmentNo: req.ApartmentNo,
		Rent:        req.Rent,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":   "Agreement request submitted!",
		"agreement": agreement,
	})
}

// ListPending handles GET /agreementrqst?email
func (h *AgreementHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	agreements, err := h.svc.ListPending(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if agreements == nil {
		agreements = []domain.Agreement{}
	}
	writeJSON(w, http.StatusOK, agreements)
}

type acceptAgreementRequest struct {
	Email       string `json:"email"`
	AgreementID int32  `json:"agree_id"`
}

// Accept handles PATCH /acceptagreement
func (h *AgreementHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptAgreementRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.svc.Accept(r.Context(), req.AgreementID, req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Agreement accepted")
}

// Reject handles DELETE /deleteagreement?id
func (h *AgreementHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Reject(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Agreement removed")
}

// RemoveMember handles PATCH /removemember?id
func (h *AgreementHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, ok := queryID(w, r)
	if !ok {
		return
	}
	if err := h.svc.RemoveMember(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Member removed")
}

// GetActiveAgreement handles GET /specificagreement?email
func (h *AgreementHandler) GetActiveAgreement(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	agreement, err := h.svc.GetActiveAgreement(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	if agreement == nil {
		// No checked agreement for this tenant; empty object, not 404.
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}
	writeJSON(w, http.StatusOK, agreement)
}

func queryID(w http.ResponseWriter, r *http.Request) (int32, bool) {
	raw := r.URL.Query().Get("id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeMessage(w, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return int32(id), true
}
