package http

import (
	"net/http"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type AnnouncementHandler struct {
	svc service.AnnouncementService
}

func NewAnnouncementHandler(svc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

// List handles GET /announcements
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	announcements, err := h.svc.ListAnnouncements(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if announcements == nil {
		announcements = []domain.Announcement{}
	}
	writeJSON(w, http.StatusOK, announcements)
}

type createAnnouncementRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create handles POST /announcment (path spelling kept from the original API)
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnnouncementRequest
	if !decodeBody(w, r, &req) {
		return
	}

	claims, _ := IdentityFromContext(r.Context())
	createdBy := ""
	if claims != nil {
		createdBy = claims.Email
	}

	announcement := &domain.Announcement{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   createdBy,
	}
	if err := h.svc.CreateAnnouncement(r.Context(), announcement); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, announcement)
}
