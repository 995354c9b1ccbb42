package http

import (
	"net/http"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

type UserHandler struct {
	svc        service.UserService
	maxPhotoMB int64
}

func NewUserHandler(svc service.UserService, maxPhotoMB int64) *UserHandler {
	return &UserHandler{svc: svc, maxPhotoMB: maxPhotoMB}
}

// GetUser handles GET /user?email
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeMessage(w, http.StatusBadRequest, "email query parameter is required")
		return
	}
	user, err := h.svc.GetUser(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ListMembers handles GET /allmembers?email
func (h *UserHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.svc.ListMembers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if members == nil {
		members = []domain.User{}
	}
	writeJSON(w, http.StatusOK, members)
}

// CreateUser handles POST /adduser (multipart: photo + fields)
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxPhotoMB << 20); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	googlePhotoURL := r.FormValue("googlePhotoURL")

	var photo *service.PhotoUpload
	file, header, err := r.FormFile("photo")
	if err == nil {
		defer file.Close()
		photo = &service.PhotoUpload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        file,
		}
	}

	user, created, err := h.svc.CreateUser(r.Context(), name, email, googlePhotoURL, photo)
	if err != nil {
		writeError(w, err)
		return
	}
	if !created {
		// Existing account on repeat sign-in is not an error.
		writeMessage(w, http.StatusCreated, "user exists")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}
