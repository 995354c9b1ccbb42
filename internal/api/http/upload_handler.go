package http

import (
	"io"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"apnrghor-backend/internal/storage"
)

// UploadHandler serves files stored by the local storage backend, standing
// in for the hosted image provider's CDN URLs.
type UploadHandler struct {
	localStorage *storage.LocalStorageService
}

func NewUploadHandler(localStorage *storage.LocalStorageService) *UploadHandler {
	return &UploadHandler{localStorage: localStorage}
}

// ServeFile handles GET /uploads/{folder}/{file}
func (h *UploadHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["folder"] + "/" + vars["file"]

	file, err := h.localStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
