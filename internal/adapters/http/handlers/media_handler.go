package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/restaurant-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/restaurant-api/internal/domain"
	"github.com/jsamuelsen11/restaurant-api/internal/ports"
)

const (
	formFileField = "file"
	// multipartOverhead covers boundaries and part headers on top of the
	// file itself.
	multipartOverhead = 64 << 10
	// formMemoryBytes is how much of the upload is buffered in memory
	// before spilling to a temporary file.
	formMemoryBytes = 8 << 20
)

// MediaHandler handles image uploads for the admin dashboard.
type MediaHandler struct {
	svc      ports.MediaService
	maxBytes int64
}

// NewMediaHandler creates a new MediaHandler. maxBytes bounds the request
// body; the service applies its own per-file limit.
func NewMediaHandler(svc ports.MediaService, maxBytes int64) *MediaHandler {
	return &MediaHandler{svc: svc, maxBytes: maxBytes}
}

// Upload handles POST /api/v1/media with a multipart "file" field.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+multipartOverhead)
	}

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			dto.WriteErrorResponse(w, r, domain.NewValidationError(formFileField, "exceeds the upload size limit"))
			return
		}
		dto.WriteErrorResponse(w, r, domain.NewValidationError(formFileField, "multipart field is required"))
		return
	}
	defer file.Close()
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
	}

	obj, err := h.svc.Upload(r.Context(), ports.MediaUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToMediaResponse(obj))
}

// Delete handles DELETE /api/v1/media/{key}.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "key")); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
