package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tylerhq/tyler-go/internal/model"
	"github.com/tylerhq/tyler-go/internal/repository"
	"github.com/tylerhq/tyler-go/internal/service"
)

// FileHandler handles the authenticated file-metadata endpoints.
type FileHandler struct {
	service *service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(svc *service.FileService) *FileHandler {
	return &FileHandler{service: svc}
}

// HandleList handles GET /api/files requests.
func (h *FileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	files, err := h.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to fetch files"))
		return
	}
	writeJSON(w, http.StatusOK, files)
}

// HandleCreate handles POST /api/files requests.
func (h *FileHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.FileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrFileNameRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to upload file"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdate handles PUT /api/files/{file_id} requests.
func (h *FileHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	var req model.FileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFileNameRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, repository.ErrFileNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("failed to update file"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/files/{file_id} requests.
func (h *FileHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := fileID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrFileNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to delete file"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func fileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "file_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid file id"))
		return 0, false
	}
	return id, true
}
