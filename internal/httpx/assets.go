package httpx

import (
	"net/http"

	"trackline-be/internal/asset"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxUploadSize = 32 << 20 // 32MB

type AssetHandler struct {
	svc asset.Service
}

func NewAssetHandler(svc asset.Service) *AssetHandler {
	return &AssetHandler{svc: svc}
}

func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	a, err := h.svc.Upload(r.Context(), asset.UploadParams{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusCreated, a)
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeData(w, http.StatusOK, assets)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid asset id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w)
}
