package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"trackline-be/internal/asset"
	"trackline-be/internal/device"
	"trackline-be/internal/order"
	"trackline-be/internal/user"
)

type dataResponse struct {
	Data any `json:"data"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, code int, v any) {
	writeJSON(w, code, dataResponse{Data: v})
}

func writeSuccess(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// writeDomainError maps domain sentinel errors onto the HTTP taxonomy:
// validation 400, access-verification 401, not-found 404, duplicates 409,
// everything else a generic 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, device.ErrNameRequired),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, asset.ErrFileRequired):
		writeError(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, order.ErrAccessDenied):
		writeError(w, http.StatusUnauthorized, err.Error())

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, device.ErrDeviceNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, asset.ErrAssetNotFound):
		writeError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, order.ErrDuplicateNumber):
		writeError(w, http.StatusConflict, err.Error())

	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
