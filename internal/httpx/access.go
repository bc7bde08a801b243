package httpx

import (
	"net/http"

	"trackline-be/internal/order"
)

// AccessHandler serves the public order lookup. It is gated only by
// knowledge of the customer email plus an order or tracking number.
type AccessHandler struct {
	svc order.Service
}

func NewAccessHandler(svc order.Service) *AccessHandler {
	return &AccessHandler{svc: svc}
}

type orderAccessRequest struct {
	Email     string `json:"email"`
	Reference string `json:"reference"`
}

func (h *AccessHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req orderAccessRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Email == "" || req.Reference == "" {
		writeError(w, http.StatusBadRequest, "email and reference are required")
		return
	}

	view, err := h.svc.VerifyAccess(r.Context(), req.Email, req.Reference)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
