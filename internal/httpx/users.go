package httpx

import (
	"net/http"

	"trackline-be/internal/order"
	"trackline-be/internal/user"
	"trackline-be/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type UserHandler struct {
	svc    user.Service
	orders order.Service
}

func NewUserHandler(svc user.Service, orders order.Service) *UserHandler {
	return &UserHandler{svc: svc, orders: orders}
}

type updateRoleRequest struct {
	Role string `json:"role"`
}

type linkOrderRequest struct {
	UserID          uuid.UUID `json:"userId"`
	OrderIdentifier string    `json:"orderIdentifier"`
}

// Sync resolves (or lazily creates) the application user for the
// authenticated principal.
func (h *UserHandler) Sync(w http.ResponseWriter, r *http.Request) {
	p, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.svc.Sync(r.Context(), p)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}

	writeData(w, http.StatusOK, users)
}

func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.UpdateRole(r.Context(), id, user.Role(req.Role)); err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w)
}

func (h *UserHandler) LinkOrder(w http.ResponseWriter, r *http.Request) {
	var req linkOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.UserID == uuid.Nil || req.OrderIdentifier == "" {
		writeError(w, http.StatusBadRequest, "userId and orderIdentifier are required")
		return
	}

	if err := h.orders.LinkUser(r.Context(), req.UserID, req.OrderIdentifier); err != nil {
		writeDomainError(w, err)
		return
	}

	writeSuccess(w)
}
