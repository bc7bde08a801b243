package middleware

import (
	"encoding/json"
	"net/http"

	"trackline-be/internal/logger"
	"trackline-be/internal/user"
	"trackline-be/internal/utils"

	"go.uber.org/zap"
)

// Gate resolves the application user for the request's principal and
// enforces role checks. It holds no session state: the role is re-read on
// every protected call.
type Gate struct {
	users user.Service
}

func NewGate(users user.Service) *Gate {
	return &Gate{users: users}
}

func (g *Gate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetPrincipalFromContext(r.Context()); !ok {
			writeForbidden(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := utils.GetPrincipalFromContext(r.Context())
		if !ok {
			writeForbidden(w, http.StatusUnauthorized, "authentication required")
			return
		}

		u, err := g.users.Sync(r.Context(), p)
		if err != nil {
			logger.FromCtx(r.Context()).Error("failed to resolve user for admin gate",
				zap.String("external_id", p.ExternalID),
				zap.Error(err),
			)
			writeForbidden(w, http.StatusInternalServerError, "internal error")
			return
		}

		if u.Role != user.RoleAdmin {
			writeForbidden(w, http.StatusForbidden, "admin access required")
			return
		}

		ctx := utils.SetUserContext(r.Context(), u.ID.String(), string(u.Role))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeForbidden(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
