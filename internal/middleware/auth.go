package middleware

import (
	"net/http"

	"trackline-be/internal/auth"
	"trackline-be/internal/user"
	"trackline-be/internal/utils"
)

// AuthMiddleware parses the identity provider's token and attaches the
// verified principal to the request context. Requests without a valid token
// pass through unauthenticated; the gate decides what is protected.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := auth.ExtractAccessToken(r)
		if tokenStr == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := user.ParseToken(tokenStr)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.SetPrincipal(r.Context(), utils.Principal{
			ExternalID: claims.Subject,
			Email:      claims.Email,
			Name:       claims.Name,
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
