package middleware

import (
	"context"
	"net/http"
	"strings"

	"leadtrack/internal/models"

	"github.com/gorilla/mux"
)

// TokenVerifier resolves a bearer token to the owning user id.
type TokenVerifier interface {
	Verify(token string) (uint, error)
}

const userIDKey ctxKey = "userid"

// Auth guards tenant-scoped routes: Authorization: Bearer <token>.
// A missing token is 401; a token that fails verification is 400 — the
// split is part of the API contract and applied uniformly to every
// protected route.
func Auth(verifier TokenVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const prefix = "Bearer "
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, prefix) || strings.TrimPrefix(header, prefix) == "" {
				models.WriteMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}
			userID, err := verifier.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				models.WriteMessage(w, http.StatusBadRequest, "Invalid token.")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id placed by Auth. The second
// return is false only on routes that bypassed the guard.
func UserID(r *http.Request) (uint, bool) {
	v := r.Context().Value(userIDKey)
	id, ok := v.(uint)
	return id, ok
}
