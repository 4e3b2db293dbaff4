package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/identity"
)

// TokenParser resolves a bearer token to a caller identity.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// Auth rejects requests without a valid bearer token and attaches the
// caller identity to the request context.
func Auth(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeUnauthorized(w, "Missing or invalid token")
				return
			}

			callerID, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := identity.WithCaller(r.Context(), callerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"` + message + `"}}`))
}
