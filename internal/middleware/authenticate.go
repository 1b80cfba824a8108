package middleware

import (
	"net/http"
	"strings"

	"github.com/hic-health/hic-be/internal/auth"
	"github.com/hic-health/hic-be/internal/guard"
)

// TokenCookie carries the JWT for browser navigation to guarded pages.
const TokenCookie = "hic_token"

// Authenticate resolves the bearer token or token cookie to a user and stores
// it on the request context. Missing or invalid tokens leave the request
// anonymous; the role guard decides what that means.
func Authenticate(tokens *auth.TokenManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := bearer(r)
		if raw == "" {
			if c, err := r.Cookie(TokenCookie); err == nil {
				raw = c.Value
			}
		}
		if raw != "" {
			if user, err := tokens.Parse(raw); err == nil {
				r = r.WithContext(guard.WithUser(r.Context(), user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
