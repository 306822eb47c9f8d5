package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/augray/ray/internal/config"
)

// AdminAuth requires the shared admin secret as a bearer token. Without a
// configured secret the protected routes are unavailable.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if config.Cfg.AdminSecret == "" {
			http.Error(w, `{"detail":"Admin secret not configured"}`, http.StatusServiceUnavailable)
			return
		}

		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == "" || token == auth {
			http.Error(w, `{"detail":"Missing admin token"}`, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(config.Cfg.AdminSecret)) != 1 {
			http.Error(w, `{"detail":"Invalid admin token"}`, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
