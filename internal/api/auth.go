package api

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/ramonehamilton/EDH-Companion/internal/api/response"
)

// requireAPIKey checks the Authorization bearer token against the configured
// static key. An empty configured key disables authentication, for local
// development.
func (s *Server) requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.apiKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			response.Unauthorized(w, fmt.Errorf("missing bearer token"))
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(s.apiKey)) != 1 {
			response.Unauthorized(w, fmt.Errorf("invalid API key"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
