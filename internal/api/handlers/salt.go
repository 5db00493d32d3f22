package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ramonehamilton/EDH-Companion/internal/api/response"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/salt"
)

// SaltHandler serves the salt cache management endpoints.
type SaltHandler struct {
	salt *salt.Service
}

// NewSaltHandler creates a salt handler.
func NewSaltHandler(s *salt.Service) *SaltHandler {
	return &SaltHandler{salt: s}
}

// Refresh handles POST /api/v1/salt/refresh. The full corpus fetch takes a
// while; callers are expected to invoke this rarely.
func (h *SaltHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	result := h.salt.Refresh(r.Context())
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "Salt cache refresh completed",
		"result":  result,
	})
}

// Info handles GET /api/v1/salt/info.
func (h *SaltHandler) Info(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.salt.Info())
}

// CardSalt handles GET /api/v1/salt/card/{name}.
func (h *SaltHandler) CardSalt(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	h.salt.EnsureLoaded(r.Context())

	score := h.salt.GetCardSaltWithVariants(name)
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"card_name":  name,
		"salt_score": score,
		"found":      score > 0,
	})
}
