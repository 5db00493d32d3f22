// Package handlers contains the HTTP handlers for the deck validation API.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ramonehamilton/EDH-Companion/internal/api/response"
	"github.com/ramonehamilton/EDH-Companion/internal/edh/validator"
)

// ValidationHandler serves the deck validation endpoints.
type ValidationHandler struct {
	validator *validator.Validator
}

// NewValidationHandler creates a validation handler.
func NewValidationHandler(v *validator.Validator) *ValidationHandler {
	return &ValidationHandler{validator: v}
}

// ValidateDeck handles POST /api/v1/deck/validate.
func (h *ValidationHandler) ValidateDeck(w http.ResponseWriter, r *http.Request) {
	var req validator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result := h.validator.Validate(r.Context(), &req)
	response.JSON(w, http.StatusOK, result)
}

// sampleRequest builds the canned demonstration deck.
func sampleRequest() *validator.Request {
	return &validator.Request{
		Decklist: []string{
			"1x Sol Ring",
			"4x Lightning Bolt",
			"2x Counterspell",
			"1x Demonic Consultation",
			"1x Thassa's Oracle",
			"1x Swords to Plowshares",
			"1x Ponder",
			"1x Brainstorm",
			"1x Vampiric Tutor",
			"97x Island",
		},
		Commander:     "Jace, Wielder of Mysteries",
		TargetBracket: "upgraded",
	}
}

// SampleValidation handles GET /api/v1/deck/validate/sample.
func (h *ValidationHandler) SampleValidation(w http.ResponseWriter, r *http.Request) {
	req := sampleRequest()
	result := h.validator.Validate(r.Context(), req)
	result.Warnings = append(result.Warnings, "This is a sample validation for demonstration purposes")

	response.JSON(w, http.StatusOK, map[string]interface{}{
		"sample_request":    req,
		"validation_result": result,
		"note":              "This demonstrates the validation endpoint with a sample deck",
	})
}
