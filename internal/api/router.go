package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the API routes. Everything under /api/v1 requires the
// bearer token when one is configured; health stays open for probes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.system.Health)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.requireAPIKey)

		r.Route("/deck", func(r chi.Router) {
			r.Post("/validate", s.validation.ValidateDeck)
			r.Get("/validate/sample", s.validation.SampleValidation)
		})

		r.Route("/brackets", func(r chi.Router) {
			r.Get("/info", s.brackets.Info)
			r.Get("/game-changers/list", s.brackets.GameChangersList)
		})

		r.Route("/salt", func(r chi.Router) {
			r.Post("/refresh", s.salt.Refresh)
			r.Get("/info", s.salt.Info)
			r.Get("/card/{name}", s.salt.CardSalt)
		})
	})
}
