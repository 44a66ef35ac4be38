package aiquiz

import "github.com/go-chi/chi/v5"

// Register mounts the drafting endpoint; it belongs behind the creator gate.
func Register(r chi.Router, h *Handler) {
	r.Post("/api/modules/{moduleId}/quiz/draft", h.DraftQuestions)
}
