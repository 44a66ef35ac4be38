package quiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the authoring side of quizzes; mount behind a creator gate.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/modules/{moduleId}/questions", h.AddQuestion)
	r.Delete("/questions/{id}", h.RemoveQuestion)
	return r
}
