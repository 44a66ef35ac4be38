package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the public catalogue.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListCourses)
	r.Get("/{id}", h.GetCourse)
	return r
}
