package certificate

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes serves the authenticated certificate endpoints. Verify is mounted
// separately on the public router.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Issue)
	r.Get("/{userId}", h.ListByUser)
	return r
}
