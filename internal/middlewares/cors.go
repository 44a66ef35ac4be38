package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/saulo-duarte/skillverse-api/internal/config"
)

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CorsMiddleware allows the origins listed in CORS_ORIGINS, falling back to
// local dev servers. Credentials are allowed so the jwt cookie travels.
func CorsMiddleware(next http.Handler) http.Handler {
	origins := config.GetenvList("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = defaultOrigins
	}
	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
