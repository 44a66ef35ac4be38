package auth

import (
	"net/http"
	"time"

	"github.com/saulo-duarte/skillverse-api/internal/config"
)

type Handler struct {
	cookieDomain string
	secure       bool
}

func NewHandler() *Handler {
	return &Handler{
		cookieDomain: config.Getenv("COOKIE_DOMAIN", ""),
		secure:       config.Getenv("COOKIE_SECURE", "true") == "true",
	}
}

// SetSessionCookie stores a freshly issued token in the jwt cookie.
func (h *Handler) SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration) {
	http.SetCookie(w, h.cookie(token, int(ttl.Seconds())))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}

func (h *Handler) cookie(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteNoneMode
	if !h.secure {
		sameSite = http.SameSiteLaxMode
	}
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		Domain:   h.cookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: sameSite,
	}
}
