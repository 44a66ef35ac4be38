package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
)

type Handler struct {
	service UserService
	cookies *auth.Handler
}

func NewHandler(s UserService, cookies *auth.Handler) *Handler {
	return &Handler{service: s, cookies: cookies}
}

func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid login body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	session, err := h.service.Login(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, ErrLoginFailed) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.cookies.SetSessionCookie(w, session.Token, h.service.TokenTTL())
	config.JSON(w, http.StatusOK, session)
}

// RefreshToken expects a valid session token, so it runs behind
// AuthMiddleware.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.service.Refresh(r.Context(), claims)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.cookies.SetSessionCookie(w, session.Token, h.service.TokenTTL())
	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, u)
}

// GetUserByID lets a caller read their own profile by id, and creators
// read any learner's profile.
func (h *Handler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := chi.URLParam(r, "userId")
	if !claims.CanActFor(userID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	u, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, u)
}
