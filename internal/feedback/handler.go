package feedback

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateFeedbackDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	response, err := h.service.Create(r.Context(), claims.UserID, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFeedback):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrCourseNotFound):
			http.Error(w, "course not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, response)
}
