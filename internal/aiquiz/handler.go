package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/course"
	util "github.com/saulo-duarte/skillverse-api/internal/utils"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) DraftQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	moduleID, err := util.UintParam(r, "moduleId")
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var req DraftRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	drafts, err := h.service.DraftQuestions(r.Context(), moduleID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, course.ErrModuleNotFound):
			http.Error(w, "module not found", http.StatusNotFound)
		case errors.Is(err, ErrProviderUnavailable):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			log.WithError(err).Error("Failed to draft questions")
			http.Error(w, "failed to generate questions", http.StatusBadGateway)
		}
		return
	}

	config.JSON(w, http.StatusOK, drafts)
}
