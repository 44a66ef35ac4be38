package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	util "github.com/saulo-duarte/skillverse-api/internal/utils"
)

type Handler struct {
	service QuizService
}

func NewHandler(s QuizService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	moduleID, err := util.UintParam(r, "moduleId")
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	questions, err := h.service.ListQuestions(r.Context(), moduleID)
	if err != nil {
		if errors.Is(err, ErrModuleNotFound) {
			http.Error(w, "module not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to list quiz questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) AddQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	moduleID, err := util.UintParam(r, "moduleId")
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	var in QuestionInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.WithError(err).Warn("Invalid request body for quiz question")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	q, err := h.service.AddQuestion(r.Context(), moduleID, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidOption):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrModuleNotFound):
			http.Error(w, "module not found", http.StatusNotFound)
		default:
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) RemoveQuestion(w http.ResponseWriter, r *http.Request) {
	questionID, err := util.UintParam(r, "id")
	if err != nil {
		http.Error(w, "invalid question id", http.StatusBadRequest)
		return
	}

	if err := h.service.RemoveQuestion(r.Context(), questionID); err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "quiz question not found", http.StatusNotFound)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "question removed successfully",
	})
}
