package progress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
	"github.com/saulo-duarte/skillverse-api/internal/quiz"
	util "github.com/saulo-duarte/skillverse-api/internal/utils"
)

type Handler struct {
	service ProgressService
}

func NewHandler(s ProgressService) *Handler {
	return &Handler{service: s}
}

type submitQuizRequest struct {
	UserID   string        `json:"user_id"`
	ModuleID uint          `json:"module_id" validate:"required"`
	Answers  []quiz.Answer `json:"answers" validate:"dive"`
}

type courseRequest struct {
	UserID   string `json:"user_id"`
	CourseID uint   `json:"course_id" validate:"required"`
}

func (h *Handler) NextIncompleteModule(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	next, err := h.service.NextIncompleteModule(r.Context(), userID, courseID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, next)
}

func (h *Handler) CourseCompletion(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	c, err := h.service.CourseCompletion(r.Context(), userID, courseID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	var req submitQuizRequest
	if !decode(w, r, &req) {
		return
	}
	userID, ok := h.actingUser(w, r, req.UserID)
	if !ok {
		return
	}

	res, err := h.service.SubmitQuiz(r.Context(), userID, req.ModuleID, req.Answers)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, res)
}

func (h *Handler) CompleteCourse(w http.ResponseWriter, r *http.Request) {
	h.courseAction(w, r, h.service.CompleteCourse, http.StatusOK)
}

func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	h.courseAction(w, r, h.service.Enroll, http.StatusCreated)
}

func (h *Handler) RestartCourse(w http.ResponseWriter, r *http.Request) {
	h.courseAction(w, r, h.service.RestartCourse, http.StatusOK)
}

func (h *Handler) EnrollmentState(w http.ResponseWriter, r *http.Request) {
	userID, courseID, ok := h.pathParams(w, r)
	if !ok {
		return
	}

	status, err := h.service.EnrollmentState(r.Context(), userID, courseID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, status)
}

func (h *Handler) UserProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.actingUser(w, r, chi.URLParam(r, "userId"))
	if !ok {
		return
	}

	progress, err := h.service.UserProgress(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, progress)
}

type courseOp func(ctx context.Context, userID string, courseID uint) (*EnrollmentStatus, error)

func (h *Handler) courseAction(w http.ResponseWriter, r *http.Request, op courseOp, status int) {
	var req courseRequest
	if !decode(w, r, &req) {
		return
	}
	userID, ok := h.actingUser(w, r, req.UserID)
	if !ok {
		return
	}

	res, err := op(r.Context(), userID, req.CourseID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, status, res)
}

func (h *Handler) pathParams(w http.ResponseWriter, r *http.Request) (string, uint, bool) {
	courseID, err := util.UintParam(r, "courseId")
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return "", 0, false
	}
	userID, ok := h.actingUser(w, r, chi.URLParam(r, "userId"))
	return userID, courseID, ok
}

// actingUser resolves whose progress the request touches. An empty id means
// the caller; another user's id needs the creator role.
func (h *Handler) actingUser(w http.ResponseWriter, r *http.Request, userID string) (string, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	if userID == "" {
		return claims.UserID, true
	}
	if !claims.CanActFor(userID) {
		config.WithContext(r.Context()).Warnf("Denied access to progress of %s", userID)
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}
	return userID, true
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	log := config.WithContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := config.ValidateStruct(dst); err != nil {
		log.WithError(err).Warn("Request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoModules):
		http.Error(w, "no modules found", http.StatusNotFound)
	case errors.Is(err, ErrCourseNotFound), errors.Is(err, ErrModuleNotFound), errors.Is(err, ErrNotEnrolled):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrInvalidAnswer):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
