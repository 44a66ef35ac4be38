package certificate

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/config"
)

type Handler struct {
	service CertificateService
}

func NewHandler(s CertificateService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req IssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.WithError(err).Warn("Invalid certificate request")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := config.ValidateStruct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = claims.UserID
	}
	if !claims.CanActFor(userID) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	cert, err := h.service.Issue(r.Context(), userID, req.CourseID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, cert)
}

func (h *Handler) ListByUser(w http.ResponseWriter, r *http.Request) {
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

	certs, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, certs)
}

// Verify is public: anyone holding a code may check it.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "code is required", http.StatusBadRequest)
		return
	}

	v, err := h.service.Verify(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCourseNotCompleted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidCode):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrCertificateNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
