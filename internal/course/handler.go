package course

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/saulo-duarte/skillverse-api/internal/config"
	util "github.com/saulo-duarte/skillverse-api/internal/utils"
)

const (
	maxRequestBytes = 256 << 20
	maxUploadBytes  = 64 << 20
	maxFileBytes    = 32 << 20
)

type Handler struct {
	service CourseService
	maxBody int64
}

func NewHandler(s CourseService) *Handler {
	return &Handler{service: s, maxBody: maxRequestBytes}
}

func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListCourses(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, err := util.UintParam(r, "id")
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	c, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, c)
}

func (h *Handler) ListModules(w http.ResponseWriter, r *http.Request) {
	courseID, err := util.UintParam(r, "courseId")
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}

	modules, err := h.service.ListModules(r.Context(), courseID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, modules)
}

func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	moduleID, err := util.UintParam(r, "moduleId")
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}

	m, err := h.service.GetModule(r.Context(), moduleID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, m)
}

// CreateCourse accepts either a JSON body or multipart/form-data with the
// course JSON in the "course" field and blobs as file parts.
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var (
		in  CreateCourseInput
		err error
	)
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		in, err = parseMultipartCourse(r)
	} else {
		err = json.NewDecoder(r.Body).Decode(&in)
	}
	if err != nil {
		log.WithError(err).Warn("Invalid course creation request")
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateCourse(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusCreated, created)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := util.UintParam(r, "id")
	if err != nil {
		http.Error(w, "invalid course id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteCourse(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "course deleted successfully",
	})
}

func (h *Handler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	id, err := util.UintParam(r, "id")
	if err != nil {
		http.Error(w, "invalid module id", http.StatusBadRequest)
		return
	}
	if err := h.service.DeleteModule(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "module deleted successfully",
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		http.Error(w, "course not found", http.StatusNotFound)
	case errors.Is(err, ErrModuleNotFound):
		http.Error(w, "module not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidCourse):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func parseMultipartCourse(r *http.Request) (CreateCourseInput, error) {
	var in CreateCourseInput
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return in, fmt.Errorf("parse multipart: %w", err)
	}

	raw := r.FormValue("course")
	if raw == "" {
		return in, errors.New(`missing "course" field`)
	}
	if err := json.Unmarshal([]byte(raw), &in); err != nil {
		return in, fmt.Errorf("decode course field: %w", err)
	}

	var err error
	if in.Image, err = formFile(r.MultipartForm, "course_image", in.Image); err != nil {
		return in, err
	}
	for i := range in.Modules {
		m := &in.Modules[i]
		if m.Image, err = formFile(r.MultipartForm, fmt.Sprintf("module_%d_image", i), m.Image); err != nil {
			return in, err
		}
		if m.ModelGLB, err = formFile(r.MultipartForm, fmt.Sprintf("module_%d_model", i), m.ModelGLB); err != nil {
			return in, err
		}
		for j := range m.Parts {
			field := fmt.Sprintf("module_%d_part_%d_image", i, j)
			if m.Parts[j].Image, err = formFile(r.MultipartForm, field, m.Parts[j].Image); err != nil {
				return in, err
			}
		}
	}
	return in, nil
}

// formFile returns the bytes of the named file part, or current when the
// part is absent.
func formFile(form *multipart.Form, name string, current []byte) ([]byte, error) {
	if form == nil {
		return current, nil
	}
	headers := form.File[name]
	if len(headers) == 0 {
		return current, nil
	}
	if headers[0].Size > maxFileBytes {
		return nil, fmt.Errorf("%s exceeds %d bytes", name, maxFileBytes)
	}
	f, err := headers[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxFileBytes))
}
