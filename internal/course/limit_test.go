package course

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The service is nil: an oversized body must be refused before it is used.
func TestCreateCourseBodyLimit(t *testing.T) {
	h := &Handler{maxBody: 1 << 10}

	t.Run("JSON", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", 4<<10) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/add-course", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		h.CreateCourse(rec, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("Multipart", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		require.NoError(t, mw.WriteField("course", `{"name":"Mosses"}`))
		fw, err := mw.CreateFormFile("course_image", "big.png")
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte{0x42}, 8<<10))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/add-course", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()

		h.CreateCourse(rec, req)
		assert.Contains(t, []int{http.StatusRequestEntityTooLarge, http.StatusBadRequest}, rec.Code)
	})
}
