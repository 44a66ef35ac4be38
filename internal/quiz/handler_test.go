package quiz

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, _ := newTestService(t)
	h := NewHandler(svc)

	r := chi.NewRouter()
	r.Get("/api/modules/{moduleId}/quiz", h.ListQuestions)
	r.Mount("/api/quiz", Routes(h))
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandlerAddListRemove(t *testing.T) {
	r := newTestRouter(t)

	body := `{"question":"Which part of mint is brewed?","option_a":"Leaves","option_b":"Roots","option_c":"Stem","option_d":"Seeds","correct_option":"A"}`
	rec := serve(r, http.MethodPost, "/api/quiz/modules/1/questions", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created QuizQuestion
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotZero(t, created.ID)

	rec = serve(r, http.MethodGet, "/api/modules/1/quiz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "correct_option")

	var views []QuestionView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&views))
	require.Len(t, views, 1)
	assert.Equal(t, "Leaves", views[0].OptionA)

	rec = serve(r, http.MethodDelete, fmt.Sprintf("/api/quiz/questions/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(r, http.MethodDelete, fmt.Sprintf("/api/quiz/questions/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlerErrors(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"InvalidOption", http.MethodPost, "/api/quiz/modules/1/questions", `{"question":"q","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_option":"E"}`, http.StatusBadRequest},
		{"MalformedBody", http.MethodPost, "/api/quiz/modules/1/questions", `{`, http.StatusBadRequest},
		{"UnknownModule", http.MethodPost, "/api/quiz/modules/99/questions", `{"question":"q","option_a":"a","option_b":"b","option_c":"c","option_d":"d","correct_option":"B"}`, http.StatusNotFound},
		{"BadModuleID", http.MethodGet, "/api/modules/abc/quiz", "", http.StatusBadRequest},
		{"ListUnknownModule", http.MethodGet, "/api/modules/99/quiz", "", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(r, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.status, rec.Code)
		})
	}
}
