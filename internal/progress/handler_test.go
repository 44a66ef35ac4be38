package progress_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/skillverse-api/internal/auth"
	"github.com/saulo-duarte/skillverse-api/internal/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(f *fixture, claims *auth.Claims) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(auth.WithClaims(req.Context(), claims)))
		})
	})
	progress.Register(r, progress.NewHandler(f.svc))
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandlerNextIncompleteModule(t *testing.T) {
	f := newFixture(t, 2, 0)
	h := newRouter(f, &auth.Claims{UserID: learner, Role: auth.RoleLearner})

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/next-incomplete-module/%s/%d", learner, f.course), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, f.modules[0], body["module_id"])
	assert.Equal(t, true, body["is_first_module"])
}

func TestHandlerRejectsOtherLearner(t *testing.T) {
	f := newFixture(t, 1, 0)
	h := newRouter(f, &auth.Claims{UserID: learner, Role: auth.RoleLearner})

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/module-completion/%s/%d", "intruder-target", f.course), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/user-progress/intruder-target", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandlerCreatorActsForLearner(t *testing.T) {
	f := newFixture(t, 1, 0)
	h := newRouter(f, &auth.Claims{UserID: "creator-1", Role: auth.RoleCreator})

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/module-completion/%s/%d", learner, f.course), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"completed":0,"total":1}`, rec.Body.String())
}

func TestHandlerNoModules(t *testing.T) {
	f := newFixture(t, 0, 0)
	h := newRouter(f, &auth.Claims{UserID: learner, Role: auth.RoleLearner})

	rec := do(t, h, http.MethodGet, fmt.Sprintf("/api/next-incomplete-module/%s/%d", learner, f.course), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no modules found")
}

func TestHandlerSubmitQuiz(t *testing.T) {
	f := newFixture(t, 1, 2)
	h := newRouter(f, &auth.Claims{UserID: learner, Role: auth.RoleLearner})

	bad := fmt.Sprintf(`{"module_id":%d,"answers":[{"question_id":%d,"answer":"Z"}]}`, f.modules[0], f.questions[0][0])
	rec := do(t, h, http.MethodPost, "/api/submit-quiz", bad)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	good := fmt.Sprintf(`{"module_id":%d,"answers":[{"question_id":%d,"answer":"A"},{"question_id":%d,"answer":"A"}]}`,
		f.modules[0], f.questions[0][0], f.questions[0][1])
	rec = do(t, h, http.MethodPost, "/api/submit-quiz", good)
	require.Equal(t, http.StatusOK, rec.Code)

	var res progress.SubmitResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.CompletedModule)
	assert.Equal(t, 2, res.Score)
}

func TestHandlerEnrollAndState(t *testing.T) {
	f := newFixture(t, 1, 0)
	h := newRouter(f, &auth.Claims{UserID: learner, Role: auth.RoleLearner})

	rec := do(t, h, http.MethodPost, "/api/enroll", fmt.Sprintf(`{"course_id":%d}`, f.course))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodGet, fmt.Sprintf("/api/enrollment/%s/%d", learner, f.course), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var status progress.EnrollmentStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, progress.StateInProgress, status.State)

	rec = do(t, h, http.MethodPost, "/api/complete-course", `{"course_id":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
