package content

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	handler := NewHandler(newSeededService(t))

	router := mux.NewRouter()
	router.HandleFunc("/modules", handler.GetModules).Methods("GET")
	router.HandleFunc("/days", handler.GetDays).Methods("GET")
	router.HandleFunc("/day/{dayNumber}", handler.GetDay).Methods("GET")
	router.HandleFunc("/quiz/{dayNumber}", handler.GetQuiz).Methods("GET")
	return router
}

func TestGetQuizEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quiz/1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Question 1 for Day 1")
	assert.NotContains(t, rec.Body.String(), "answer_index")
}

func TestGetQuizEndpointNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/quiz/60", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDayEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/day/12", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"module_key":"hr"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/day/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/day/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDaysEndpointFiltered(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/days?module_key=aptitude", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Aptitude Day 1")
	assert.NotContains(t, rec.Body.String(), "Technical")
}
