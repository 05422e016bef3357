package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aptlearn-server/internal/models"
)

func newTestRouter(t *testing.T) *mux.Router {
	engine, db := newTestEngine(t)
	registerUser(t, db, "u-1", "Asha", "asha@example.com")

	router := mux.NewRouter()
	router.HandleFunc("/attempt", NewHandler(engine).SubmitAttempt).Methods("POST")
	return router
}

func TestSubmitAttemptEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{"user_id":"u-1","day_number":1,"answers":[0,1,2,3,0],"violations":0}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attempt", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AttemptResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.True(t, result.Passed)
}

func TestSubmitAttemptEndpointNoQuestionsIsBadRequest(t *testing.T) {
	router := newTestRouter(t)

	// day 99 exists nowhere: the contract is a 400, not a 404
	body := `{"user_id":"u-1","day_number":99,"answers":[0],"violations":0}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attempt", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitAttemptEndpointRejectsBadBody(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attempt", strings.NewReader(`{"day_number":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/attempt", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
