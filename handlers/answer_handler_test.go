package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clearpolicy-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	answerService := service.NewAnswerService()
	disambiguationService := service.NewDisambiguationService()
	handler := NewAnswerHandler(answerService, disambiguationService, nil, nil)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/query", handler.Query)
	api.POST("/query/followup", handler.FollowUp)
	api.POST("/simplify", handler.Simplify)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestQueryMissingBody(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, parsed["success"])
}

func TestQueryInvalidReadingLevel(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query", `{"query": "Prop 47", "reading_level": "9"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := parsed["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_READING_LEVEL", errInfo["code"])
}

func TestQueryInvalidZipCode(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query", `{"query": "Prop 47", "zip_code": "12"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := parsed["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_ZIP_CODE", errInfo["code"])
}

func TestQueryStubDelivery(t *testing.T) {
	// Total upstream absence still yields a 200 with a marked answer.
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query", `{"query": "obscure municipal zoning rules"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, parsed["success"])

	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, false, data["needs_clarification"])
	assert.Equal(t, "stub", data["resolver"])

	sources := data["sources"].([]interface{})
	require.NotEmpty(t, sources)
}

func TestQueryCuratedAnswer(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query", `{"query": "California Prop 47 2014", "reading_level": "5"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, "curated", data["resolver"])

	summary := data["summary"].(map[string]interface{})
	assert.Equal(t, "5", summary["level"])
	assert.NotEmpty(t, summary["tldr"])

	sections := data["sections"].([]interface{})
	require.NotEmpty(t, sections)
	first := sections[0].(map[string]interface{})
	assert.Equal(t, "summary", first["id"])
}

func TestSimplifyEndpoint(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/simplify", `{"text": "The statute shall commence.", "level": "8"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, "The law will start.", data["text"])
}

func TestSimplifyInvalidLevel(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/simplify", `{"text": "x", "level": "3"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := parsed["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_READING_LEVEL", errInfo["code"])
}

func TestFollowUpInvalidConversationID(t *testing.T) {
	r := newTestRouter()

	w, parsed := doJSON(t, r, "/api/query/followup", `{"query": "and renters?", "conversation_id": "not-a-uuid"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errInfo := parsed["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_CONVERSATION_ID", errInfo["code"])
}
