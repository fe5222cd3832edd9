package handler

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"RapidCapture_SecurityTrainer/internal/drill"
	"RapidCapture_SecurityTrainer/internal/scenario"
	"RapidCapture_SecurityTrainer/internal/selector"
	"RapidCapture_SecurityTrainer/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// discardSink drops attempt writes, keeping these tests free of sqlite.
type discardSink struct{}

func (discardSink) RecordAttempt(string, drill.Attempt) error { return nil }
func (discardSink) AccumulateProfile(string, int, bool) error { return nil }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	corpus, err := scenario.NewCorpus(scenario.Builtin())
	require.NoError(t, err)

	svc := drill.NewService(
		corpus,
		selector.New(corpus, rand.New(rand.NewSource(1))),
		session.NewMemoryStore(),
		discardSink{},
		nil,
	)
	InitDrillHandlers(svc)

	router := gin.New()
	// stand-in for the JWT middleware
	router.Use(func(c *gin.Context) {
		c.Set("username", "alice")
	})
	router.GET("/api/scenario/next", NextScenario)
	router.POST("/api/scenario/answer", SubmitAnswer)
	router.GET("/api/scenarios/summary", CorpusSummary)
	router.GET("/api/session/stats", SessionStats)
	router.POST("/api/session/reset", ResetSession)
	router.GET("/api/feedback", ScenarioFeedback)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNextScenarioEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/scenario/next?difficulty=easy", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "easy", got["difficulty"])
	assert.NotEmpty(t, got["id"])
	assert.Contains(t, got, "correctAnswer")
	assert.Contains(t, got, "content")
}

func TestNextScenarioRejectsBadDifficulty(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodGet, "/api/scenario/next?difficulty=insane", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitAnswerEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/scenario/next?difficulty=easy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sc struct {
		ID     string `json:"id"`
		Answer string `json:"correctAnswer"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))

	action := "report"
	if sc.Answer == "legitimate" {
		action = "correct_safe_action"
	}
	w = doJSON(t, router, http.MethodPost, "/api/scenario/answer", AnswerRequest{
		ScenarioID: sc.ID, Action: action, TimeTakenSeconds: 12,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var res drill.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, res.Correct)
	assert.Equal(t, 15, res.Score)
	assert.Equal(t, session.Stats{Correct: 1, Total: 1, Accuracy: 100}, res.Stats)
	require.NotNil(t, res.Feedback)
}

func TestSubmitAnswerUnknownScenario(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/scenario/answer", AnswerRequest{
		ScenarioID: "no-such", Action: "report",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitAnswerMissingFields(t *testing.T) {
	router := setupRouter(t)
	w := doJSON(t, router, http.MethodPost, "/api/scenario/answer", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsAndResetEndpoints(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/scenario/next?difficulty=medium", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var sc struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sc))

	w = doJSON(t, router, http.MethodPost, "/api/scenario/answer", AnswerRequest{
		ScenarioID: sc.ID, Action: "report", TimeTakenSeconds: 40,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/session/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var stats session.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Total)

	w = doJSON(t, router, http.MethodPost, "/api/session/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/session/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, session.Stats{}, stats)
}

func TestFeedbackEndpointNotReady(t *testing.T) {
	router := setupRouter(t)

	// no analyzer wired, so the poll never resolves
	w := doJSON(t, router, http.MethodGet, "/api/feedback?scenario=easy-phish-1", nil)
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/feedback", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCorpusSummaryEndpoint(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/scenarios/summary", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum scenario.Summary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 30, sum.Total)
	assert.Equal(t, sum.Phishing, sum.Legitimate)
}
