package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zorgdesk/zorgcmd/config"
	"github.com/zorgdesk/zorgcmd/pkg/history"
	"github.com/zorgdesk/zorgcmd/pkg/llms"
	"github.com/zorgdesk/zorgcmd/pkg/models"
	"github.com/zorgdesk/zorgcmd/pkg/store"
)

type stubClassifier struct {
	result      *models.ClassificationResult
	localResult *models.ClassificationResult
	err         error
}

func (s *stubClassifier) Classify(
	_ context.Context,
	_ string,
	_ bool,
) (*models.ClassificationResult, *models.ClassificationResult, error) {
	if s.err != nil {
		return nil, s.localResult, s.err
	}
	return s.result, s.localResult, nil
}

func (s *stubClassifier) IsHighConfidence(result *models.ClassificationResult) bool {
	return result != nil && result.Confidence >= 0.8
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           8000,
			MaxRequestSize: 524288,
		},
		Classifier: config.ClassifierConfig{
			HighConfidenceThreshold: 0.8,
			MaxInputLength:          500,
		},
	}
}

func testAppState(classifier models.CommandClassifier) *models.AppState {
	scheduleStore := store.NewMemoryScheduleStore()
	scheduleStore.Seed(time.Now())
	return &models.AppState{
		Classifier:    classifier,
		ScheduleStore: scheduleStore,
		History:       history.NewStore(5),
		Config:        testConfig(),
	}
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestClassifyRoute(t *testing.T) {
	classifier := &stubClassifier{
		result: &models.ClassificationResult{
			Intent:         models.IntentDagnotitie,
			Confidence:     0.95,
			Entities:       models.EntityBag{PatientName: "Jan", Content: "eet niet"},
			MatchedPattern: "dagnotitie_prefix",
			Source:         models.SourceLocal,
		},
	}
	appState := testAppState(classifier)
	router := setupRouter(appState)

	res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: "notitie Jan eet niet"})
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.ClassifyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.Equal(t, models.IntentDagnotitie, resp.Intent)
	assert.Equal(t, models.SourceLocal, resp.Source)
	assert.Equal(t, "Jan", resp.Entities.PatientName)
	assert.Nil(t, resp.LocalResult)
	assert.GreaterOrEqual(t, resp.ProcessingTimeMs, int64(0))

	// a successful classification lands in the history
	actions := appState.History.List()
	require.Len(t, actions, 1)
	assert.Equal(t, models.IntentDagnotitie, actions[0].Intent)
	assert.Equal(t, "notitie Jan eet niet", actions[0].Label)
}

func TestClassifyRouteEscalated(t *testing.T) {
	classifier := &stubClassifier{
		result: &models.ClassificationResult{
			Intent:     models.IntentAgendaQuery,
			Confidence: 0.9,
			Source:     models.SourceAI,
		},
		localResult: &models.ClassificationResult{
			Intent:     models.IntentUnknown,
			Confidence: 0,
			Source:     models.SourceLocal,
		},
	}
	router := setupRouter(testAppState(classifier))

	res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: "kan iemand me helpen met morgen"})
	require.Equal(t, http.StatusOK, res.Code)

	var resp models.ClassifyResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.Equal(t, models.SourceAI, resp.Source)
	require.NotNil(t, resp.LocalResult)
	assert.Equal(t, models.IntentUnknown, resp.LocalResult.Intent)
}

func TestClassifyRouteValidation(t *testing.T) {
	router := setupRouter(testAppState(&stubClassifier{}))

	res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: ""})
	require.Equal(t, http.StatusBadRequest, res.Code)

	var resp validationErrorResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "Input", resp.Errors[0].Field)
}

func TestClassifyRouteErrorMapping(t *testing.T) {
	t.Run("llm not configured maps to 503", func(t *testing.T) {
		classifier := &stubClassifier{err: models.NewLLMNotConfiguredError("no llm client available")}
		router := setupRouter(testAppState(classifier))

		res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: "iets"})
		assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	})

	t.Run("transient llm error maps to 502", func(t *testing.T) {
		classifier := &stubClassifier{err: llms.NewLLMError("upstream failure", errors.New("connection refused"))}
		router := setupRouter(testAppState(classifier))

		res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: "iets"})
		assert.Equal(t, http.StatusBadGateway, res.Code)
	})
}

func TestScheduleRoute(t *testing.T) {
	router := setupRouter(testAppState(&stubClassifier{}))

	t.Run("label range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?label=vandaag", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)

		var resp ScheduleResponse
		require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
		assert.Equal(t, "vandaag", resp.DateRange.Label)
		assert.Len(t, resp.Appointments, 2)
	})

	t.Run("explicit range wins over label", func(t *testing.T) {
		start := time.Now().Add(-time.Hour).Format(time.RFC3339)
		end := time.Now().Add(time.Hour).Format(time.RFC3339)
		req := httptest.NewRequest(
			http.MethodGet,
			"/api/v1/schedule?label=morgen&start="+start+"&end="+end,
			nil,
		)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	})

	t.Run("invalid explicit range", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/schedule?start=niet-een-datum&end=ook-niet", nil)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		assert.Equal(t, http.StatusBadRequest, res.Code)
	})
}

func TestChatActionsRoute(t *testing.T) {
	router := setupRouter(testAppState(&stubClassifier{}))

	text := "Klaar.\n```json\n" +
		`{"intent": "zoeken", "confidence": 0.9, "entities": {"patientName": "Annie Smit"}, "artifact": {"type": "zoeken"}}` +
		"\n```"
	res := postJSON(t, router, "/api/v1/chat/actions", ChatActionsRequest{Text: text})
	require.Equal(t, http.StatusOK, res.Code)

	var resp ChatActionsResponse
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &resp))
	assert.Equal(t, "Klaar.", resp.DisplayText)
	require.NotNil(t, resp.Action)
	assert.Equal(t, models.IntentZoeken, resp.Action.Intent)
}

func TestHistoryRoute(t *testing.T) {
	appState := testAppState(&stubClassifier{})
	appState.History.Add(models.RecentAction{Intent: models.IntentZoeken, Label: "zoek Jan"})
	router := setupRouter(appState)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusOK, res.Code)

	var actions []models.RecentAction
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &actions))
	require.Len(t, actions, 1)
	assert.Equal(t, "zoek Jan", actions[0].Label)
}

func TestHealthzAndVersionHeader(t *testing.T) {
	router := setupRouter(testAppState(&stubClassifier{}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotEmpty(t, res.Header().Get(versionHeader))
}

func TestAuthRequired(t *testing.T) {
	appState := testAppState(&stubClassifier{
		result: &models.ClassificationResult{
			Intent:     models.IntentZoeken,
			Confidence: 0.9,
			Source:     models.SourceLocal,
		},
	})
	appState.Config.Auth.Required = true
	appState.Config.Auth.Secret = "test-secret"
	router := setupRouter(appState)

	t.Run("missing token", func(t *testing.T) {
		res := postJSON(t, router, "/api/v1/classify", models.ClassifyRequest{Input: "zoek Jan"})
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
		_, tokenString, _ := tokenAuth.Encode(nil)

		raw, _ := json.Marshal(models.ClassifyRequest{Input: "zoek Jan"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/classify", bytes.NewReader(raw))
		req.Header.Set("Authorization", "Bearer "+tokenString)
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)

		assert.Equal(t, http.StatusOK, res.Code)
	})
}

func TestRateLimit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(NewCacheRateLimitStore(), 2)(handler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		res := httptest.NewRecorder()
		limited.ServeHTTP(res, req)
		require.Equal(t, http.StatusOK, res.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := httptest.NewRecorder()
	limited.ServeHTTP(res, req)
	assert.Equal(t, http.StatusTooManyRequests, res.Code)
}
