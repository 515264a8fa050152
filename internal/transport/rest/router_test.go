package rest

import (
	"bondhu/internal/cache"
	"bondhu/internal/metrics"
	"bondhu/internal/model"
	"bondhu/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryAssessmentRepo struct {
	mu      sync.Mutex
	records []*model.AssessmentRecord
}

func (m *memoryAssessmentRepo) Create(_ context.Context, record *model.AssessmentRecord) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record.ID = fmt.Sprintf("a-%d", len(m.records)+1)
	record.CreatedAt = record.CreatedAt.Add(time.Duration(len(m.records)) * time.Second)
	m.records = append(m.records, record)
	return record.ID, nil
}

func (m *memoryAssessmentRepo) GetByID(_ context.Context, id string) (*model.AssessmentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memoryAssessmentRepo) GetLatestByUserID(ctx context.Context, userID string) (*model.AssessmentRecord, error) {
	list, _ := m.ListByUserID(ctx, userID, 1)
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (m *memoryAssessmentRepo) ListByUserID(_ context.Context, userID string, limit int) ([]*model.AssessmentRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.AssessmentRecord
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type testServer struct {
	handler http.Handler
	auth    *service.AuthService
	redis   *miniredis.Miniredis
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	auth := service.NewAuthService("test-secret")
	svc := service.NewPersonalityService(&memoryAssessmentRepo{}, cache.NewContextCache(client, time.Hour), metrics.NewCollector())

	return &testServer{
		handler: NewRouter(&Container{
			AuthService:        auth,
			PersonalityService: svc,
			Metrics:            metrics.NewCollector(),
			CORS:               CORSConfig{AllowedOrigins: "https://app.bondhu.test"},
		}),
		auth:  auth,
		redis: mr,
	}
}

func (s *testServer) do(t *testing.T, method, path, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if userID != "" {
		tok, err := s.auth.IssueUserToken(userID, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func allResponses(value int) map[string]int {
	out := make(map[string]int, 15)
	for id := 1; id <= 15; id++ {
		out[fmt.Sprint(id)] = value
	}
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.Equal(t, "https://app.bondhu.test", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Preflight(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodOptions, "/v1/personality/assessments", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestRouter_Questions(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/v1/personality/questions", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []model.Question `json:"questions"`
		Scale     map[string]int   `json:"scale"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Questions, 15)
	assert.Equal(t, 1, body.Scale["min"])
	assert.Equal(t, 5, body.Scale["max"])
}

func TestRouter_Preview(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/v1/personality/preview", "", model.PersonalityScores{
		Openness: 85, Conscientiousness: 40, Extraversion: 20, Agreeableness: 75, Neuroticism: 80,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var result model.PreviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Insights, 5)
	assert.Contains(t, result.Context.SystemPrompt, "Openness: 85/100 (High)")

	rec = s.do(t, http.MethodPost, "/v1/personality/preview", "", model.PersonalityScores{Openness: 120})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_RequiresAuth(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/v1/personality/profile", "/v1/personality/context", "/v1/personality/history"} {
		rec := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/personality/profile", nil)
	req.Header.Set("Authorization", "Bearer nope")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid or expired token", decodeError(t, rec))
}

func TestRouter_AssessmentFlow(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/v1/personality/profile", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPost, "/v1/personality/assessments", "user-1", map[string]interface{}{
		"responses": allResponses(3),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var result model.AssessmentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "a-1", result.AssessmentID)
	assert.Equal(t, model.PersonalityScores{Openness: 50, Conscientiousness: 50, Extraversion: 50, Agreeableness: 50, Neuroticism: 50}, result.Scores)
	assert.True(t, s.redis.Exists("user:user-1:personality:context"))

	rec = s.do(t, http.MethodGet, "/v1/personality/profile", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var profile model.AssessmentRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "user-1", profile.UserID)
	assert.Len(t, profile.Responses, 15)

	rec = s.do(t, http.MethodGet, "/v1/personality/context", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var llmCtx model.LLMPersonalityContext
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &llmCtx))
	assert.Equal(t, result.Context, llmCtx)

	// Evicted context is rebuilt from the stored profile
	s.redis.Del("user:user-1:personality:context")
	rec = s.do(t, http.MethodGet, "/v1/personality/context", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &llmCtx))
	assert.Equal(t, result.Context, llmCtx)

	rec = s.do(t, http.MethodPost, "/v1/personality/assessments", "user-1", map[string]interface{}{
		"responses": allResponses(5),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/v1/personality/history?limit=5", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var history struct {
		Assessments []model.AssessmentRecord `json:"assessments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &history))
	require.Len(t, history.Assessments, 2)
	assert.Equal(t, "a-2", history.Assessments[0].ID)

	rec = s.do(t, http.MethodGet, "/v1/personality/history", "user-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"assessments":[]}`, rec.Body.String())
}

func TestRouter_SubmitErrors(t *testing.T) {
	s := newTestServer(t)

	incomplete := allResponses(4)
	delete(incomplete, "7")
	rec := s.do(t, http.MethodPost, "/v1/personality/assessments", "user-1", map[string]interface{}{"responses": incomplete})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "please answer all questions", decodeError(t, rec))

	outOfRange := allResponses(4)
	outOfRange["7"] = 9
	rec = s.do(t, http.MethodPost, "/v1/personality/assessments", "user-1", map[string]interface{}{"responses": outOfRange})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid assessment, please retry", decodeError(t, rec))

	unknown := allResponses(4)
	delete(unknown, "7")
	unknown["99"] = 3
	rec = s.do(t, http.MethodPost, "/v1/personality/assessments", "user-1", map[string]interface{}{"responses": unknown})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid assessment, please retry", decodeError(t, rec))

	req := httptest.NewRequest(http.MethodPost, "/v1/personality/assessments", strings.NewReader("{"))
	tok, err := s.auth.IssueUserToken("user-1", time.Hour)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec = httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", decodeError(t, rec))
}

func TestRouter_HistoryLimit(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/v1/personality/history?limit=zero", "user-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t)
	rec := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
