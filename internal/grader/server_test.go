package grader

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/llm"
)

func testConfig() Config {
	return Config{
		Server: ServerConfig{Port: "0", Mode: "test"},
		CORS:   CORSConfig{AllowedOrigins: []string{"*"}},
		Model:  ModelConfig{MaxTokens: 512, Temperature: 0.2},
	}
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "mock", body["model"])
}

func TestEvaluateHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: "Correct: Yes\nGrade: 8\nHint: none\n\nCovers the key points.",
	})
	srv := New(testConfig(), mock, nil)

	w := postJSON(t, srv.Handler(), "/evaluate", EvaluateRequest{
		Question: "Explain indexing.",
		Answer:   "A btree speeds up lookups.",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp EvaluateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsCorrect)
	require.NotNil(t, resp.Grade)
	assert.Equal(t, 8, *resp.Grade)
	assert.Empty(t, resp.NextHint)
	assert.Contains(t, resp.FullEvaluation, "Covers the key points.")

	// The prompt carries both the question and the answer.
	require.Equal(t, 1, mock.CallCount())
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "Explain indexing.")
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "A btree speeds up lookups.")
}

func TestEvaluateMissingFields(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	tests := []struct {
		name string
		body EvaluateRequest
	}{
		{"missing answer", EvaluateRequest{Question: "q"}},
		{"missing question", EvaluateRequest{Answer: "a"}},
		{"both blank", EvaluateRequest{Question: "  ", Answer: "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, srv.Handler(), "/evaluate", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestEvaluateInvalidJSON(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	req := httptest.NewRequest(http.MethodPost, "/evaluate", bytes.NewReader([]byte("{broken")))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluateProviderFailure(t *testing.T) {
	// Empty mock queue means every call fails.
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	w := postJSON(t, srv.Handler(), "/evaluate", EvaluateRequest{Question: "q", Answer: "a"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAskHappyPath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "  An index is a btree.\n"})
	srv := New(testConfig(), mock, nil)

	w := postJSON(t, srv.Handler(), "/ask", AskRequest{Question: "What is an index?"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "What is an index?", resp.Question)
	assert.Equal(t, "An index is a btree.", resp.Answer)
}

func TestAskMissingQuestion(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	w := postJSON(t, srv.Handler(), "/ask", AskRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAskProviderFailure(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	w := postJSON(t, srv.Handler(), "/ask", AskRequest{Question: "q"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRequestIDPropagated(t *testing.T) {
	srv := New(testConfig(), llm.NewMockProvider(), nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	// Generated when absent.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
