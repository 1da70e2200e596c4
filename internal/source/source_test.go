package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const validPayload = `[
	{"id": 1, "text": "Which SQL keyword filters rows?", "type": "objective", "version": 1, "expectedAnswer": "WHERE"},
	{"id": 2, "text": "Explain indexing.", "type": "subjective", "version": 3,
	 "keywords": ["btree", "lookup"], "minKeywords": 1, "maxLength": 500,
	 "hints": ["Think about data structures."]}
]`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchValidPayload(t *testing.T) {
	srv := serve(t, http.StatusOK, validPayload)

	questions, err := NewClient(srv.URL, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if len(questions) != 2 {
		t.Fatalf("len = %d, want 2", len(questions))
	}
	if questions[0].ExpectedAnswer != "WHERE" {
		t.Errorf("expectedAnswer = %q", questions[0].ExpectedAnswer)
	}
	if questions[1].Version != 3 {
		t.Errorf("version = %d, want 3", questions[1].Version)
	}
	if len(questions[1].Keywords) != 2 || questions[1].MinKeywords != 1 {
		t.Errorf("keywords not decoded: %+v", questions[1])
	}
}

func TestFetchEmptyArray(t *testing.T) {
	srv := serve(t, http.StatusOK, `[]`)

	questions, err := NewClient(srv.URL, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("len = %d, want 0", len(questions))
	}
}

func TestFetchRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not an array", `{"id": 1}`},
		{"missing required field", `[{"id": 1, "text": "q", "version": 1}]`},
		{"bad type enum", `[{"id": 1, "text": "q", "type": "essay", "version": 1}]`},
		{"zero id", `[{"id": 0, "text": "q", "type": "objective", "version": 1}]`},
		{"negative version", `[{"id": 1, "text": "q", "type": "objective", "version": -2}]`},
		{"empty text", `[{"id": 1, "text": "", "type": "objective", "version": 1}]`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := serve(t, http.StatusOK, tt.body)
			if _, err := NewClient(srv.URL, nil).Fetch(context.Background()); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFetchNon200IsError(t *testing.T) {
	srv := serve(t, http.StatusBadGateway, "upstream broken")

	if _, err := NewClient(srv.URL, nil).Fetch(context.Background()); err == nil {
		t.Fatal("expected error on 502")
	}
}

func TestFetchTransportFailure(t *testing.T) {
	srv := serve(t, http.StatusOK, validPayload)
	srv.Close()

	if _, err := NewClient(srv.URL, nil).Fetch(context.Background()); err == nil {
		t.Fatal("expected error when the server is gone")
	}
}

func TestFetchHonorsContext(t *testing.T) {
	srv := serve(t, http.StatusOK, validPayload)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewClient(srv.URL, nil).Fetch(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
