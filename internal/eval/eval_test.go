package eval

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func decodeJSONBody(t *testing.T, r *http.Request, v any) {
	t.Helper()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
}

func objectiveQ(expected string) quiz.Question {
	return quiz.Question{
		ID:             1,
		Text:           "Which SQL keyword filters rows?",
		Type:           quiz.TypeObjective,
		ExpectedAnswer: expected,
	}
}

func subjectiveQ(keywords []string, minKeywords, maxLength int) quiz.Question {
	return quiz.Question{
		ID:          2,
		Text:        "Explain database indexing.",
		Type:        quiz.TypeSubjective,
		Keywords:    keywords,
		MinKeywords: minKeywords,
		MaxLength:   maxLength,
	}
}

func TestObjectiveExactMatch(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct bool
	}{
		{"exact", "WHERE", true},
		{"case insensitive", "where", true},
		{"surrounding whitespace", "  where \n", true},
		{"wrong", "HAVING", false},
		{"empty", "", false},
		{"internal whitespace differs", "w here", false},
	}

	e := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := e.Evaluate(context.Background(), objectiveQ("WHERE"), tt.answer)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			if ev.IsCorrect != tt.correct {
				t.Errorf("correct = %v, want %v", ev.IsCorrect, tt.correct)
			}
			if ev.ConfidenceScore != 1 {
				t.Errorf("confidence = %v, want 1", ev.ConfidenceScore)
			}
		})
	}
}

func TestKeywordThreshold(t *testing.T) {
	keywords := []string{"btree", "lookup", "index", "table", "scan", "column", "order"}

	// 5 of 7 keywords present but the question requires 6.
	q := subjectiveQ(keywords, 6, 0)
	answer := "An index is a btree over a column that speeds up lookup and avoids a full scan."

	ev, err := New(nil).Evaluate(context.Background(), q, answer)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.IsCorrect {
		t.Error("5 matches with minKeywords=6 should be incorrect")
	}
	// 5 / (2*7)
	if want := 5.0 / 14.0; ev.ConfidenceScore != want {
		t.Errorf("confidence = %v, want %v", ev.ConfidenceScore, want)
	}

	// Lowering the bar to 5 flips the result with the same answer.
	q.MinKeywords = 5
	ev, _ = New(nil).Evaluate(context.Background(), q, answer)
	if !ev.IsCorrect {
		t.Error("5 matches with minKeywords=5 should be correct")
	}
}

func TestKeywordMatchIsCaseInsensitiveSubstring(t *testing.T) {
	q := subjectiveQ([]string{"ACID", "transaction"}, 2, 0)

	ev, err := New(nil).Evaluate(context.Background(), q, "acid guarantees apply to each TRANSACTION.")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.IsCorrect {
		t.Error("case-insensitive substring matches should count")
	}
	if ev.ConfidenceScore != 0.5 {
		t.Errorf("confidence = %v, want 0.5", ev.ConfidenceScore)
	}
}

func TestMaxLengthRejection(t *testing.T) {
	q := subjectiveQ([]string{"index"}, 1, 20)
	answer := "index " + strings.Repeat("padding ", 10)

	ev, err := New(nil).Evaluate(context.Background(), q, answer)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.IsCorrect {
		t.Error("over-length answer must be rejected even with matching keywords")
	}
	if ev.ConfidenceScore != 0 {
		t.Errorf("confidence = %v, want 0", ev.ConfidenceScore)
	}
	if ev.FullEvaluation == "" {
		t.Error("expected a rejection explanation")
	}
}

func TestUnknownTypeErrors(t *testing.T) {
	q := quiz.Question{ID: 3, Text: "?", Type: "essay"}
	if _, err := New(nil).Evaluate(context.Background(), q, "x"); err == nil {
		t.Fatal("expected error for unknown question type")
	}
}

// failingGrader always errors, standing in for an unreachable service.
type failingGrader struct{}

func (failingGrader) Evaluate(context.Context, quiz.Question, string) (quiz.Evaluation, error) {
	return quiz.Evaluation{}, errors.New("connection refused")
}

func TestRemoteFallbackToHeuristic(t *testing.T) {
	q := subjectiveQ([]string{"index"}, 1, 0)

	ev, err := New(failingGrader{}).Evaluate(context.Background(), q, "use an index")
	if err != nil {
		t.Fatalf("fallback must not surface the remote error: %v", err)
	}
	if !ev.IsCorrect {
		t.Error("heuristic should grade the answer after remote failure")
	}
}

func TestRemotePreferredWhenAvailable(t *testing.T) {
	grade := 9
	remote := fixedRemote{ev: quiz.Evaluation{IsCorrect: true, Grade: &grade, ConfidenceScore: 0.9}}

	// No keywords at all: the heuristic would mark this wrong only if
	// MinKeywords > 0, so give it a threshold the answer cannot meet.
	q := subjectiveQ([]string{"unmatched"}, 1, 0)

	ev, err := New(remote).Evaluate(context.Background(), q, "remote grades this")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.IsCorrect || ev.Grade == nil || *ev.Grade != 9 {
		t.Errorf("remote evaluation not used: %+v", ev)
	}
}

func TestObjectiveNeverUsesRemote(t *testing.T) {
	remote := countingRemote{}
	e := New(&remote)

	if _, err := e.Evaluate(context.Background(), objectiveQ("yes"), "yes"); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if remote.calls != 0 {
		t.Errorf("remote called %d times for objective question, want 0", remote.calls)
	}
}

type fixedRemote struct {
	ev quiz.Evaluation
}

func (r fixedRemote) Evaluate(context.Context, quiz.Question, string) (quiz.Evaluation, error) {
	return r.ev, nil
}

type countingRemote struct {
	calls int
}

func (r *countingRemote) Evaluate(context.Context, quiz.Question, string) (quiz.Evaluation, error) {
	r.calls++
	return quiz.Evaluation{}, nil
}

func TestClientEvaluate(t *testing.T) {
	var gotBody EvaluateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/evaluate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		decodeJSONBody(t, r, &gotBody)
		fmt.Fprint(w, `{"isCorrect": true, "grade": 8, "nextHint": "mention locks", "fullEvaluation": "Solid answer."}`)
	}))
	defer srv.Close()

	q := subjectiveQ(nil, 0, 0)
	ev, err := NewClient(srv.URL, nil).Evaluate(context.Background(), q, "my answer")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}

	if gotBody.Question != q.Text || gotBody.Answer != "my answer" {
		t.Errorf("request body = %+v", gotBody)
	}
	if !ev.IsCorrect {
		t.Error("expected correct")
	}
	if ev.Grade == nil || *ev.Grade != 8 {
		t.Errorf("grade = %v, want 8", ev.Grade)
	}
	if ev.ConfidenceScore != 0.8 {
		t.Errorf("confidence = %v, want 0.8", ev.ConfidenceScore)
	}
	if ev.NextHint != "mention locks" {
		t.Errorf("hint = %q", ev.NextHint)
	}
}

func TestClientGradeClamping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"isCorrect": true, "grade": 15}`)
	}))
	defer srv.Close()

	ev, err := NewClient(srv.URL, nil).Evaluate(context.Background(), subjectiveQ(nil, 0, 0), "x")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Grade == nil || *ev.Grade != 10 {
		t.Errorf("grade = %v, want clamped to 10", ev.Grade)
	}
	if ev.ConfidenceScore != 1 {
		t.Errorf("confidence = %v, want 1", ev.ConfidenceScore)
	}
}

func TestClientNoGradeConfidenceFromCorrectness(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"isCorrect": true}`)
	}))
	defer srv.Close()

	ev, err := NewClient(srv.URL, nil).Evaluate(context.Background(), subjectiveQ(nil, 0, 0), "x")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if ev.Grade != nil {
		t.Errorf("grade = %v, want nil", ev.Grade)
	}
	if ev.ConfidenceScore != 1 {
		t.Errorf("confidence = %v, want 1", ev.ConfidenceScore)
	}
}

func TestClientNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, nil).Evaluate(context.Background(), subjectiveQ(nil, 0, 0), "x"); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestClientMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, nil).Evaluate(context.Background(), subjectiveQ(nil, 0, 0), "x"); err == nil {
		t.Fatal("expected error on malformed body")
	}
}

func TestEngineFallsBackThroughRealClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	q := subjectiveQ([]string{"cache"}, 1, 0)
	ev, err := New(NewClient(srv.URL, nil)).Evaluate(context.Background(), q, "use a cache")
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if !ev.IsCorrect {
		t.Error("heuristic fallback should accept the answer")
	}
}
