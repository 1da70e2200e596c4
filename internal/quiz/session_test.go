package quiz

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

// fakeBank is an in-memory QuestionStore.
type fakeBank struct {
	questions map[int]Question
	syncCalls int
}

func newFakeBank(qs ...Question) *fakeBank {
	b := &fakeBank{questions: make(map[int]Question)}
	for _, q := range qs {
		b.questions[q.ID] = q
	}
	return b
}

func (b *fakeBank) Sync(_ context.Context, remote []Question) ([]Question, error) {
	b.syncCalls++
	for _, q := range remote {
		local, ok := b.questions[q.ID]
		if !ok || q.Version > local.Version {
			b.questions[q.ID] = q
		}
	}
	return b.All(context.Background())
}

func (b *fakeBank) ForceRefresh(_ context.Context, remote []Question) ([]Question, error) {
	b.questions = make(map[int]Question)
	for _, q := range remote {
		b.questions[q.ID] = q
	}
	return b.All(context.Background())
}

func (b *fakeBank) All(context.Context) ([]Question, error) {
	var out []Question
	for _, q := range b.questions {
		out = append(out, q)
	}
	return out, nil
}

func (b *fakeBank) ByID(_ context.Context, id int) (*Question, error) {
	if q, ok := b.questions[id]; ok {
		return &q, nil
	}
	return nil, nil
}

func (b *fakeBank) Update(_ context.Context, q Question) error {
	b.questions[q.ID] = q
	return nil
}

// fakeLog is an in-memory AnswerStore.
type fakeLog struct {
	records   []UserAnswer
	appendErr error
}

func (l *fakeLog) Append(_ context.Context, a UserAnswer) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.records = append(l.records, a)
	return nil
}

func (l *fakeLog) ByQuestion(_ context.Context, questionID int) ([]UserAnswer, error) {
	var out []UserAnswer
	for _, a := range l.records {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (l *fakeLog) All(context.Context) ([]UserAnswer, error) {
	return append([]UserAnswer(nil), l.records...), nil
}

func (l *fakeLog) ClearAll(context.Context) error {
	l.records = nil
	return nil
}

// fakeHints is an in-memory HintCounter.
type fakeHints struct {
	n int
}

func (h *fakeHints) Increment(context.Context) (int, error) {
	h.n++
	return h.n, nil
}
func (h *fakeHints) Value(context.Context) (int, error) { return h.n, nil }
func (h *fakeHints) Reset(context.Context) error        { h.n = 0; return nil }

// fixedGrader grades every answer the same way.
type fixedGrader struct {
	ev  Evaluation
	err error
}

func (g fixedGrader) Evaluate(context.Context, Question, string) (Evaluation, error) {
	return g.ev, g.err
}

// matchGrader marks an answer correct when it equals the expected answer.
type matchGrader struct{}

func (matchGrader) Evaluate(_ context.Context, q Question, answer string) (Evaluation, error) {
	correct := answer == q.ExpectedAnswer
	ev := Evaluation{IsCorrect: correct}
	if correct {
		ev.ConfidenceScore = 1
	}
	return ev, nil
}

// fetcherFunc adapts a function to QuestionFetcher.
type fetcherFunc func(ctx context.Context) ([]Question, error)

func (f fetcherFunc) Fetch(ctx context.Context) ([]Question, error) { return f(ctx) }

func testQuestions(n int) []Question {
	out := make([]Question, n)
	for i := range out {
		out[i] = Question{
			ID:             i + 1,
			Text:           fmt.Sprintf("question %d", i+1),
			Type:           TypeObjective,
			Version:        1,
			ExpectedAnswer: "yes",
		}
	}
	return out
}

func initSession(t *testing.T, s *Session) {
	t.Helper()
	if err := s.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
}

func TestInitLoadsAndSortsQuestions(t *testing.T) {
	bank := newFakeBank(
		Question{ID: 3, Text: "c", Type: TypeObjective, Version: 1},
		Question{ID: 1, Text: "a", Type: TypeObjective, Version: 1},
		Question{ID: 2, Text: "b", Type: TypeObjective, Version: 1},
	)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	qs := s.Questions()
	if len(qs) != 3 {
		t.Fatalf("len = %d, want 3", len(qs))
	}
	for i, q := range qs {
		if q.ID != i+1 {
			t.Errorf("qs[%d].ID = %d, want %d", i, q.ID, i+1)
		}
	}
	if s.Phase() != PhaseInProgress {
		t.Errorf("phase = %v, want PhaseInProgress", s.Phase())
	}
}

func TestInitSyncsRemoteQuestions(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	fetcher := fetcherFunc(func(context.Context) ([]Question, error) {
		return testQuestions(3), nil
	})
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, fetcher)
	initSession(t, s)

	if bank.syncCalls != 1 {
		t.Errorf("sync calls = %d, want 1", bank.syncCalls)
	}
	if len(s.Questions()) != 3 {
		t.Errorf("questions = %d, want 3", len(s.Questions()))
	}
}

func TestInitFallsBackToLocalBankOnFetchFailure(t *testing.T) {
	bank := newFakeBank(testQuestions(2)...)
	fetcher := fetcherFunc(func(context.Context) ([]Question, error) {
		return nil, errors.New("network down")
	})
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, fetcher)
	initSession(t, s)

	if len(s.Questions()) != 2 {
		t.Errorf("questions = %d, want 2 from local bank", len(s.Questions()))
	}
	if bank.syncCalls != 0 {
		t.Errorf("sync calls = %d, want 0 after fetch failure", bank.syncCalls)
	}
}

func TestResumeCursorFirstUnanswered(t *testing.T) {
	bank := newFakeBank(testQuestions(4)...)
	log := &fakeLog{records: []UserAnswer{
		{QuestionID: 1, Answer: "yes", IsCorrect: true},
		{QuestionID: 2, Answer: "no", IsCorrect: false},
	}}
	s := NewSession(bank, log, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	// Question 2 was answered (wrong), question 3 never was. Resume at
	// the first question with no history at all.
	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", s.Cursor())
	}
}

func TestResumeCursorAllAnsweredLastWrong(t *testing.T) {
	bank := newFakeBank(testQuestions(2)...)
	log := &fakeLog{records: []UserAnswer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: false},
	}}
	s := NewSession(bank, log, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1 (retry last question)", s.Cursor())
	}
	if _, ok := s.CurrentQuestion(); !ok {
		t.Error("expected a current question")
	}
}

func TestResumeCursorAllAnsweredLastCorrect(t *testing.T) {
	bank := newFakeBank(testQuestions(2)...)
	log := &fakeLog{records: []UserAnswer{
		{QuestionID: 1, IsCorrect: true},
		{QuestionID: 2, IsCorrect: true},
	}}
	s := NewSession(bank, log, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	if s.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2 (past the end)", s.Cursor())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question past the end")
	}
}

func TestSubmitAnswerRecordsAndPersists(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	log := &fakeLog{}
	s := NewSession(bank, log, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	ans, err := s.SubmitAnswer(context.Background(), "yes")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !ans.IsCorrect {
		t.Error("expected correct answer")
	}
	if ans.SubmittedAt.IsZero() {
		t.Error("expected SubmittedAt to be set")
	}

	if len(log.records) != 1 {
		t.Fatalf("persisted records = %d, want 1", len(log.records))
	}
	if got, ok := s.LatestAnswer(1); !ok || got.Answer != "yes" {
		t.Errorf("latest = %+v, want yes", got)
	}
}

func TestSubmitAnswerSurvivesPersistFailure(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	log := &fakeLog{appendErr: errors.New("disk full")}
	s := NewSession(bank, log, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	ans, err := s.SubmitAnswer(context.Background(), "yes")
	if err != nil {
		t.Fatalf("submit should not fail on persist error: %v", err)
	}
	if !ans.IsCorrect {
		t.Error("expected correct answer")
	}
	// In-memory history still advanced.
	if len(s.Answers(1)) != 1 {
		t.Errorf("in-memory history = %d, want 1", len(s.Answers(1)))
	}
}

func TestSubmitAnswerEvaluatorFailure(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, fixedGrader{err: errors.New("boom")}, nil)
	initSession(t, s)

	if _, err := s.SubmitAnswer(context.Background(), "yes"); err == nil {
		t.Fatal("expected error from failing evaluator")
	}
	if len(s.Answers(1)) != 0 {
		t.Error("no answer should be recorded when evaluation fails")
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	_, err := s.SubmitAnswerFor(context.Background(), 99, "yes")
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestRetriesAccumulateHistory(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	ctx := context.Background()
	s.SubmitAnswer(ctx, "wrong")
	s.SubmitAnswer(ctx, "still wrong")
	s.SubmitAnswer(ctx, "yes")

	history := s.Answers(1)
	if len(history) != 3 {
		t.Fatalf("history = %d, want 3", len(history))
	}
	latest, _ := s.LatestAnswer(1)
	if !latest.IsCorrect {
		t.Error("latest answer should be the correct one")
	}
	aqs := s.AnsweredQuestions()
	if len(aqs) != 1 || aqs[0].Attempts != 3 {
		t.Errorf("answered questions = %+v, want 1 entry with 3 attempts", aqs)
	}
}

func TestMoveToNextQuestion(t *testing.T) {
	bank := newFakeBank(testQuestions(2)...)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	if !s.MoveToNextQuestion() {
		t.Fatal("expected move from 0 to 1")
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor())
	}

	// At the last question the cursor stays put.
	if s.MoveToNextQuestion() {
		t.Error("expected no move past the last question")
	}
	if s.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Cursor())
	}
}

func TestRestartClearsEverything(t *testing.T) {
	bank := newFakeBank(testQuestions(3)...)
	log := &fakeLog{}
	hints := &fakeHints{}
	s := NewSession(bank, log, hints, matchGrader{}, nil)
	initSession(t, s)

	ctx := context.Background()
	s.SubmitAnswer(ctx, "yes")
	s.MoveToNextQuestion()
	s.SubmitAnswer(ctx, "yes")
	s.MoveToNextQuestion()
	s.SubmitAnswer(ctx, "wrong")
	s.IncrementHintCount(ctx)
	s.IncrementHintCount(ctx)

	if err := s.Restart(ctx); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if s.Cursor() != 0 {
		t.Errorf("cursor = %d, want 0", s.Cursor())
	}
	if s.HintCount() != 0 {
		t.Errorf("hint count = %d, want 0", s.HintCount())
	}
	if len(log.records) != 0 {
		t.Errorf("log records = %d, want 0", len(log.records))
	}
	if len(s.AnsweredQuestions()) != 0 {
		t.Error("answer history should be empty after restart")
	}
	// The question snapshot is untouched.
	if len(s.Questions()) != 3 {
		t.Errorf("questions = %d, want 3", len(s.Questions()))
	}
}

func TestIncrementHintCountPersists(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	hints := &fakeHints{}
	s := NewSession(bank, &fakeLog{}, hints, matchGrader{}, nil)
	initSession(t, s)

	for i := 0; i < 3; i++ {
		if err := s.IncrementHintCount(context.Background()); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}
	if s.HintCount() != 3 {
		t.Errorf("hint count = %d, want 3", s.HintCount())
	}
	if hints.n != 3 {
		t.Errorf("persisted hint count = %d, want 3", hints.n)
	}
}

func TestHintCountLoadedOnInit(t *testing.T) {
	bank := newFakeBank(testQuestions(1)...)
	hints := &fakeHints{n: 5}
	s := NewSession(bank, &fakeLog{}, hints, matchGrader{}, nil)
	initSession(t, s)

	if s.HintCount() != 5 {
		t.Errorf("hint count = %d, want 5", s.HintCount())
	}
}

func TestCompleteQuiz(t *testing.T) {
	bank := newFakeBank(testQuestions(2)...)
	s := NewSession(bank, &fakeLog{}, &fakeHints{}, matchGrader{}, nil)
	initSession(t, s)

	s.CompleteQuiz()
	if s.Phase() != PhaseCompleted {
		t.Errorf("phase = %v, want PhaseCompleted", s.Phase())
	}
}

func TestReviseQuestionBumpsVersion(t *testing.T) {
	base := Question{ID: 1, Text: "old", Type: TypeSubjective, Version: 3, Keywords: []string{"a"}}

	revised := ReviseQuestion(base, QuestionPatch{
		Text:     strPtr("new"),
		Keywords: &[]string{"a", "b"},
	})

	if revised.Version != 4 {
		t.Errorf("version = %d, want 4", revised.Version)
	}
	if revised.Text != "new" {
		t.Errorf("text = %q, want new", revised.Text)
	}
	if len(revised.Keywords) != 2 {
		t.Errorf("keywords = %v, want [a b]", revised.Keywords)
	}
	// Empty patch still bumps the version.
	again := ReviseQuestion(revised, QuestionPatch{})
	if again.Version != 5 {
		t.Errorf("version = %d, want 5", again.Version)
	}
	// Original is untouched.
	if base.Version != 3 || base.Text != "old" {
		t.Errorf("original mutated: %+v", base)
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid objective", Question{ID: 1, Text: "t", Type: TypeObjective}, false},
		{"valid subjective", Question{ID: 1, Text: "t", Type: TypeSubjective, Version: 2}, false},
		{"zero id", Question{ID: 0, Text: "t", Type: TypeObjective}, true},
		{"empty text", Question{ID: 1, Type: TypeObjective}, true},
		{"unknown type", Question{ID: 1, Text: "t", Type: "essay"}, true},
		{"negative version", Question{ID: 1, Text: "t", Type: TypeObjective, Version: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
