package quiz

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseInProgress
	PhaseCompleted
)

// Session drives one run through the question bank. It holds an ordered
// snapshot of the bank, the per-question answer history, and a cursor
// pointing at the question currently being answered.
//
// A Session is a view over the durable stores, not itself durable: it is
// created once per run, mutated throughout, and discarded on exit. It is
// not safe for concurrent mutation; callers serialize SubmitAnswer,
// MoveToNextQuestion and Restart.
type Session struct {
	id        string
	questions []Question
	answers   map[int][]UserAnswer
	cursor    int
	hintCount int
	phase     Phase

	bank    QuestionStore
	log     AnswerStore
	hints   HintCounter
	grader  Evaluator
	fetcher QuestionFetcher
}

// NewSession creates a session over the given collaborators. fetcher may
// be nil, in which case Init loads the last-synced local bank directly.
func NewSession(bank QuestionStore, log AnswerStore, hints HintCounter, grader Evaluator, fetcher QuestionFetcher) *Session {
	return &Session{
		id:      uuid.NewString(),
		answers: make(map[int][]UserAnswer),
		phase:   PhaseLoading,
		bank:    bank,
		log:     log,
		hints:   hints,
		grader:  grader,
		fetcher: fetcher,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Init loads the question snapshot and answer history and positions the
// cursor at the first unanswered question.
//
// The remote fetch is best-effort: on failure the last-synced local bank
// is used instead, so a fully offline run still works against whatever
// was synced before.
func (s *Session) Init(ctx context.Context) error {
	questions, err := s.loadQuestions(ctx)
	if err != nil {
		return fmt.Errorf("load questions: %w", err)
	}
	sort.Slice(questions, func(i, j int) bool { return questions[i].ID < questions[j].ID })
	s.questions = questions

	history, err := s.log.All(ctx)
	if err != nil {
		return fmt.Errorf("load answer history: %w", err)
	}
	s.answers = make(map[int][]UserAnswer, len(history))
	for _, a := range history {
		s.answers[a.QuestionID] = append(s.answers[a.QuestionID], a)
	}

	if n, err := s.hints.Value(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: load hint count: %v\n", err)
	} else {
		s.hintCount = n
	}

	s.cursor = s.resumeCursor()
	s.phase = PhaseInProgress
	return nil
}

func (s *Session) loadQuestions(ctx context.Context) ([]Question, error) {
	if s.fetcher == nil {
		return s.bank.All(ctx)
	}
	remote, err := s.fetcher.Fetch(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: remote question fetch failed, using local bank: %v\n", err)
		return s.bank.All(ctx)
	}
	return s.bank.Sync(ctx, remote)
}

// resumeCursor finds the first question with no recorded answers. When
// every question has been answered, the cursor rests on the last
// question, or one past it if that question's latest answer was correct.
func (s *Session) resumeCursor() int {
	for i, q := range s.questions {
		if len(s.answers[q.ID]) == 0 {
			return i
		}
	}
	if len(s.questions) == 0 {
		return 0
	}
	last := len(s.questions) - 1
	history := s.answers[s.questions[last].ID]
	if history[len(history)-1].IsCorrect {
		return last + 1
	}
	return last
}

// Questions returns the ordered question snapshot taken at Init.
func (s *Session) Questions() []Question { return s.questions }

// Cursor returns the index of the current question.
func (s *Session) Cursor() int { return s.cursor }

// Phase returns the session's lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// CurrentQuestion returns the question under the cursor, or false when
// the cursor is past the end of the list.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.cursor < 0 || s.cursor >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// QuestionByID resolves a question from the snapshot.
func (s *Session) QuestionByID(id int) (Question, bool) {
	for _, q := range s.questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Answers returns the full answer history for a question, oldest first.
func (s *Session) Answers(questionID int) []UserAnswer {
	return s.answers[questionID]
}

// LatestAnswer returns the last-appended answer for a question.
func (s *Session) LatestAnswer(questionID int) (UserAnswer, bool) {
	history := s.answers[questionID]
	if len(history) == 0 {
		return UserAnswer{}, false
	}
	return history[len(history)-1], true
}

// SubmitAnswer grades the given text against the current question and
// records the result. See SubmitAnswerFor.
func (s *Session) SubmitAnswer(ctx context.Context, text string) (UserAnswer, error) {
	q, ok := s.CurrentQuestion()
	if !ok {
		return UserAnswer{}, fmt.Errorf("no question at cursor %d: %w", s.cursor, ErrQuestionNotFound)
	}
	return s.SubmitAnswerFor(ctx, q.ID, text)
}

// SubmitAnswerFor grades the given text against the identified question,
// appends the result to the in-memory history and to the durable log.
// A persistence failure is logged and does not fail the submission: the
// in-memory state still advances so the run can continue.
func (s *Session) SubmitAnswerFor(ctx context.Context, questionID int, text string) (UserAnswer, error) {
	q, ok := s.QuestionByID(questionID)
	if !ok {
		return UserAnswer{}, fmt.Errorf("question %d: %w", questionID, ErrQuestionNotFound)
	}

	ev, err := s.grader.Evaluate(ctx, q, text)
	if err != nil {
		return UserAnswer{}, fmt.Errorf("evaluate answer for question %d: %w", questionID, err)
	}

	answer := UserAnswer{
		QuestionID:      q.ID,
		Answer:          text,
		IsCorrect:       ev.IsCorrect,
		Grade:           ev.Grade,
		NextHint:        ev.NextHint,
		FullEvaluation:  ev.FullEvaluation,
		ConfidenceScore: &ev.ConfidenceScore,
		SubmittedAt:     time.Now().UTC(),
	}

	s.answers[q.ID] = append(s.answers[q.ID], answer)

	if err := s.log.Append(ctx, answer); err != nil {
		fmt.Fprintf(os.Stderr, "warning: persist answer for question %d: %v\n", q.ID, err)
	}

	return answer, nil
}

// MoveToNextQuestion advances the cursor by one and reports whether it
// moved. The cursor never advances past the last question.
func (s *Session) MoveToNextQuestion() bool {
	if s.cursor >= len(s.questions)-1 {
		return false
	}
	s.cursor++
	return true
}

// Restart clears the durable answer log and hint counter and resets all
// in-memory progress. The question bank is untouched.
func (s *Session) Restart(ctx context.Context) error {
	if err := s.log.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear answer log: %w", err)
	}
	if err := s.hints.Reset(ctx); err != nil {
		return fmt.Errorf("reset hint count: %w", err)
	}
	s.answers = make(map[int][]UserAnswer)
	s.cursor = 0
	s.hintCount = 0
	s.phase = PhaseInProgress
	return nil
}

// IncrementHintCount bumps the persisted hint counter. The counter is
// monotonic; it only ever resets as part of Restart.
func (s *Session) IncrementHintCount(ctx context.Context) error {
	n, err := s.hints.Increment(ctx)
	if err != nil {
		return fmt.Errorf("increment hint count: %w", err)
	}
	s.hintCount = n
	return nil
}

// HintCount returns the persisted hint count as of the last load or
// increment.
func (s *Session) HintCount() int { return s.hintCount }

// CompleteQuiz marks the session finished regardless of cursor position.
// This is the user-triggered early finish; it has no durable effect.
func (s *Session) CompleteQuiz() {
	s.phase = PhaseCompleted
}

// AnsweredQuestion pairs a question with its latest answer for display.
type AnsweredQuestion struct {
	Question Question
	Latest   UserAnswer
	Attempts int
}

// AnsweredQuestions returns every question with at least one answer,
// joined with its latest answer, ordered by question id ascending.
func (s *Session) AnsweredQuestions() []AnsweredQuestion {
	var out []AnsweredQuestion
	for _, q := range s.questions {
		history := s.answers[q.ID]
		if len(history) == 0 {
			continue
		}
		out = append(out, AnsweredQuestion{
			Question: q,
			Latest:   history[len(history)-1],
			Attempts: len(history),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Question.ID < out[j].Question.ID })
	return out
}
