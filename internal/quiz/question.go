package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrQuestionNotFound is returned when a question id cannot be resolved
// against the loaded question set.
var ErrQuestionNotFound = errors.New("question not found")

// QuestionType selects how an answer is graded.
type QuestionType string

const (
	// TypeObjective questions are graded by exact match against ExpectedAnswer.
	TypeObjective QuestionType = "objective"
	// TypeSubjective questions are graded remotely, with a keyword heuristic
	// as the offline fallback.
	TypeSubjective QuestionType = "subjective"
)

// Question is a single quiz question. ID and Type are immutable once
// created; Version is set by the authoritative source and strictly
// increases on each update.
type Question struct {
	ID             int          `json:"id"`
	Text           string       `json:"text"`
	Type           QuestionType `json:"type"`
	Version        int          `json:"version"`
	Hints          []string     `json:"hints,omitempty"`
	Options        []string     `json:"options,omitempty"`
	ExpectedAnswer string       `json:"expectedAnswer,omitempty"`
	Keywords       []string     `json:"keywords,omitempty"`
	MinKeywords    int          `json:"minKeywords,omitempty"`
	MaxLength      int          `json:"maxLength,omitempty"`
}

// UserAnswer is one graded submission. A question accumulates multiple
// UserAnswers over retries; ordering is submission order and "latest"
// always means the last appended.
type UserAnswer struct {
	QuestionID      int       `json:"questionId"`
	Answer          string    `json:"answer"`
	IsCorrect       bool      `json:"isCorrect"`
	Grade           *int      `json:"grade,omitempty"`
	NextHint        string    `json:"nextHint,omitempty"`
	FullEvaluation  string    `json:"fullEvaluation,omitempty"`
	ConfidenceScore *float64  `json:"confidenceScore,omitempty"`
	SubmittedAt     time.Time `json:"submittedAt"`
}

// QuestionPatch describes a local edit to a question. Nil fields are
// left unchanged. ID, Type and Version cannot be patched.
type QuestionPatch struct {
	Text           *string
	Hints          *[]string
	Options        *[]string
	ExpectedAnswer *string
	Keywords       *[]string
	MinKeywords    *int
	MaxLength      *int
}

// ReviseQuestion applies a patch to a question and returns the revised
// copy with the version bumped by exactly one. Callers never touch the
// version themselves, so a revision can't be published without a bump.
func ReviseQuestion(old Question, patch QuestionPatch) Question {
	revised := old
	revised.Version = old.Version + 1

	if patch.Text != nil {
		revised.Text = *patch.Text
	}
	if patch.Hints != nil {
		revised.Hints = *patch.Hints
	}
	if patch.Options != nil {
		revised.Options = *patch.Options
	}
	if patch.ExpectedAnswer != nil {
		revised.ExpectedAnswer = *patch.ExpectedAnswer
	}
	if patch.Keywords != nil {
		revised.Keywords = *patch.Keywords
	}
	if patch.MinKeywords != nil {
		revised.MinKeywords = *patch.MinKeywords
	}
	if patch.MaxLength != nil {
		revised.MaxLength = *patch.MaxLength
	}
	return revised
}

// Validate checks the structural invariants a question must satisfy
// before it is accepted into the bank.
func (q Question) Validate() error {
	if q.ID <= 0 {
		return fmt.Errorf("question id must be positive, got %d", q.ID)
	}
	if q.Text == "" {
		return fmt.Errorf("question %d: text is empty", q.ID)
	}
	switch q.Type {
	case TypeObjective, TypeSubjective:
	default:
		return fmt.Errorf("question %d: unknown type %q", q.ID, q.Type)
	}
	if q.Version < 0 {
		return fmt.Errorf("question %d: negative version %d", q.ID, q.Version)
	}
	return nil
}

// QuestionStore is the durable question bank. Sync performs a
// version-gated last-writer-wins merge: a remote record overwrites the
// local copy only when its version is strictly greater (a missing local
// copy counts as version 0). ForceRefresh bypasses version checks
// entirely, clearing the bank and reloading it verbatim.
type QuestionStore interface {
	Sync(ctx context.Context, remote []Question) ([]Question, error)
	ForceRefresh(ctx context.Context, remote []Question) ([]Question, error)
	All(ctx context.Context) ([]Question, error)
	ByID(ctx context.Context, id int) (*Question, error)
	Update(ctx context.Context, q Question) error
}

// AnswerStore is the durable, append-only answer log. Individual
// records are never deleted; ClearAll is the only way to discard
// history and exists solely for restart.
type AnswerStore interface {
	Append(ctx context.Context, a UserAnswer) error
	ByQuestion(ctx context.Context, questionID int) ([]UserAnswer, error)
	All(ctx context.Context) ([]UserAnswer, error)
	ClearAll(ctx context.Context) error
}

// HintCounter is the persisted monotonic hint count. It is only ever
// incremented or reset wholesale.
type HintCounter interface {
	Increment(ctx context.Context) (int, error)
	Value(ctx context.Context) (int, error)
	Reset(ctx context.Context) error
}

// Evaluation is the grading outcome for one submission.
type Evaluation struct {
	IsCorrect       bool
	ConfidenceScore float64
	Grade           *int
	NextHint        string
	FullEvaluation  string
}

// Evaluator grades a raw answer against a question. Implementations are
// stateless functions of their inputs.
type Evaluator interface {
	Evaluate(ctx context.Context, q Question, answer string) (Evaluation, error)
}

// QuestionFetcher retrieves the authoritative question list. Fetch
// failures are expected (the system must tolerate total network
// absence) and make the session fall back to the last-synced bank.
type QuestionFetcher interface {
	Fetch(ctx context.Context) ([]Question, error)
}
