package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/question"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// QuestionRepo implements quiz.QuestionStore using the ent client.
type QuestionRepo struct {
	client *ent.Client
}

// Sync merges the remote question list into the bank. A remote record
// overwrites the local copy only when its version is strictly greater;
// an absent local copy counts as version 0. Returns the full merged set.
func (r *QuestionRepo) Sync(ctx context.Context, remote []quiz.Question) ([]quiz.Question, error) {
	for _, q := range remote {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("sync: %w", err)
		}

		local, err := r.client.Question.Get(ctx, q.ID)
		switch {
		case ent.IsNotFound(err):
			if err := r.create(ctx, q); err != nil {
				return nil, fmt.Errorf("sync question %d: %w", q.ID, err)
			}
		case err != nil:
			return nil, fmt.Errorf("sync lookup question %d: %w", q.ID, err)
		case q.Version > local.Version:
			if err := r.overwrite(ctx, q); err != nil {
				return nil, fmt.Errorf("sync question %d: %w", q.ID, err)
			}
		}
	}
	return r.All(ctx)
}

// ForceRefresh clears the entire bank and reloads it from remote
// verbatim, bypassing version checks. Destructive; sync is the normal
// path.
func (r *QuestionRepo) ForceRefresh(ctx context.Context, remote []quiz.Question) ([]quiz.Question, error) {
	for _, q := range remote {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("force refresh: %w", err)
		}
	}

	if _, err := r.client.Question.Delete().Exec(ctx); err != nil {
		return nil, fmt.Errorf("force refresh clear: %w", err)
	}
	for _, q := range remote {
		if err := r.create(ctx, q); err != nil {
			return nil, fmt.Errorf("force refresh question %d: %w", q.ID, err)
		}
	}
	return r.All(ctx)
}

// All returns every question, ordered by id ascending.
func (r *QuestionRepo) All(ctx context.Context) ([]quiz.Question, error) {
	rows, err := r.client.Question.Query().
		Order(ent.Asc(question.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	out := make([]quiz.Question, len(rows))
	for i, row := range rows {
		out[i] = entQuestionToDomain(row)
	}
	return out, nil
}

// ByID returns a single question, or nil if it doesn't exist.
func (r *QuestionRepo) ByID(ctx context.Context, id int) (*quiz.Question, error) {
	row, err := r.client.Question.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	q := entQuestionToDomain(row)
	return &q, nil
}

// Update upserts a single question verbatim. It performs no version
// bookkeeping; build the record with quiz.ReviseQuestion so the bump
// can't be forgotten.
func (r *QuestionRepo) Update(ctx context.Context, q quiz.Question) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("update: %w", err)
	}

	_, err := r.client.Question.Get(ctx, q.ID)
	if ent.IsNotFound(err) {
		return r.create(ctx, q)
	}
	if err != nil {
		return fmt.Errorf("update lookup question %d: %w", q.ID, err)
	}
	return r.overwrite(ctx, q)
}

func (r *QuestionRepo) create(ctx context.Context, q quiz.Question) error {
	_, err := r.client.Question.Create().
		SetID(q.ID).
		SetText(q.Text).
		SetQtype(question.Qtype(q.Type)).
		SetVersion(q.Version).
		SetHints(q.Hints).
		SetOptions(q.Options).
		SetExpectedAnswer(q.ExpectedAnswer).
		SetKeywords(q.Keywords).
		SetMinKeywords(q.MinKeywords).
		SetMaxLength(q.MaxLength).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	return nil
}

// overwrite replaces every mutable field. The qtype column is
// intentionally left alone: a question's type is immutable after
// creation.
func (r *QuestionRepo) overwrite(ctx context.Context, q quiz.Question) error {
	_, err := r.client.Question.UpdateOneID(q.ID).
		SetText(q.Text).
		SetVersion(q.Version).
		SetHints(q.Hints).
		SetOptions(q.Options).
		SetExpectedAnswer(q.ExpectedAnswer).
		SetKeywords(q.Keywords).
		SetMinKeywords(q.MinKeywords).
		SetMaxLength(q.MaxLength).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("overwrite: %w", err)
	}
	return nil
}

// entQuestionToDomain converts an ent row to the domain type.
func entQuestionToDomain(row *ent.Question) quiz.Question {
	return quiz.Question{
		ID:             row.ID,
		Text:           row.Text,
		Type:           quiz.QuestionType(row.Qtype),
		Version:        row.Version,
		Hints:          row.Hints,
		Options:        row.Options,
		ExpectedAnswer: row.ExpectedAnswer,
		Keywords:       row.Keywords,
		MinKeywords:    row.MinKeywords,
		MaxLength:      row.MaxLength,
	}
}
