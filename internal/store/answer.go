package store

import (
	"context"
	"fmt"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/answerevent"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// AnswerRepo implements quiz.AnswerStore using the ent client. Each
// submission is one immutable row stamped with the global sequence, so
// appends are atomic inserts rather than a read-modify-write of a
// history blob, and concurrent appenders cannot lose each other's
// records.
type AnswerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Append records one graded submission at the end of the log.
func (r *AnswerRepo) Append(ctx context.Context, a quiz.UserAnswer) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("append answer: %w", err)
	}

	create := r.client.AnswerEvent.Create().
		SetSequence(seq).
		SetQuestionID(a.QuestionID).
		SetAnswer(a.Answer).
		SetIsCorrect(a.IsCorrect).
		SetNextHint(a.NextHint).
		SetFullEvaluation(a.FullEvaluation).
		SetNillableGrade(a.Grade).
		SetNillableConfidenceScore(a.ConfidenceScore)
	if !a.SubmittedAt.IsZero() {
		create.SetTimestamp(a.SubmittedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("append answer for question %d: %w", a.QuestionID, err)
	}
	return nil
}

// ByQuestion returns the full history for one question in submission order.
func (r *AnswerRepo) ByQuestion(ctx context.Context, questionID int) ([]quiz.UserAnswer, error) {
	rows, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuestionID(questionID)).
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers for question %d: %w", questionID, err)
	}
	return entAnswersToDomain(rows), nil
}

// All returns the whole log flattened across questions, in global
// submission order.
func (r *AnswerRepo) All(ctx context.Context) ([]quiz.UserAnswer, error) {
	rows, err := r.client.AnswerEvent.Query().
		Order(ent.Asc(answerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answers: %w", err)
	}
	return entAnswersToDomain(rows), nil
}

// Latest returns the last-appended answer for a question, or nil if the
// question has never been answered.
func (r *AnswerRepo) Latest(ctx context.Context, questionID int) (*quiz.UserAnswer, error) {
	row, err := r.client.AnswerEvent.Query().
		Where(answerevent.QuestionID(questionID)).
		Order(ent.Desc(answerevent.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest answer for question %d: %w", questionID, err)
	}
	a := entAnswerToDomain(row)
	return &a, nil
}

// ClearAll deletes the entire log. This exists only for restart; single
// records are never deleted.
func (r *AnswerRepo) ClearAll(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("clear answer log: %w", err)
	}
	return nil
}

func entAnswersToDomain(rows []*ent.AnswerEvent) []quiz.UserAnswer {
	out := make([]quiz.UserAnswer, len(rows))
	for i, row := range rows {
		out[i] = entAnswerToDomain(row)
	}
	return out
}

func entAnswerToDomain(row *ent.AnswerEvent) quiz.UserAnswer {
	return quiz.UserAnswer{
		QuestionID:      row.QuestionID,
		Answer:          row.Answer,
		IsCorrect:       row.IsCorrect,
		Grade:           row.Grade,
		NextHint:        row.NextHint,
		FullEvaluation:  row.FullEvaluation,
		ConfidenceScore: row.ConfidenceScore,
		SubmittedAt:     row.Timestamp,
	}
}
