package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer with its grading result.
// Rows are append-only; a question's history is the set of rows sharing
// its question_id, ordered by sequence.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Int("question_id").
			Comment("Question this answer was submitted for"),
		field.String("answer").
			Comment("Raw answer text as entered"),
		field.Bool("is_correct").
			Comment("Grading verdict"),
		field.Int("grade").
			Optional().
			Nillable().
			Comment("0-10 grade when the remote grader supplied one"),
		field.String("next_hint").
			Optional().
			Comment("Retry suggestion from the grader"),
		field.String("full_evaluation").
			Optional().
			Comment("Grader rationale text"),
		field.Float("confidence_score").
			Optional().
			Nillable().
			Comment("0-1 confidence reported by the evaluation engine"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
	}
}
