package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a versioned quiz question synced from the authoritative source.
// The id is assigned by the source and stable across syncs; only records with
// a strictly greater version may overwrite an existing row.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Immutable().
			Comment("Stable identifier assigned by the authoritative source"),
		field.String("text").
			NotEmpty().
			Comment("The question shown to the user"),
		field.Enum("qtype").
			Values("objective", "subjective").
			Comment("Grading mode; immutable after creation"),
		field.Int("version").
			Default(0).
			Comment("Monotonically increasing, set by the authoritative source"),
		field.JSON("hints", []string{}).
			Optional().
			Comment("Ordered hint texts, revealed one at a time"),
		field.JSON("options", []string{}).
			Optional().
			Comment("Choice texts (objective only)"),
		field.String("expected_answer").
			Optional().
			Comment("Match target (objective) or reference text (subjective)"),
		field.JSON("keywords", []string{}).
			Optional().
			Comment("Keywords the local heuristic looks for (subjective only)"),
		field.Int("min_keywords").
			Default(0).
			Comment("Keyword matches required for a correct answer"),
		field.Int("max_length").
			Default(0).
			Comment("Answer length ceiling; 0 means unlimited"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("version"),
	}
}
