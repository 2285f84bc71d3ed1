package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment records one graded assessment result.
type Assessment struct {
	ent.Schema
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("subject_id").
			Comment("Subject the assessment belongs to"),
		field.Time("taken_at").
			Default(time.Now).
			Comment("When the assessment was taken"),
		field.Float("score_percent").
			Range(0, 100).
			Comment("Score as a percentage"),
		field.String("title").
			Optional().
			Comment("Optional label (quiz 3, midterm, ...)"),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("subject_id"),
		index.Fields("taken_at"),
	}
}
