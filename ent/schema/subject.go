package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subject is a course or topic area the learner tracks.
type Subject struct {
	ent.Schema
}

func (Subject) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("difficulty").
			Default("moderate").
			Comment("easy, moderate, hard or very_hard"),
		field.String("priority").
			Default("medium").
			Comment("low, medium, high or critical"),
		field.Time("exam_at").
			Optional().
			Nillable().
			Comment("Next exam date, if known"),
		field.Float("target_score").
			Default(80).
			Comment("Target assessment percentage"),
		field.Bool("archived").
			Default(false),
	}
}

func (Subject) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("archived"),
	}
}
